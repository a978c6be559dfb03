package state

import (
	"fmt"

	fsutil "github.com/kk-code-lab/jump/internal/fs"
)

// LoadDirectory scans dir with scan. A failed scan yields an empty list
// together with the error so the caller can stay responsive and report it.
func LoadDirectory(scan Scanner, dir string, showHidden bool) ([]FileEntry, error) {
	if scan == nil {
		scan = NewScanner(nil)
	}
	entries, err := scan(dir, showHidden)
	if err != nil {
		return []FileEntry{}, fmt.Errorf("cannot load %s: %w", dir, err)
	}
	return entries, nil
}

// RankedEntry is a directory ordered by its stored frecency score.
type RankedEntry struct {
	FileEntry
	Score float64
}

// RankByScore orders entries by descending score. Entries without a stored
// score rank as zero; ties keep the input order.
func RankByScore(entries []FileEntry, scores map[string]float64) []RankedEntry {
	ranked := make([]RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = RankedEntry{FileEntry: e, Score: scores[e.Path]}
	}
	sortRanked(ranked)
	return ranked
}

func parentOf(dir string) (string, bool) {
	return fsutil.Parent(dir)
}
