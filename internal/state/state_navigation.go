package state

import (
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
)

// PageSize is the distance moved by page up/down.
const PageSize = 10

// DefaultViewportHeight is the number of list rows kept visible.
const DefaultViewportHeight = 15

// clampIndex keeps idx inside [0, n-1]; an empty list clamps to 0.
func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// adjustScroll moves offset by the minimum amount that keeps cursor inside
// [offset, offset+height).
func adjustScroll(cursor, offset, height int) int {
	if height <= 0 {
		height = 1
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+height {
		return cursor - height + 1
	}
	return offset
}

// windowBounds returns the [start, end) slice of a list of n rows shown from
// offset with the given height.
func windowBounds(offset, height, n int) (int, int) {
	if offset > n {
		offset = n
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > n {
		end = n
	}
	return offset, end
}

func sortRanked(ranked []RankedEntry) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
}

func indexOfPath(items []Candidate, path string) int {
	for i, item := range items {
		if item.Path == path {
			return i
		}
	}
	return -1
}

func displayName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return path
	}
	return name
}

// lowerName folds case the same way the scanner orders names.
func lowerName(name string) string {
	return cases.Fold().String(name)
}
