package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kk-code-lab/jump/internal/scoring"
)

const week = 7 * 24 * time.Hour

// Decay applies the weekly multiplier to every record for each full week
// since it was last visited or decayed. It returns the number of records
// changed. Running it twice in the same week changes nothing.
func (s *Store) Decay(now time.Time) (int, error) {
	type pending struct {
		id        int64
		score     float64
		decayedAt int64
	}
	var changes []pending

	rows, err := s.db.Query(`SELECT id, score, last_accessed, decayed_at FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("load records: %w", err)
	}
	for rows.Next() {
		var id, last, decayed int64
		var score float64
		if err := rows.Scan(&id, &score, &last, &decayed); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan record: %w", err)
		}
		ref := max(last, decayed)
		elapsed := now.Sub(time.Unix(ref, 0))
		if elapsed < week {
			continue
		}
		weeks := int64(elapsed / week)
		next := scoring.FromRaw(score).ApplyDecay(uint32(weeks))
		changes = append(changes, pending{
			id:        id,
			score:     next.Raw(),
			decayedAt: ref + weeks*int64(week/time.Second),
		})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	if len(changes) == 0 {
		return 0, nil
	}
	err = s.withTx(func(tx *sql.Tx) error {
		for _, c := range changes {
			if _, err := tx.Exec(`UPDATE entries SET score = ?, decayed_at = ? WHERE id = ?`, c.score, c.decayedAt, c.id); err != nil {
				return fmt.Errorf("decay record %d: %w", c.id, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(changes), nil
}

// Clean deletes non-bookmarked records scoring below threshold.
func (s *Store) Clean(threshold float64) (int, error) {
	res, err := s.db.Exec(`DELETE FROM entries WHERE is_bookmark = 0 AND score < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("clean records: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// PruneMissing deletes non-bookmarked records whose path no longer exists.
func (s *Store) PruneMissing(exists func(path string) bool) (int, error) {
	records, err := s.All()
	if err != nil {
		return 0, err
	}
	var stale []int64
	for _, r := range records {
		if !r.IsBookmark && !exists(r.Path) {
			stale = append(stale, r.ID)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}
	err = s.withTx(func(tx *sql.Tx) error {
		for _, id := range stale {
			if _, err := tx.Exec(`DELETE FROM entries WHERE id = ?`, id); err != nil {
				return fmt.Errorf("delete record %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(stale), nil
}

// Stats summarizes the store.
type Stats struct {
	Records   int
	Visits    int64
	Bookmarks int
}

// Stats returns record, visit and bookmark totals.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(access_count), 0), COALESCE(SUM(is_bookmark), 0)
		FROM entries`).Scan(&st.Records, &st.Visits, &st.Bookmarks)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

// exportRecord is the JSON form of a Record.
type exportRecord struct {
	Path         string  `json:"path"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	AccessCount  uint32  `json:"access_count"`
	LastAccessed int64   `json:"last_accessed"`
	BookmarkKey  string  `json:"bookmark_key,omitempty"`
}

// Export writes every record as a JSON array.
func (s *Store) Export(w io.Writer) (int, error) {
	records, err := s.All()
	if err != nil {
		return 0, err
	}
	out := make([]exportRecord, len(records))
	for i, r := range records {
		out[i] = exportRecord{
			Path:         r.Path,
			Name:         r.Name,
			Score:        r.Score.Raw(),
			AccessCount:  r.AccessCount,
			LastAccessed: r.LastAccessed,
			BookmarkKey:  r.BookmarkKey,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, fmt.Errorf("encode records: %w", err)
	}
	return len(out), nil
}

// Import merges records from a JSON array written by Export. Existing
// records keep the larger access count and the later access time; their score
// is recomputed at now. A bookmark is imported only if its key is free.
func (s *Store) Import(r io.Reader, now time.Time) (int, error) {
	var in []exportRecord
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("decode records: %w", err)
	}

	imported := 0
	err := s.withTx(func(tx *sql.Tx) error {
		for _, e := range in {
			if e.Path == "" {
				continue
			}
			rec, err := getOrCreate(tx, e.Path, e.Name, time.Unix(e.LastAccessed, 0))
			if err != nil {
				return err
			}
			if e.AccessCount > rec.AccessCount {
				rec.AccessCount = e.AccessCount
			}
			if e.LastAccessed > rec.LastAccessed {
				rec.LastAccessed = e.LastAccessed
			}
			if rec.Name == "" {
				rec.Name = e.Name
			}
			rec.Score = rec.Score.Recalculate(rec.AccessCount, rec.LastAccessed, now)

			if e.BookmarkKey != "" && !rec.IsBookmark {
				var owner string
				err := tx.QueryRow(`SELECT path FROM entries WHERE bookmark_key = ?`, e.BookmarkKey).Scan(&owner)
				switch {
				case err == sql.ErrNoRows:
					rec.IsBookmark = true
					rec.BookmarkKey = e.BookmarkKey
				case err != nil:
					return fmt.Errorf("check bookmark %q: %w", e.BookmarkKey, err)
				}
			}

			if err := update(tx, rec); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
