package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SetBookmark binds key to path, creating the record if needed. A key already
// bound to another path moves to this one.
func (s *Store) SetBookmark(path, name, key string, now time.Time) (Record, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Record{}, ErrInvalidKey
	}

	var out Record
	err := s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			UPDATE entries SET is_bookmark = 0, bookmark_key = NULL
			WHERE bookmark_key = ? AND path <> ?`, key, path); err != nil {
			return fmt.Errorf("release key %q: %w", key, err)
		}
		rec, err := getOrCreate(tx, path, name, now)
		if err != nil {
			return err
		}
		rec.IsBookmark = true
		rec.BookmarkKey = key
		if name != "" {
			rec.Name = name
		}
		if err := update(tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	return out, err
}

// RemoveBookmark unbinds key. The record and its visit history stay.
func (s *Store) RemoveBookmark(key string) error {
	res, err := s.db.Exec(`UPDATE entries SET is_bookmark = 0, bookmark_key = NULL WHERE bookmark_key = ?`, key)
	if err != nil {
		return fmt.Errorf("remove bookmark %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: bookmark %q", ErrNotFound, key)
	}
	return nil
}

// GetBookmark returns the record bound to key.
func (s *Store) GetBookmark(key string) (Record, error) {
	rec, err := scanRecord(s.db.QueryRow(`SELECT `+recordColumns+` FROM entries WHERE bookmark_key = ?`, key))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: bookmark %q", ErrNotFound, key)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get bookmark %q: %w", key, err)
	}
	return rec, nil
}

// ListBookmarks returns all bookmarks ordered by key.
func (s *Store) ListBookmarks() ([]Record, error) {
	rows, err := s.db.Query(`SELECT ` + recordColumns + ` FROM entries
		WHERE is_bookmark = 1 AND bookmark_key IS NOT NULL ORDER BY bookmark_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return scanRecords(rows)
}
