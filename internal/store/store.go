// Package store persists frecency records and bookmarks in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kk-code-lab/jump/internal/scoring"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when no record matches a path or bookmark key.
	ErrNotFound = errors.New("not found")
	// ErrInvalidKey is returned for an empty bookmark key.
	ErrInvalidKey = errors.New("invalid bookmark key")
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var memoryDBs atomic.Int64

// Store owns the database. Access is single-threaded: the driver loop or a
// single command holds it for the life of the process.
type Store struct {
	db *sql.DB
}

// Record is the persisted state of one visited directory.
type Record struct {
	ID           int64
	Path         string
	Name         string
	Score        scoring.Score
	AccessCount  uint32
	LastAccessed int64
	IsBookmark   bool
	BookmarkKey  string
}

// LastAccessedTime returns LastAccessed as a time.
func (r Record) LastAccessedTime() time.Time {
	return time.Unix(r.LastAccessed, 0)
}

// Open creates a Store backed by the database at dbPath, creating the schema
// if needed. MemoryPath opens a fresh in-memory database.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == MemoryPath {
		// Each Open gets its own named database so tests stay isolated while
		// every pooled connection sees the same data.
		connStr = fmt.Sprintf("file:jump-mem-%d?mode=memory&cache=shared", memoryDBs.Add(1))
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA busy_timeout=2000"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		score REAL NOT NULL DEFAULT 1.0,
		access_count INTEGER NOT NULL DEFAULT 0,
		last_accessed INTEGER NOT NULL DEFAULT 0,
		decayed_at INTEGER NOT NULL DEFAULT 0,
		is_bookmark INTEGER NOT NULL DEFAULT 0,
		bookmark_key TEXT UNIQUE
	);

	CREATE INDEX IF NOT EXISTS idx_entries_score ON entries(score DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

const recordColumns = `id, path, name, score, access_count, last_accessed, is_bookmark, bookmark_key`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec        Record
		score      float64
		accessCnt  int64
		isBookmark int
		key        sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Path, &rec.Name, &score, &accessCnt, &rec.LastAccessed, &isBookmark, &key); err != nil {
		return Record{}, err
	}
	rec.Score = scoring.FromRaw(score)
	rec.AccessCount = uint32(accessCnt)
	rec.IsBookmark = isBookmark != 0
	rec.BookmarkKey = key.String
	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
}

// Get returns the record for path.
func (s *Store) Get(path string) (Record, error) {
	return get(s.db, path)
}

func get(q querier, path string) (Record, error) {
	rec, err := scanRecord(q.QueryRow(`SELECT `+recordColumns+` FROM entries WHERE path = ?`, path))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get %s: %w", path, err)
	}
	return rec, nil
}

// GetOrCreate returns the record for path, inserting a fresh one stamped with
// now if none exists.
func (s *Store) GetOrCreate(path, name string, now time.Time) (Record, error) {
	return getOrCreate(s.db, path, name, now)
}

func getOrCreate(q querier, path, name string, now time.Time) (Record, error) {
	_, err := q.Exec(`
		INSERT OR IGNORE INTO entries (path, name, score, access_count, last_accessed)
		VALUES (?, ?, ?, 0, ?)`,
		path, name, scoring.Default().Raw(), now.Unix())
	if err != nil {
		return Record{}, fmt.Errorf("insert %s: %w", path, err)
	}
	return get(q, path)
}

// Update writes every mutable field of rec, keyed by its path.
func (s *Store) Update(rec Record) error {
	return update(s.db, rec)
}

func update(q querier, rec Record) error {
	var key any
	if rec.IsBookmark && rec.BookmarkKey != "" {
		key = rec.BookmarkKey
	}
	res, err := q.Exec(`
		UPDATE entries
		SET name = ?, score = ?, access_count = ?, last_accessed = ?, is_bookmark = ?, bookmark_key = ?
		WHERE path = ?`,
		rec.Name, rec.Score.Raw(), int64(rec.AccessCount), rec.LastAccessed, boolInt(rec.IsBookmark), key, rec.Path)
	if err != nil {
		return fmt.Errorf("update %s: %w", rec.Path, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, rec.Path)
	}
	return nil
}

// RecordVisit counts an access to path at now and recomputes its score.
func (s *Store) RecordVisit(path, name string, now time.Time) (Record, error) {
	var out Record
	err := s.withTx(func(tx *sql.Tx) error {
		rec, err := getOrCreate(tx, path, name, now)
		if err != nil {
			return err
		}
		rec.AccessCount++
		rec.LastAccessed = now.Unix()
		if name != "" {
			rec.Name = name
		}
		rec.Score = rec.Score.Recalculate(rec.AccessCount, rec.LastAccessed, now)
		if err := update(tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	return out, err
}

// Top returns up to limit records ordered by score, most recent first on ties.
func (s *Store) Top(limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT `+recordColumns+` FROM entries
		ORDER BY score DESC, last_accessed DESC, path ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top records: %w", err)
	}
	return scanRecords(rows)
}

// All returns every record ordered by path.
func (s *Store) All() ([]Record, error) {
	rows, err := s.db.Query(`SELECT ` + recordColumns + ` FROM entries ORDER BY path ASC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return scanRecords(rows)
}

const scoreBatch = 500

// ScoresFor returns the stored score of each known path.
func (s *Store) ScoresFor(paths []string) (map[string]float64, error) {
	out := make(map[string]float64, len(paths))
	for start := 0; start < len(paths); start += scoreBatch {
		end := min(start+scoreBatch, len(paths))
		batch := paths[start:end]

		args := make([]any, len(batch))
		for i, p := range batch {
			args[i] = p
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(batch)), ",")
		rows, err := s.db.Query(`SELECT path, score FROM entries WHERE path IN (`+placeholders+`)`, args...)
		if err != nil {
			return nil, fmt.Errorf("query scores: %w", err)
		}
		for rows.Next() {
			var (
				path  string
				score float64
			)
			if err := rows.Scan(&path, &score); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan score: %w", err)
			}
			out[path] = score
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
