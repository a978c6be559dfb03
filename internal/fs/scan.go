// Package fs lists the directories a user can jump to.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNotFound is returned when the scanned path does not exist.
	ErrNotFound = errors.New("directory not found")
	// ErrNotDirectory is returned when the scanned path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// ScanOptions controls which children ScanDirectories reports.
type ScanOptions struct {
	ShowHidden bool
	Exclude    *Filter
}

// Filter matches entry names against exclude globs.
type Filter struct {
	patterns []glob.Glob
	sources  []string
}

// NewFilter compiles the exclude patterns. An empty list yields a filter that
// excludes nothing.
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, g)
		f.sources = append(f.sources, p)
	}
	return f, nil
}

// Excluded reports whether name matches any pattern.
func (f *Filter) Excluded(name string) bool {
	if f == nil {
		return false
	}
	for _, g := range f.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.sources...)
}

// ScanDirectories lists the immediate child directories of path in
// case-insensitive name order. Symlinks resolving to directories are
// included. Children that cannot be inspected are skipped.
func ScanDirectories(path string, opts ScanOptions) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		rawName := d.Name()
		fullPath := filepath.Join(path, rawName)

		if !isDirectory(d, fullPath) {
			continue
		}
		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}
		if !opts.ShowHidden && IsHidden(fullPath, rawName) {
			continue
		}
		name := norm.NFC.String(rawName)
		if opts.Exclude.Excluded(name) {
			continue
		}

		entries = append(entries, Entry{Name: name, Path: fullPath})
	}

	SortByName(entries)
	return entries, nil
}

// SortByName orders entries by case-folded name, falling back to the raw
// name so the order is total.
func SortByName(entries []Entry) {
	fold := cases.Fold()
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := keys[e.Name]; !ok {
			keys[e.Name] = fold.String(e.Name)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := keys[entries[i].Name], keys[entries[j].Name]
		if ki != kj {
			return ki < kj
		}
		return entries[i].Name < entries[j].Name
	})
}

func isDirectory(d os.DirEntry, fullPath string) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(fullPath)
	return err == nil && target.IsDir()
}
