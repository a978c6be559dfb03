package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	search "github.com/kk-code-lab/jump/internal/search"
)

func makeTree(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	return root
}

func candidateNames(items []Candidate) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func entryNames(entries []FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// tableScorer matches substrings (case-insensitively) and scores them from a
// table, defaulting to 1.
type tableScorer map[string]int

func (ts tableScorer) Match(pattern, text string) (search.Match, bool) {
	if !strings.Contains(strings.ToLower(text), strings.ToLower(pattern)) {
		return search.Match{}, false
	}
	if score, ok := ts[text]; ok {
		return search.Match{Score: score}, true
	}
	return search.Match{Score: 1}, true
}

// fixedScanner serves canned listings per path.
type fixedScanner map[string][]FileEntry

func (fs fixedScanner) scan(path string, _ bool) ([]FileEntry, error) {
	entries, ok := fs[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return append([]FileEntry(nil), entries...), nil
}

func listing(dir string, names ...string) []FileEntry {
	out := make([]FileEntry, len(names))
	for i, n := range names {
		out[i] = FileEntry{Name: n, Path: filepath.Join(dir, n)}
	}
	return out
}

func alwaysAccessible(string) bool { return true }
