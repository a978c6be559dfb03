package state

import (
	fsutil "github.com/kk-code-lab/jump/internal/fs"
	search "github.com/kk-code-lab/jump/internal/search"
)

type FileEntry = fsutil.Entry
type MatchSpan = search.MatchSpan

// Mode selects which selection engine receives actions.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFuzzy
	ModeNumber
	ModeBookmarks
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeFuzzy:
		return "fuzzy"
	case ModeNumber:
		return "number"
	case ModeBookmarks:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a selection session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeConfirmed
	OutcomeCancelled
)

// Candidate is an entry shown in the fuzzy list.
type Candidate struct {
	Name string
	Path string
	// BookmarkKey is set when the path is bookmarked.
	BookmarkKey string
	// FromOverlay marks bookmarks that are not children of the current directory.
	FromOverlay bool
	// Spans are the matched rune ranges of Name for highlighting.
	Spans []MatchSpan
}

// Bookmark is a pinned path addressed by a user key.
type Bookmark struct {
	Key  string
	Name string
	Path string
}

// AppState is the single source of truth for one selection session.
type AppState struct {
	Mode Mode

	Browse    *BrowseState
	Fuzzy     *FuzzyState
	Number    *NumberState
	Bookmarks *BookmarkState

	Outcome Outcome
	// Result is the confirmed path.
	Result string

	// Status is a transient message for the footer.
	Status string

	ScreenWidth  int
	ScreenHeight int

	LastError error
}

// Done reports whether the session reached a terminal outcome.
func (s *AppState) Done() bool {
	return s.Outcome != OutcomeNone
}

func (s *AppState) confirm(path string) {
	s.Outcome = OutcomeConfirmed
	s.Result = path
}

func (s *AppState) cancel() {
	s.Outcome = OutcomeCancelled
	s.Result = ""
}

// CurrentDir returns the directory the active engine is showing.
func (s *AppState) CurrentDir() string {
	switch s.Mode {
	case ModeBrowse:
		if s.Browse != nil {
			return s.Browse.CurrentDir
		}
	case ModeFuzzy:
		if s.Fuzzy != nil {
			return s.Fuzzy.CurrentDir
		}
	}
	return ""
}

// Scanner lists the child directories of path.
type Scanner func(path string, showHidden bool) ([]FileEntry, error)

// NewScanner returns a Scanner over the filesystem applying exclude.
func NewScanner(exclude *fsutil.Filter) Scanner {
	return func(path string, showHidden bool) ([]FileEntry, error) {
		return fsutil.ScanDirectories(path, fsutil.ScanOptions{ShowHidden: showHidden, Exclude: exclude})
	}
}

// Scorer is the fuzzy-match collaborator.
type Scorer interface {
	Match(pattern, text string) (search.Match, bool)
}
