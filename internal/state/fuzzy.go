package state

import (
	fsutil "github.com/kk-code-lab/jump/internal/fs"
	search "github.com/kk-code-lab/jump/internal/search"
)

// maxRepeatCount bounds the digit prefix of a motion.
const maxRepeatCount = 9999

// FuzzyOptions configures a FuzzyState.
type FuzzyOptions struct {
	ShowHidden bool
	// Height is the most rows shown; DefaultViewportHeight when zero. A
	// smaller terminal shrinks the viewport further.
	Height  int
	Scanner Scanner
	Scorer  Scorer
	// Bookmarks, when non-empty, are offered alongside the directory's children
	// while a query is active.
	Bookmarks []Bookmark
	// Accessible decides whether a candidate can be entered.
	Accessible func(path string) bool
}

// FuzzyState is the filter-and-navigate engine for one directory at a time.
type FuzzyState struct {
	Query         string
	AllItems      []Candidate
	FilteredItems []Candidate
	Cursor        int
	ScrollOffset  int
	CurrentDir    string
	ShowHidden    bool
	Height        int

	// TextEntry is set while keystrokes edit the query.
	TextEntry bool

	// LastError holds the most recent scan failure.
	LastError error

	pendingRepeat int
	maxHeight     int
	scan          Scanner
	scorer        Scorer
	bookmarks     []Bookmark
	bookmarkKeys  map[string]string
	accessible    func(string) bool
}

// NewFuzzyState loads dir and returns a state showing all of its children.
func NewFuzzyState(dir string, opts FuzzyOptions) *FuzzyState {
	s := &FuzzyState{
		ShowHidden: opts.ShowHidden,
		Height:     opts.Height,
		scan:       opts.Scanner,
		scorer:     opts.Scorer,
		bookmarks:  opts.Bookmarks,
		accessible: opts.Accessible,
	}
	if s.Height <= 0 {
		s.Height = DefaultViewportHeight
	}
	s.maxHeight = s.Height
	if s.scorer == nil {
		s.scorer = search.NewMatcher()
	}
	if s.accessible == nil {
		s.accessible = fsutil.IsAccessible
	}
	s.bookmarkKeys = make(map[string]string, len(opts.Bookmarks))
	for _, b := range opts.Bookmarks {
		s.bookmarkKeys[b.Path] = b.Key
	}
	s.load(dir)
	return s
}

// load replaces the directory context and clears the query and position.
func (s *FuzzyState) load(dir string) {
	entries, err := LoadDirectory(s.scan, dir, s.ShowHidden)
	s.LastError = err
	s.CurrentDir = dir
	s.AllItems = make([]Candidate, len(entries))
	for i, e := range entries {
		s.AllItems[i] = Candidate{Name: e.Name, Path: e.Path, BookmarkKey: s.bookmarkKeys[e.Path]}
	}
	s.Query = ""
	s.TextEntry = false
	s.pendingRepeat = 0
	s.refilter()
}

// SetHeight fits the viewport to h available rows, never exceeding the
// configured height.
func (s *FuzzyState) SetHeight(h int) {
	if s.maxHeight > 0 && h > s.maxHeight {
		h = s.maxHeight
	}
	if h <= 0 {
		h = 1
	}
	s.Height = h
	s.ScrollOffset = adjustScroll(s.Cursor, s.ScrollOffset, s.Height)
}

// HasBookmarkOverlay reports whether bookmarks join the results of a query.
func (s *FuzzyState) HasBookmarkOverlay() bool {
	return len(s.bookmarks) > 0
}

// ===== QUERY =====

// SetQuery replaces the query and refilters.
func (s *FuzzyState) SetQuery(q string) {
	s.resetRepeat()
	s.Query = q
	s.refilter()
}

// AddChar appends c to the query.
func (s *FuzzyState) AddChar(c rune) {
	s.SetQuery(s.Query + string(c))
}

// PopChar removes the last rune of the query.
func (s *FuzzyState) PopChar() {
	if s.Query == "" {
		s.resetRepeat()
		return
	}
	r := []rune(s.Query)
	s.SetQuery(string(r[:len(r)-1]))
}

// ClearQuery empties the query.
func (s *FuzzyState) ClearQuery() {
	s.SetQuery("")
}

// ===== MOTION =====

// AddRepeatDigit accumulates a count for the next vertical motion.
func (s *FuzzyState) AddRepeatDigit(d int) {
	if d < 0 || d > 9 {
		s.resetRepeat()
		return
	}
	next := s.pendingRepeat*10 + d
	if next > maxRepeatCount {
		next = maxRepeatCount
	}
	s.pendingRepeat = next
}

// PendingRepeatCount is the repeat factor the next motion will use.
func (s *FuzzyState) PendingRepeatCount() int {
	if s.pendingRepeat <= 0 {
		return 1
	}
	return s.pendingRepeat
}

// HasPendingRepeat reports whether digits have been typed.
func (s *FuzzyState) HasPendingRepeat() bool {
	return s.pendingRepeat > 0
}

func (s *FuzzyState) resetRepeat() {
	s.pendingRepeat = 0
}

func (s *FuzzyState) consumeRepeat() int {
	n := s.PendingRepeatCount()
	s.pendingRepeat = 0
	return n
}

// MoveDown moves the cursor down by the pending repeat count.
func (s *FuzzyState) MoveDown() {
	s.moveTo(s.Cursor + s.consumeRepeat())
}

// MoveUp moves the cursor up by the pending repeat count.
func (s *FuzzyState) MoveUp() {
	s.moveTo(s.Cursor - s.consumeRepeat())
}

// PageDown moves the cursor down by PageSize.
func (s *FuzzyState) PageDown() {
	s.resetRepeat()
	s.moveTo(s.Cursor + PageSize)
}

// PageUp moves the cursor up by PageSize.
func (s *FuzzyState) PageUp() {
	s.resetRepeat()
	s.moveTo(s.Cursor - PageSize)
}

// GoToStart selects the first result.
func (s *FuzzyState) GoToStart() {
	s.resetRepeat()
	s.moveTo(0)
}

// GoToEnd selects the last result.
func (s *FuzzyState) GoToEnd() {
	s.resetRepeat()
	s.moveTo(len(s.FilteredItems) - 1)
}

func (s *FuzzyState) moveTo(idx int) {
	s.Cursor = clampIndex(idx, len(s.FilteredItems))
	s.ScrollOffset = adjustScroll(s.Cursor, s.ScrollOffset, s.Height)
}

// SelectedItem returns the highlighted candidate.
func (s *FuzzyState) SelectedItem() (Candidate, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.FilteredItems) {
		return Candidate{}, false
	}
	return s.FilteredItems[s.Cursor], true
}

// VisibleItems returns the rows inside the viewport and the index of the first.
func (s *FuzzyState) VisibleItems() ([]Candidate, int) {
	start, end := windowBounds(s.ScrollOffset, s.Height, len(s.FilteredItems))
	return s.FilteredItems[start:end], start
}

// ===== DIRECTORY =====

// NavigateInto replaces the context with the highlighted candidate's
// directory. It reports false when nothing is highlighted or the path cannot
// be entered.
func (s *FuzzyState) NavigateInto() bool {
	s.resetRepeat()
	item, ok := s.SelectedItem()
	if !ok || !s.accessible(item.Path) {
		return false
	}
	s.load(item.Path)
	return true
}

// NavigateBack loads the parent directory and highlights the directory just
// left. It is a no-op at the filesystem root.
func (s *FuzzyState) NavigateBack() bool {
	s.resetRepeat()
	parent, ok := parentOf(s.CurrentDir)
	if !ok {
		return false
	}
	from := s.CurrentDir
	s.load(parent)
	if i := indexOfPath(s.FilteredItems, from); i >= 0 {
		s.moveTo(i)
	}
	return true
}

// ToggleHidden flips hidden-entry visibility and reloads the directory,
// keeping the query.
func (s *FuzzyState) ToggleHidden() {
	query := s.Query
	entry := s.TextEntry
	s.ShowHidden = !s.ShowHidden
	s.load(s.CurrentDir)
	s.TextEntry = entry
	if query != "" {
		s.SetQuery(query)
	}
}

// Reload rescans the current directory without changing flags. The query
// is reapplied and the highlighted path stays highlighted if it still exists.
func (s *FuzzyState) Reload() {
	query, entry := s.Query, s.TextEntry
	selected, hadSelection := s.SelectedItem()
	s.load(s.CurrentDir)
	s.TextEntry = entry
	if query != "" {
		s.SetQuery(query)
	}
	if hadSelection {
		if i := indexOfPath(s.FilteredItems, selected.Path); i >= 0 {
			s.moveTo(i)
		}
	}
}
