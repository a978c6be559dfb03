package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/jump/internal/number"
	"github.com/kk-code-lab/jump/internal/search"
	statepkg "github.com/kk-code-lab/jump/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(func() {
		screen.Fini()
	})
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func fixedScanner(entries map[string][]statepkg.FileEntry) statepkg.Scanner {
	return func(path string, showHidden bool) ([]statepkg.FileEntry, error) {
		return entries[path], nil
	}
}

func accessible(string) bool { return true }

func TestRenderBrowseShowsLabels(t *testing.T) {
	screen := newTestScreen(t, 60, 10)
	browse := statepkg.NewBrowseState("/home/me", statepkg.BrowseOptions{
		Scanner: fixedScanner(map[string][]statepkg.FileEntry{
			"/home/me": {
				{Name: "docs", Path: "/home/me/docs"},
				{Name: "src", Path: "/home/me/src"},
			},
		}),
		Accessible: accessible,
	})
	state := &statepkg.AppState{Mode: statepkg.ModeBrowse, Browse: browse}

	NewRenderer(screen).Render(state)

	if got := rowText(screen, 0); !strings.Contains(got, "/home/me") {
		t.Fatalf("expected header to show the directory, got %q", got)
	}
	if got := rowText(screen, 1); got != "aa docs" {
		t.Fatalf("expected first label row, got %q", got)
	}
	if got := rowText(screen, 2); got != "as src" {
		t.Fatalf("expected second label row, got %q", got)
	}
	if got := rowText(screen, 8); !strings.Contains(got, "2 dirs") {
		t.Fatalf("expected entry count on prompt line, got %q", got)
	}
}

func TestRenderBrowsePendingDimsOtherLabels(t *testing.T) {
	screen := newTestScreen(t, 60, 30)
	entries := make([]statepkg.FileEntry, 20)
	for i := range entries {
		name := string(rune('a'+i)) + "dir"
		entries[i] = statepkg.FileEntry{Name: name, Path: "/r/" + name}
	}
	browse := statepkg.NewBrowseState("/r", statepkg.BrowseOptions{
		Scanner:    fixedScanner(map[string][]statepkg.FileEntry{"/r": entries}),
		Accessible: accessible,
	})
	browse.HandleKey('s')
	state := &statepkg.AppState{Mode: statepkg.ModeBrowse, Browse: browse}

	r := NewRenderer(screen)
	r.Render(state)

	dimFg, _, _ := tcell.StyleDefault.Foreground(r.theme.DimFg).Decompose()
	labelFg, _, _ := tcell.StyleDefault.Foreground(r.theme.LabelFg).Decompose()

	// Row 1 holds "aa", which no longer matches the pending 's'.
	if fg, _, _ := cellStyle(screen, 1, 1).Decompose(); fg != dimFg {
		t.Fatalf("expected non-matching label dimmed")
	}
	// Row 17 holds "sa": its second key stays highlighted.
	if got := rowText(screen, 17); !strings.HasPrefix(got, "sa ") {
		t.Fatalf("expected row 17 to hold label sa, got %q", got)
	}
	if fg, _, _ := cellStyle(screen, 1, 17).Decompose(); fg != labelFg {
		t.Fatalf("expected matching label's second key highlighted")
	}
	if got := rowText(screen, 28); !strings.HasPrefix(got, "label: s") {
		t.Fatalf("expected pending key on prompt line, got %q", got)
	}
	if got := rowText(screen, 28); !strings.HasSuffix(got, "4 match") {
		t.Fatalf("expected count of labels starting with s, got %q", got)
	}
}

func TestRenderBrowseReportsEntriesOffScreen(t *testing.T) {
	screen := newTestScreen(t, 60, 6)
	entries := make([]statepkg.FileEntry, 30)
	for i := range entries {
		name := fmt.Sprintf("d%02d", i)
		entries[i] = statepkg.FileEntry{Name: name, Path: "/r/" + name}
	}
	browse := statepkg.NewBrowseState("/r", statepkg.BrowseOptions{
		Scanner:    fixedScanner(map[string][]statepkg.FileEntry{"/r": entries}),
		Accessible: accessible,
	})

	NewRenderer(screen).Render(&statepkg.AppState{Mode: statepkg.ModeBrowse, Browse: browse})

	// Three body rows of seven 8-cell columns fit 21 of the 30 labels.
	if got := rowText(screen, 4); !strings.HasSuffix(got, "30 dirs, +9 not shown") {
		t.Fatalf("expected off-screen count on prompt line, got %q", got)
	}
}

func TestRenderFuzzyListHighlightsCursorAndMatches(t *testing.T) {
	screen := newTestScreen(t, 50, 8)
	items := []statepkg.Candidate{
		{Name: "projects", Path: "/p/projects", Spans: []search.MatchSpan{{Start: 0, End: 1}}},
		{Name: "proto", Path: "/p/proto", BookmarkKey: "t"},
	}
	fuzzy := &statepkg.FuzzyState{
		Query:         "pr",
		AllItems:      items,
		FilteredItems: items,
		CurrentDir:    "/p",
		Height:        5,
		TextEntry:     true,
	}
	state := &statepkg.AppState{Mode: statepkg.ModeFuzzy, Fuzzy: fuzzy}

	r := NewRenderer(screen)
	r.Render(state)

	if got := rowText(screen, 1); got != "> projects" {
		t.Fatalf("expected cursor row, got %q", got)
	}
	if got := rowText(screen, 2); got != "  proto [t]" {
		t.Fatalf("expected bookmark key on second row, got %q", got)
	}
	_, bg, _ := cellStyle(screen, 5, 1).Decompose()
	if bg != r.theme.SelectionBg {
		t.Fatalf("expected selected row background")
	}
	_, _, attrs := cellStyle(screen, 2, 1).Decompose()
	if attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("expected matched rune emphasized on selected row")
	}
	if got := rowText(screen, 6); !strings.HasPrefix(got, "/pr") || !strings.HasSuffix(got, "2/2") {
		t.Fatalf("expected query and counts on prompt line, got %q", got)
	}
}

func TestRenderFuzzyNoMatches(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	fuzzy := &statepkg.FuzzyState{
		Query:      "zzz",
		AllItems:   []statepkg.Candidate{{Name: "a", Path: "/a"}},
		CurrentDir: "/",
		Height:     3,
	}
	NewRenderer(screen).Render(&statepkg.AppState{Mode: statepkg.ModeFuzzy, Fuzzy: fuzzy})

	if got := rowText(screen, 1); got != " (no matches)" {
		t.Fatalf("expected no-match placeholder, got %q", got)
	}
}

func TestRenderNumberList(t *testing.T) {
	screen := newTestScreen(t, 60, 8)
	candidates := []statepkg.RankedEntry{
		{FileEntry: statepkg.FileEntry{Name: "work", Path: "/w"}, Score: 12.5},
		{FileEntry: statepkg.FileEntry{Name: "home", Path: "/h"}},
	}
	n := statepkg.NewNumberState("frecent", candidates, 0)
	n.Selector.AddDigit(1)
	state := &statepkg.AppState{Mode: statepkg.ModeNumber, Number: n}

	r := NewRenderer(screen)
	r.Render(state)

	if got := rowText(screen, 0); !strings.Contains(got, "frecent") {
		t.Fatalf("expected number title in header, got %q", got)
	}
	if got := rowText(screen, 1); !strings.HasPrefix(got, " 1 work  12.5") {
		t.Fatalf("expected first numbered row, got %q", got)
	}
	if got := rowText(screen, 2); !strings.HasPrefix(got, " 2 home") {
		t.Fatalf("expected second numbered row, got %q", got)
	}
	_, bg, _ := cellStyle(screen, 3, 1).Decompose()
	if bg != r.theme.SelectionBg {
		t.Fatalf("expected typed number to highlight row 1")
	}
	if got := rowText(screen, 6); !strings.HasPrefix(got, "# 1") {
		t.Fatalf("expected typed number on prompt line, got %q", got)
	}

	n.Selector.AddDigit(7)
	r.Render(state)
	if got := rowText(screen, 6); !strings.HasSuffix(got, "no entry 17 of 2") {
		t.Fatalf("expected out-of-range hint on prompt line, got %q", got)
	}
}

func TestRenderNumberScrollsToHighlighted(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	candidates := make([]statepkg.RankedEntry, 12)
	for i := range candidates {
		candidates[i] = statepkg.RankedEntry{FileEntry: statepkg.FileEntry{Name: "d", Path: "/d"}}
	}
	n := statepkg.NewNumberState("t", candidates, 0)
	n.Selector = number.New(len(candidates))
	state := &statepkg.AppState{Mode: statepkg.ModeNumber, Number: n}

	NewRenderer(screen).Render(state)

	// No digits typed selects the last candidate, so the list ends at 12.
	if got := rowText(screen, 3); !strings.HasPrefix(got, " 12 d") {
		t.Fatalf("expected last candidate on the last body row, got %q", got)
	}
}

func TestRenderBookmarks(t *testing.T) {
	screen := newTestScreen(t, 60, 8)
	b := statepkg.NewBookmarkState([]statepkg.Bookmark{
		{Key: "d", Name: "docs", Path: "/home/me/docs"},
		{Key: "pr", Name: "projects", Path: "/home/me/projects"},
	}, 5)
	NewRenderer(screen).Render(&statepkg.AppState{Mode: statepkg.ModeBookmarks, Bookmarks: b})

	if got := rowText(screen, 1); got != " d   docs  /home/me/docs" {
		t.Fatalf("expected padded bookmark row, got %q", got)
	}
	if got := rowText(screen, 2); got != " pr  projects  /home/me/projects" {
		t.Fatalf("expected second bookmark row, got %q", got)
	}
}

func TestRenderStatusReplacesSummary(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	fuzzy := &statepkg.FuzzyState{CurrentDir: "/", Height: 3}
	state := &statepkg.AppState{Mode: statepkg.ModeFuzzy, Fuzzy: fuzzy, Status: "showing hidden"}

	NewRenderer(screen).Render(state)

	if got := rowText(screen, 4); !strings.HasSuffix(got, "showing hidden") {
		t.Fatalf("expected status on prompt line, got %q", got)
	}
}

func TestRenderSanitizesNames(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	items := []statepkg.Candidate{{Name: "evil\x1b[2J", Path: "/evil"}}
	fuzzy := &statepkg.FuzzyState{AllItems: items, FilteredItems: items, CurrentDir: "/", Height: 3}
	NewRenderer(screen).Render(&statepkg.AppState{Mode: statepkg.ModeFuzzy, Fuzzy: fuzzy})

	if got := rowText(screen, 1); got != "> evil?[2J" {
		t.Fatalf("expected sanitized name, got %q", got)
	}
}

func TestFooterHelpFollowsMode(t *testing.T) {
	browse := buildFooterHelpText(&statepkg.AppState{Mode: statepkg.ModeBrowse})
	if !strings.Contains(browse, "label: enter") {
		t.Fatalf("expected browse hints, got %q", browse)
	}
	entry := buildFooterHelpText(&statepkg.AppState{
		Mode:  statepkg.ModeFuzzy,
		Fuzzy: &statepkg.FuzzyState{TextEntry: true},
	})
	if !strings.Contains(entry, "type: filter") {
		t.Fatalf("expected text-entry hints, got %q", entry)
	}
	if buildFooterHelpText(nil) != "" {
		t.Fatalf("expected no hints without state")
	}
}
