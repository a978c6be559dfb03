package render

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/jump/internal/labels"
	statepkg "github.com/kk-code-lab/jump/internal/state"
	"github.com/kk-code-lab/jump/internal/textutil"
)

const (
	headerRows = 1
	footerRows = 2
	// Columns between label grid cells.
	cellGap = 2
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)

	bodyTop := headerRows
	bodyRows := max(h-headerRows-footerRows, 0)
	offscreen := 0
	switch state.Mode {
	case statepkg.ModeBrowse:
		offscreen = r.drawLabelGrid(state.Browse, bodyTop, bodyRows, w)
	case statepkg.ModeFuzzy:
		r.drawFuzzyList(state.Fuzzy, bodyTop, bodyRows, w)
	case statepkg.ModeNumber:
		r.drawNumberList(state.Number, bodyTop, bodyRows, w)
	case statepkg.ModeBookmarks:
		r.drawBookmarkList(state.Bookmarks, bodyTop, bodyRows, w)
	}

	if h > headerRows {
		r.drawPromptLine(state, offscreen, w, h-2)
	}
	if h > headerRows+1 {
		r.drawFooter(state, w, h-1)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with the mode and the directory in view.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillRow(0, 0, w, style)

	x := r.drawText(0, 0, w, "jump", style.Bold(true))
	x = r.drawText(x, 0, w, " "+state.Mode.String()+" ", style.Foreground(r.theme.DimFg))

	title := state.CurrentDir()
	if state.Mode == statepkg.ModeNumber && state.Number != nil {
		title = state.Number.Title
	}
	if title == "" {
		return
	}
	title = textutil.TruncateLeft(textutil.Sanitize(title), w-x)
	r.drawText(x, 0, w, title, style.Bold(true))
}

// drawLabelGrid lays labelled entries out column by column and returns how
// many labelled entries did not fit on screen.
func (r *Renderer) drawLabelGrid(b *statepkg.BrowseState, top, rows, w int) int {
	if b == nil {
		return 0
	}
	if rows <= 0 {
		return len(b.Entries)
	}
	if len(b.Entries) == 0 {
		r.drawText(1, top, w, "(empty)", tcell.StyleDefault.Foreground(r.theme.DimFg))
		return 0
	}

	set := b.Labels()
	pending, hasPending := b.Pending()

	nameWidth := 0
	for _, e := range b.Entries {
		nameWidth = max(nameWidth, textutil.DisplayWidth(textutil.Sanitize(e.Name)))
	}
	cellWidth := min(3+nameWidth+cellGap, w)
	cols := max(w/max(cellWidth, 1), 1)

	for i, entry := range b.Entries {
		col, row := i/rows, i%rows
		if col >= cols {
			return len(b.Entries) - i
		}
		x := col * cellWidth
		y := top + row
		maxX := min(x+cellWidth-cellGap, w)
		if i >= len(set) {
			continue
		}
		r.drawLabelCell(x, y, maxX, set[i], entry, pending, hasPending)
	}
	return 0
}

func (r *Renderer) drawLabelCell(x, y, maxX int, label labels.Label, entry statepkg.FileEntry, pending rune, hasPending bool) {
	labelStyle := tcell.StyleDefault.Foreground(r.theme.LabelFg).Bold(true)
	nameStyle := tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
	if entry.IsHidden() {
		nameStyle = nameStyle.Foreground(r.theme.HiddenFg)
	}
	dim := tcell.StyleDefault.Foreground(r.theme.DimFg)

	text := label.String()
	first, second := []rune(text)[0], []rune(text)[1]
	switch {
	case !hasPending:
		x = r.drawStyledRune(x, y, maxX, first, labelStyle)
		x = r.drawStyledRune(x, y, maxX, second, labelStyle)
	case label.MatchesFirst(pending):
		x = r.drawStyledRune(x, y, maxX, first, dim)
		x = r.drawStyledRune(x, y, maxX, second, labelStyle)
	default:
		x = r.drawStyledRune(x, y, maxX, first, dim)
		x = r.drawStyledRune(x, y, maxX, second, dim)
		nameStyle = dim
	}
	x = r.drawStyledRune(x, y, maxX, ' ', tcell.StyleDefault)
	r.drawText(x, y, maxX, textutil.Truncate(textutil.Sanitize(entry.Name), maxX-x), nameStyle)
}

// drawFuzzyList renders the filtered candidates inside the viewport.
func (r *Renderer) drawFuzzyList(f *statepkg.FuzzyState, top, rows, w int) {
	if f == nil || rows <= 0 {
		return
	}
	if len(f.FilteredItems) == 0 {
		msg := "(empty)"
		if f.Query != "" {
			msg = "(no matches)"
		}
		r.drawText(1, top, w, msg, tcell.StyleDefault.Foreground(r.theme.DimFg))
		return
	}

	items, start := f.VisibleItems()
	for i, item := range items {
		if i >= rows {
			break
		}
		r.drawCandidateRow(item, top+i, w, start+i == f.Cursor)
	}
}

func (r *Renderer) drawCandidateRow(item statepkg.Candidate, y, w int, selected bool) {
	base := tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
	if item.FromOverlay {
		base = base.Foreground(r.theme.BookmarkFg)
	}
	match := base.Foreground(r.theme.MatchFg).Bold(true)
	dim := tcell.StyleDefault.Foreground(r.theme.DimFg)
	if selected {
		sel := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		base, dim = sel, sel
		match = sel.Bold(true).Underline(true)
		r.fillRow(0, y, w, sel)
	}

	marker := "  "
	if selected {
		marker = "> "
	}
	x := r.drawText(0, y, w, marker, base)

	name := textutil.Sanitize(item.Name)
	if name == item.Name {
		x = r.drawHighlightedText(x, y, w, name, item.Spans, base, match)
	} else {
		x = r.drawText(x, y, w, name, base)
	}
	if item.BookmarkKey != "" {
		x = r.drawText(x, y, w, " ["+textutil.Sanitize(item.BookmarkKey)+"]", dim)
	}
	if item.FromOverlay && x+2 < w {
		path := textutil.TruncateLeft(textutil.Sanitize(item.Path), w-x-2)
		r.drawText(x+2, y, w, path, dim)
	}
}

// drawNumberList renders the ranked candidates with their 1-based numbers.
func (r *Renderer) drawNumberList(n *statepkg.NumberState, top, rows, w int) {
	if n == nil || rows <= 0 {
		return
	}
	if len(n.Candidates) == 0 {
		r.drawText(1, top, w, "(no candidates)", tcell.StyleDefault.Foreground(r.theme.DimFg))
		return
	}

	_, highlighted, ok := n.Highlighted()
	offset := 0
	if ok && highlighted >= rows {
		offset = highlighted - rows + 1
	}
	digits := len(fmt.Sprint(len(n.Candidates)))

	for i := 0; i < rows && offset+i < len(n.Candidates); i++ {
		idx := offset + i
		entry := n.Candidates[idx]
		y := top + i

		numStyle := tcell.StyleDefault.Foreground(r.theme.LabelFg).Bold(true)
		nameStyle := tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
		dim := tcell.StyleDefault.Foreground(r.theme.DimFg)
		if ok && idx == highlighted {
			sel := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			numStyle, nameStyle, dim = sel.Bold(true), sel, sel
			r.fillRow(0, y, w, sel)
		}

		x := r.drawText(0, y, w, fmt.Sprintf(" %*d ", digits, idx+1), numStyle)
		x = r.drawText(x, y, w, textutil.Sanitize(entry.Name), nameStyle)
		if entry.Score > 0 {
			x = r.drawText(x, y, w, fmt.Sprintf("  %.1f", entry.Score), dim)
		}
		if x+2 < w && entry.Path != "" {
			r.drawText(x+2, y, w, textutil.TruncateLeft(textutil.Sanitize(entry.Path), w-x-2), dim)
		}
	}
}

// drawBookmarkList renders bookmarks as "key  name  path" rows.
func (r *Renderer) drawBookmarkList(b *statepkg.BookmarkState, top, rows, w int) {
	if b == nil || rows <= 0 {
		return
	}
	if len(b.Items) == 0 {
		r.drawText(1, top, w, "(no bookmarks)", tcell.StyleDefault.Foreground(r.theme.DimFg))
		return
	}

	keyWidth := 0
	for _, item := range b.Items {
		keyWidth = max(keyWidth, textutil.DisplayWidth(textutil.Sanitize(item.Key)))
	}

	items, start := b.VisibleItems()
	for i, item := range items {
		if i >= rows {
			break
		}
		y := top + i
		keyStyle := tcell.StyleDefault.Foreground(r.theme.BookmarkFg).Bold(true)
		nameStyle := tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
		dim := tcell.StyleDefault.Foreground(r.theme.DimFg)
		if start+i == b.Cursor {
			sel := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			keyStyle, nameStyle, dim = sel.Bold(true), sel, sel
			r.fillRow(0, y, w, sel)
		}

		x := r.drawText(1, y, w, textutil.PadRight(textutil.Sanitize(item.Key), keyWidth), keyStyle)
		x = r.drawText(x+2, y, w, textutil.Sanitize(item.Name), nameStyle)
		if x+2 < w {
			r.drawText(x+2, y, w, textutil.TruncateLeft(textutil.Sanitize(item.Path), w-x-2), dim)
		}
	}
}

// drawPromptLine shows mode input on the left and the status on the right.
func (r *Renderer) drawPromptLine(state *statepkg.AppState, offscreen, w, y int) {
	style := tcell.StyleDefault.Foreground(r.theme.Foreground)
	prompt, info := promptText(state, offscreen)

	x := r.drawText(0, y, w, textutil.Sanitize(prompt), style.Bold(true))

	right := info
	if state.Status != "" {
		right = state.Status
	}
	if right == "" {
		return
	}
	right = textutil.Truncate(textutil.Sanitize(right), max(w-x-1, 0))
	startX := w - textutil.DisplayWidth(right)
	if startX <= x {
		return
	}
	statusStyle := tcell.StyleDefault.Foreground(r.theme.DimFg)
	if state.Status != "" {
		statusStyle = tcell.StyleDefault.Foreground(r.theme.StatusFg)
	}
	r.drawText(startX, y, w, right, statusStyle)
}

// promptText returns the input line for the active mode and a summary for the
// right-hand side. offscreen counts labelled entries the grid could not show.
func promptText(state *statepkg.AppState, offscreen int) (string, string) {
	switch state.Mode {
	case statepkg.ModeBrowse:
		b := state.Browse
		if b == nil {
			return "", ""
		}
		prompt := "label: "
		info := fmt.Sprintf("%d dirs", len(b.Entries))
		if c, ok := b.Pending(); ok {
			prompt += string(unicode.ToLower(c))
			info = fmt.Sprintf("%d match", len(labels.WithFirst(b.Labels(), c)))
		}
		if offscreen > 0 {
			info += fmt.Sprintf(", +%d not shown", offscreen)
		}
		if b.Overflow > 0 {
			info += fmt.Sprintf(", %d unlabelled", b.Overflow)
		}
		if b.ShowHidden {
			info += ", hidden shown"
		}
		return prompt, info
	case statepkg.ModeFuzzy:
		f := state.Fuzzy
		if f == nil {
			return "", ""
		}
		prompt := ""
		if f.TextEntry || f.Query != "" {
			prompt = "/" + f.Query
		}
		info := fmt.Sprintf("%d/%d", len(f.FilteredItems), len(f.AllItems))
		if f.HasPendingRepeat() {
			info = fmt.Sprintf("%d  %s", f.PendingRepeatCount(), info)
		}
		return prompt, info
	case statepkg.ModeNumber:
		n := state.Number
		if n == nil {
			return "", ""
		}
		info := fmt.Sprintf("%d candidates", len(n.Candidates))
		if !n.Selector.IsValid() {
			info = fmt.Sprintf("no entry %s of %d", n.Selector.Display(), len(n.Candidates))
		}
		return "# " + n.Selector.Display(), info
	case statepkg.ModeBookmarks:
		if state.Bookmarks == nil {
			return "", ""
		}
		return "bookmark: ", fmt.Sprintf("%d bookmarks", len(state.Bookmarks.Items))
	}
	return "", ""
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(0, y, w, style)
	help := textutil.Truncate(buildFooterHelpText(state), w)
	r.drawText(0, y, w, help, style)
}
