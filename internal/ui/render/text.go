package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/jump/internal/search"
	"github.com/mattn/go-runewidth"
)

func runeCells(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		return 0
	}
	return w
}

// drawStyledRune draws ru at x and returns the next free column.
func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	width := runeCells(ru)
	if width <= 0 {
		width = 1
	}
	if x+width > maxX {
		// A wide rune that does not fit leaves a blank cell instead.
		r.screen.SetContent(x, y, ' ', nil, style)
		return maxX
	}
	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

// drawText draws text from startX, clipped at maxX.
func (r *Renderer) drawText(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x >= maxX {
			break
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
	}
	return x
}

// drawHighlightedText draws text with the runes inside spans in matchStyle.
func (r *Renderer) drawHighlightedText(startX, y, maxX int, text string, spans []search.MatchSpan, baseStyle, matchStyle tcell.Style) int {
	x := startX
	idx := 0
	for _, ru := range text {
		if x >= maxX {
			break
		}
		style := baseStyle
		if search.InSpans(spans, idx) {
			style = matchStyle
		}
		x = r.drawStyledRune(x, y, maxX, ru, style)
		idx++
	}
	return x
}

// fillRow paints columns [startX, maxX) of row y with style.
func (r *Renderer) fillRow(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
