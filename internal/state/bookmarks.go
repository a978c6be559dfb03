package state

// BookmarkState picks a bookmark from a list ordered by key.
type BookmarkState struct {
	Items        []Bookmark
	Cursor       int
	ScrollOffset int
	Height       int

	maxHeight int
}

// NewBookmarkState returns a picker over items.
func NewBookmarkState(items []Bookmark, height int) *BookmarkState {
	if height <= 0 {
		height = DefaultViewportHeight
	}
	return &BookmarkState{Items: items, Height: height, maxHeight: height}
}

// SetHeight fits the viewport to h available rows, never exceeding the
// height the picker was created with.
func (b *BookmarkState) SetHeight(h int) {
	if b.maxHeight > 0 && h > b.maxHeight {
		h = b.maxHeight
	}
	b.Height = max(h, 1)
	b.moveTo(b.Cursor)
}

// KeyPress selects the bookmark whose key is exactly c. Otherwise j and k
// move the cursor.
func (b *BookmarkState) KeyPress(c rune) (string, bool) {
	key := string(c)
	for _, item := range b.Items {
		if item.Key == key {
			return item.Path, true
		}
	}
	switch c {
	case 'j', 'J':
		b.MoveDown()
	case 'k', 'K':
		b.MoveUp()
	}
	return "", false
}

func (b *BookmarkState) MoveDown() { b.moveTo(b.Cursor + 1) }
func (b *BookmarkState) MoveUp()   { b.moveTo(b.Cursor - 1) }

func (b *BookmarkState) moveTo(idx int) {
	b.Cursor = clampIndex(idx, len(b.Items))
	b.ScrollOffset = adjustScroll(b.Cursor, b.ScrollOffset, b.Height)
}

// Selected returns the highlighted bookmark.
func (b *BookmarkState) Selected() (Bookmark, bool) {
	if b.Cursor < 0 || b.Cursor >= len(b.Items) {
		return Bookmark{}, false
	}
	return b.Items[b.Cursor], true
}

// VisibleItems returns the rows inside the viewport and the index of the first.
func (b *BookmarkState) VisibleItems() ([]Bookmark, int) {
	start, end := windowBounds(b.ScrollOffset, b.Height, len(b.Items))
	return b.Items[start:end], start
}
