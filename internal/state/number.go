package state

import "github.com/kk-code-lab/jump/internal/number"

// NumberState selects one of a fixed ranked list by typing its position.
type NumberState struct {
	Title      string
	Candidates []RankedEntry
	Selector   *number.Mode
}

// NewNumberState builds a selector over candidates, keeping at most limit of
// them when limit is positive.
func NewNumberState(title string, candidates []RankedEntry, limit int) *NumberState {
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return &NumberState{
		Title:      title,
		Candidates: candidates,
		Selector:   number.New(len(candidates)),
	}
}

// Highlighted returns the entry the typed number currently resolves to.
func (n *NumberState) Highlighted() (RankedEntry, int, bool) {
	idx, ok := n.Selector.SelectedIndex()
	if !ok || idx >= len(n.Candidates) {
		return RankedEntry{}, -1, false
	}
	return n.Candidates[idx], idx, true
}

// Confirm completes the entry. An invalid number resets the selector.
func (n *NumberState) Confirm() (string, bool) {
	idx, ok := n.Selector.Confirm()
	if !ok || idx >= len(n.Candidates) {
		n.Selector.Reset()
		return "", false
	}
	return n.Candidates[idx].Path, true
}
