// Package labels assigns two-keystroke addresses to ranked candidates and
// interprets keystrokes against them.
package labels

import "unicode"

// Keys is the label alphabet in priority order: home row first, then the
// upper row reachable without leaving it.
var Keys = [...]rune{
	'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', 'Q', 'W', 'E', 'R', 'U', 'I', 'O',
}

// MaxLabels is the number of distinct two-character labels.
const MaxLabels = len(Keys) * len(Keys)

// Label is a fixed pair of upper-case characters.
type Label [2]rune

// String renders the label as typed by the user (lower case).
func (l Label) String() string {
	return string([]rune{unicode.ToLower(l[0]), unicode.ToLower(l[1])})
}

// MatchesFirst reports whether c selects the label's first character.
func (l Label) MatchesFirst(c rune) bool {
	return l[0] == normalize(c)
}

// Matches reports whether the keystroke pair selects this label.
func (l Label) Matches(first, second rune) bool {
	return l[0] == normalize(first) && l[1] == normalize(second)
}

// Generate returns count labels in enumeration order, capped at MaxLabels.
func Generate(count int) []Label {
	if count <= 0 {
		return nil
	}
	if count > MaxLabels {
		count = MaxLabels
	}

	out := make([]Label, 0, count)
	for _, first := range Keys {
		for _, second := range Keys {
			if len(out) == count {
				return out
			}
			out = append(out, Label{first, second})
		}
	}
	return out
}

// Find returns the index of the label addressed by first and second, or -1.
func Find(set []Label, first, second rune) int {
	for i, l := range set {
		if l.Matches(first, second) {
			return i
		}
	}
	return -1
}

// HasFirst reports whether any label starts with c.
func HasFirst(set []Label, c rune) bool {
	for _, l := range set {
		if l.MatchesFirst(c) {
			return true
		}
	}
	return false
}

// WithFirst returns the indexes of labels starting with c.
func WithFirst(set []Label, c rune) []int {
	var idx []int
	for i, l := range set {
		if l.MatchesFirst(c) {
			idx = append(idx, i)
		}
	}
	return idx
}

func normalize(c rune) rune {
	return unicode.ToUpper(c)
}
