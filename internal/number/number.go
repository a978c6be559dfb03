// Package number implements digit-based selection over a fixed ranked list.
package number

import "strconv"

// MaxDigits is the number of digits a selection may have.
const MaxDigits = 3

const limit = 1000

// Mode accumulates typed digits into a 1-based position.
type Mode struct {
	// CurrentNumber is the number typed so far (0..999).
	CurrentNumber uint32
	// MaxNumber is the last valid 0-based index, or -1 for an empty list.
	MaxNumber int
	// IsComplete is set once the selection has been confirmed.
	IsComplete bool
}

// New creates a selector over count candidates.
func New(count int) *Mode {
	return &Mode{MaxNumber: count - 1}
}

// Count returns the number of selectable candidates.
func (m *Mode) Count() int {
	return m.MaxNumber + 1
}

// Reset clears the typed number and the completed flag.
func (m *Mode) Reset() {
	m.CurrentNumber = 0
	m.IsComplete = false
}

// AddDigit appends d (0-9). Digits that would exceed three places, and any
// digit typed after confirmation, are ignored.
func (m *Mode) AddDigit(d uint8) {
	if m.IsComplete || d > 9 {
		return
	}
	next := m.CurrentNumber*10 + uint32(d)
	if next >= limit {
		return
	}
	m.CurrentNumber = next
}

// Backspace drops the last digit. After confirmation it only clears the
// completed flag so the number can be corrected in place.
func (m *Mode) Backspace() {
	if m.IsComplete {
		m.IsComplete = false
		return
	}
	m.CurrentNumber /= 10
}

// SelectedIndex resolves the typed number to a 0-based index. An empty entry
// selects the last candidate.
func (m *Mode) SelectedIndex() (int, bool) {
	count := m.Count()
	n := int(m.CurrentNumber)
	switch {
	case n == 0:
		if count > 0 {
			return count - 1, true
		}
		return 0, false
	case n <= count:
		return n - 1, true
	default:
		return 0, false
	}
}

// IsValid reports whether the typed number selects a candidate.
func (m *Mode) IsValid() bool {
	_, ok := m.SelectedIndex()
	return ok
}

// Confirm marks the entry complete and returns the selection.
func (m *Mode) Confirm() (int, bool) {
	m.IsComplete = true
	return m.SelectedIndex()
}

// Display renders the typed number, or "_" when nothing has been typed.
func (m *Mode) Display() string {
	if m.CurrentNumber == 0 {
		return "_"
	}
	return strconv.FormatUint(uint64(m.CurrentNumber), 10)
}
