package number

import "testing"

func TestNew(t *testing.T) {
	m := New(10)
	if m.CurrentNumber != 0 || m.MaxNumber != 9 || m.IsComplete {
		t.Fatalf("unexpected initial state: %+v", m)
	}
}

func TestAddDigit(t *testing.T) {
	m := New(100)
	m.AddDigit(3)
	m.AddDigit(4)
	if m.CurrentNumber != 34 {
		t.Fatalf("expected 34, got %d", m.CurrentNumber)
	}
}

func TestAddDigitCapsAtThreeDigits(t *testing.T) {
	m := New(10)
	for _, d := range []uint8{9, 9, 9, 9, 1} {
		m.AddDigit(d)
	}
	if m.CurrentNumber != 999 {
		t.Fatalf("expected 999, got %d", m.CurrentNumber)
	}

	m.Reset()
	m.AddDigit(1)
	m.AddDigit(2)
	m.AddDigit(3)
	m.AddDigit(4)
	if m.CurrentNumber != 123 {
		t.Fatalf("expected extra digit to be ignored, got %d", m.CurrentNumber)
	}
}

func TestBackspace(t *testing.T) {
	m := New(10)
	m.AddDigit(5)
	m.AddDigit(2)
	m.Backspace()
	if m.CurrentNumber != 5 {
		t.Fatalf("expected 5, got %d", m.CurrentNumber)
	}
	m.Backspace()
	m.Backspace()
	if m.CurrentNumber != 0 {
		t.Fatalf("expected 0, got %d", m.CurrentNumber)
	}
}

func TestBackspaceAfterConfirmClearsCompleted(t *testing.T) {
	m := New(10)
	m.AddDigit(4)
	m.Confirm()
	m.Backspace()
	if m.IsComplete {
		t.Fatalf("expected completed flag to be cleared")
	}
	if m.CurrentNumber != 4 {
		t.Fatalf("expected number to be kept, got %d", m.CurrentNumber)
	}
	m.Backspace()
	if m.CurrentNumber != 0 {
		t.Fatalf("expected second backspace to drop the digit, got %d", m.CurrentNumber)
	}
}

func TestSelectedIndex(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		digits []uint8
		want   int
		ok     bool
	}{
		{name: "empty selects last", count: 10, want: 9, ok: true},
		{name: "single candidate empty entry", count: 1, want: 0, ok: true},
		{name: "no candidates", count: 0, ok: false},
		{name: "first", count: 10, digits: []uint8{1}, want: 0, ok: true},
		{name: "fifth", count: 10, digits: []uint8{5}, want: 4, ok: true},
		{name: "last exactly", count: 10, digits: []uint8{1, 0}, want: 9, ok: true},
		{name: "out of range", count: 5, digits: []uint8{9}, ok: false},
		{name: "leading zero", count: 10, digits: []uint8{0, 3}, want: 2, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.count)
			for _, d := range tt.digits {
				m.AddDigit(d)
			}
			got, ok := m.SelectedIndex()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected index %d, got %d", tt.want, got)
			}
		})
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	m := New(10)
	m.AddDigit(3)
	first, ok1 := m.Confirm()
	second, ok2 := m.Confirm()
	if first != 2 || !ok1 {
		t.Fatalf("expected (2, true), got (%d, %v)", first, ok1)
	}
	if first != second || ok1 != ok2 {
		t.Fatalf("confirm not idempotent: (%d,%v) then (%d,%v)", first, ok1, second, ok2)
	}
	if m.CurrentNumber != 3 || !m.IsComplete {
		t.Fatalf("unexpected state after confirm: %+v", m)
	}
}

func TestDigitsIgnoredAfterConfirm(t *testing.T) {
	m := New(100)
	m.AddDigit(2)
	m.Confirm()
	m.AddDigit(7)
	if m.CurrentNumber != 2 {
		t.Fatalf("expected digits to be ignored after confirm, got %d", m.CurrentNumber)
	}
}

func TestDisplay(t *testing.T) {
	m := New(10)
	if m.Display() != "_" {
		t.Fatalf("expected placeholder, got %q", m.Display())
	}
	m.AddDigit(5)
	if m.Display() != "5" {
		t.Fatalf("expected 5, got %q", m.Display())
	}
}
