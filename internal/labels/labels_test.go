package labels

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateCountsAndOrder(t *testing.T) {
	for _, n := range []int{0, 1, 5, 16, 17, 100, 255, 256, 257, 1000} {
		set := Generate(n)
		want := n
		if want > MaxLabels {
			want = MaxLabels
		}
		if len(set) != want {
			t.Fatalf("Generate(%d): expected %d labels, got %d", n, want, len(set))
		}

		seen := make(map[Label]bool, len(set))
		for i, l := range set {
			if seen[l] {
				t.Fatalf("Generate(%d): duplicate label %s", n, l)
			}
			seen[l] = true

			expect := Label{Keys[i/len(Keys)], Keys[i%len(Keys)]}
			if l != expect {
				t.Fatalf("Generate(%d): label %d = %s, want %s", n, i, l, expect)
			}
		}
	}
}

func TestGenerateFirstLabels(t *testing.T) {
	set := Generate(5)
	got := make([]string, len(set))
	for i, l := range set {
		got[i] = l.String()
	}
	if strings.Join(got, ",") != "aa,as,ad,af,ag" {
		t.Fatalf("unexpected labels: %v", got)
	}
}

func TestLabelMatchingIsCaseInsensitive(t *testing.T) {
	l := Label{'A', 'S'}
	if !l.Matches('a', 's') || !l.Matches('A', 'S') || !l.Matches('a', 'S') {
		t.Fatalf("expected case-insensitive match")
	}
	if l.Matches('a', 'd') {
		t.Fatalf("unexpected match for ad")
	}
}

func TestFind(t *testing.T) {
	set := Generate(10)
	if idx := Find(set, 'a', 's'); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := Find(set, 'o', 'o'); idx != -1 {
		t.Fatalf("expected -1 for missing label, got %d", idx)
	}
}

func TestWithFirst(t *testing.T) {
	set := Generate(20)
	if got := WithFirst(set, 's'); len(got) != 4 || got[0] != 16 {
		t.Fatalf("expected 4 labels starting with S from 16, got %v", got)
	}
	if got := WithFirst(set, 'o'); len(got) != 0 {
		t.Fatalf("expected no labels starting with O, got %v", got)
	}
}

func TestMachineResolvesEveryLabel(t *testing.T) {
	for _, n := range []int{1, 7, 64, 256} {
		m := NewMachine(n)
		for i, l := range m.Labels() {
			first, second := l[0], l[1]
			if i%2 == 0 {
				first, second = unicode.ToLower(first), unicode.ToLower(second)
			}
			if ev := m.Feed(first); ev != (Pending{Char: l[0]}) {
				t.Fatalf("n=%d label %s: expected pending, got %#v", n, l, ev)
			}
			ev := m.Feed(second)
			if ev != (Descend{Index: i}) {
				t.Fatalf("n=%d label %s: expected descend %d, got %#v", n, l, i, ev)
			}
			if _, ok := m.State().(Idle); !ok {
				t.Fatalf("expected idle after descend")
			}
		}
	}
}

func TestMachineIgnoresUnknownFirstCharacter(t *testing.T) {
	m := NewMachine(3) // aa, as, ad
	for _, c := range []rune{'s', 'z', '1', 'O'} {
		if ev := m.Feed(c); ev != (Ignored{}) {
			t.Fatalf("feed %q: expected ignored, got %#v", c, ev)
		}
		if _, ok := m.State().(Idle); !ok {
			t.Fatalf("feed %q: expected machine to stay idle", c)
		}
	}
}

func TestMachineAbandonsUnmatchedSecondCharacter(t *testing.T) {
	m := NewMachine(3)
	m.Feed('a')
	ev := m.Feed('q')
	if ev != (Abandoned{First: 'A', Second: 'Q'}) {
		t.Fatalf("expected abandoned, got %#v", ev)
	}
	if _, pending := m.Pending(); pending {
		t.Fatalf("expected pending character to be discarded")
	}
}

func TestMachineReservedPair(t *testing.T) {
	// 90 candidates: labels starting with H exist (h* starts at 80) but HH (index 85) does too.
	m := NewMachine(90)
	m.Reserve('h', CommandToggleHidden)
	m.Feed('h')
	if ev := m.Feed('h'); ev != (Descend{Index: 85}) {
		t.Fatalf("expected label hh to win over reserved command, got %#v", ev)
	}

	// 83 candidates: h* labels exist but HH does not.
	m = NewMachine(83)
	m.Reserve('h', CommandToggleHidden)
	m.Feed('H')
	if ev := m.Feed('h'); ev != (Invoke{Command: CommandToggleHidden}) {
		t.Fatalf("expected toggle command, got %#v", ev)
	}
	if _, ok := m.State().(Idle); !ok {
		t.Fatalf("expected idle after command")
	}
}

func TestMachineRebuildClearsPending(t *testing.T) {
	m := NewMachine(10)
	m.Feed('a')
	m.Rebuild(2)
	if _, pending := m.Pending(); pending {
		t.Fatalf("expected rebuild to clear pending state")
	}
	if len(m.Labels()) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(m.Labels()))
	}
}
