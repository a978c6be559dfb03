package state

import (
	fsutil "github.com/kk-code-lab/jump/internal/fs"
	"github.com/kk-code-lab/jump/internal/labels"
)

// BrowseOptions configures a BrowseState.
type BrowseOptions struct {
	ShowHidden bool
	Scanner    Scanner
	Accessible func(path string) bool
}

// BrowseState drives label addressing over one directory's children.
type BrowseState struct {
	CurrentDir string
	ShowHidden bool
	// Entries are the labelled children, at most labels.MaxLabels.
	Entries []FileEntry
	// Overflow counts children beyond the label capacity.
	Overflow int
	LastError error

	machine    *labels.Machine
	scan       Scanner
	accessible func(string) bool
}

// NewBrowseState loads dir and labels its children.
func NewBrowseState(dir string, opts BrowseOptions) *BrowseState {
	b := &BrowseState{
		ShowHidden: opts.ShowHidden,
		scan:       opts.Scanner,
		accessible: opts.Accessible,
		machine:    labels.NewMachine(0),
	}
	if b.accessible == nil {
		b.accessible = fsutil.IsAccessible
	}
	b.machine.Reserve('h', labels.CommandToggleHidden)
	b.load(dir)
	return b
}

func (b *BrowseState) load(dir string) {
	entries, err := LoadDirectory(b.scan, dir, b.ShowHidden)
	b.LastError = err
	b.CurrentDir = dir
	b.Overflow = 0
	if len(entries) > labels.MaxLabels {
		b.Overflow = len(entries) - labels.MaxLabels
		entries = entries[:labels.MaxLabels]
	}
	b.Entries = entries
	b.machine.Rebuild(len(entries))
}

// Labels returns the label of each entry, index-aligned with Entries.
func (b *BrowseState) Labels() []labels.Label {
	return b.machine.Labels()
}

// Pending returns the first character typed toward a label, if any.
func (b *BrowseState) Pending() (rune, bool) {
	return b.machine.Pending()
}

// HandleKey feeds one keystroke to the label machine and applies the
// resulting descent or command.
func (b *BrowseState) HandleKey(c rune) labels.Event {
	ev := b.machine.Feed(c)
	switch e := ev.(type) {
	case labels.Descend:
		if e.Index >= 0 && e.Index < len(b.Entries) {
			target := b.Entries[e.Index].Path
			if b.accessible(target) {
				b.load(target)
			}
		}
	case labels.Invoke:
		if e.Command == labels.CommandToggleHidden {
			b.ToggleHidden()
		}
	}
	return ev
}

// Backspace discards a pending first character, or ascends when none is
// pending.
func (b *BrowseState) Backspace() {
	if _, pending := b.machine.Pending(); pending {
		b.machine.Reset()
		return
	}
	b.GoUp()
}

// GoUp loads the parent directory. It is a no-op at the filesystem root.
func (b *BrowseState) GoUp() bool {
	b.machine.Reset()
	parent, ok := parentOf(b.CurrentDir)
	if !ok {
		return false
	}
	b.load(parent)
	return true
}

// Reload rescans the current directory and relabels it.
func (b *BrowseState) Reload() {
	b.load(b.CurrentDir)
}

// ToggleHidden flips hidden-entry visibility and relabels the directory.
func (b *BrowseState) ToggleHidden() {
	b.ShowHidden = !b.ShowHidden
	b.load(b.CurrentDir)
}
