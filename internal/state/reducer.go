package state

import (
	"fmt"

	"github.com/kk-code-lab/jump/internal/labels"
)

// footerHeight is the number of screen rows reserved outside the list.
const footerHeight = 3

// StateReducer applies actions to an AppState.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state. The returned error reports a directory that
// failed to load; the state remains usable with an empty listing.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if state.Done() {
		return state, nil
	}
	state.Status = ""

	switch a := action.(type) {
	case CancelAction:
		state.cancel()
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		rows := a.Height - footerHeight
		if state.Fuzzy != nil {
			state.Fuzzy.SetHeight(rows)
		}
		if state.Bookmarks != nil {
			state.Bookmarks.SetHeight(rows)
		}
		return state, nil
	}

	switch state.Mode {
	case ModeBrowse:
		return r.reduceBrowse(state, action)
	case ModeFuzzy:
		return r.reduceFuzzy(state, action)
	case ModeNumber:
		return r.reduceNumber(state, action)
	case ModeBookmarks:
		return r.reduceBookmarks(state, action)
	default:
		return state, fmt.Errorf("unknown mode %d", state.Mode)
	}
}

func (r *StateReducer) reduceBrowse(state *AppState, action Action) (*AppState, error) {
	b := state.Browse
	if b == nil {
		return state, nil
	}

	switch a := action.(type) {
	case ConfirmAction:
		state.confirm(b.CurrentDir)
		return state, nil

	case LabelKeyAction:
		switch ev := b.HandleKey(a.Char).(type) {
		case labels.Descend:
			return state, b.LastError
		case labels.Invoke:
			state.Status = hiddenStatus(b.ShowHidden)
			return state, b.LastError
		case labels.Abandoned:
			state.Status = "no label " + labels.Label{ev.First, ev.Second}.String()
		}
		return state, nil

	case LabelBackspaceAction:
		b.Backspace()
		return state, b.LastError

	case GoUpAction, NavigateBackAction:
		if b.GoUp() {
			return state, b.LastError
		}
		return state, nil

	case ToggleHiddenAction:
		b.ToggleHidden()
		state.Status = hiddenStatus(b.ShowHidden)
		return state, b.LastError

	case ReloadAction:
		b.Reload()
		return state, b.LastError
	}
	return state, nil
}

func (r *StateReducer) reduceFuzzy(state *AppState, action Action) (*AppState, error) {
	f := state.Fuzzy
	if f == nil {
		return state, nil
	}

	switch a := action.(type) {
	case ConfirmAction:
		if item, ok := f.SelectedItem(); ok {
			state.confirm(item.Path)
		} else if f.Query == "" {
			state.confirm(f.CurrentDir)
		}
		return state, nil

	case FilterStartAction:
		f.resetRepeat()
		f.TextEntry = true
		return state, nil

	case FilterCharAction:
		f.AddChar(a.Char)
		return state, nil

	case SetQueryAction:
		f.SetQuery(a.Query)
		return state, nil

	case FilterBackspaceAction:
		if f.Query == "" {
			f.TextEntry = false
			f.resetRepeat()
			return state, nil
		}
		f.PopChar()
		return state, nil

	case FilterResetQueryAction:
		f.ClearQuery()
		f.TextEntry = false
		return state, nil

	case RepeatDigitAction:
		f.AddRepeatDigit(a.Digit)
		return state, nil

	case NavigateDownAction:
		f.MoveDown()
		return state, nil

	case NavigateUpAction:
		f.MoveUp()
		return state, nil

	case ScrollPageDownAction:
		f.PageDown()
		return state, nil

	case ScrollPageUpAction:
		f.PageUp()
		return state, nil

	case GoToStartAction:
		f.GoToStart()
		return state, nil

	case GoToEndAction:
		f.GoToEnd()
		return state, nil

	case EnterDirectoryAction:
		if !f.NavigateInto() {
			if _, ok := f.SelectedItem(); ok {
				state.Status = "cannot enter directory"
			}
			return state, nil
		}
		return state, f.LastError

	case NavigateBackAction, GoUpAction:
		if f.NavigateBack() {
			return state, f.LastError
		}
		return state, nil

	case ToggleHiddenAction:
		f.resetRepeat()
		f.ToggleHidden()
		state.Status = hiddenStatus(f.ShowHidden)
		return state, f.LastError

	case ReloadAction:
		f.resetRepeat()
		f.Reload()
		return state, f.LastError
	}

	f.resetRepeat()
	return state, nil
}

func (r *StateReducer) reduceNumber(state *AppState, action Action) (*AppState, error) {
	n := state.Number
	if n == nil {
		return state, nil
	}

	switch a := action.(type) {
	case NumberDigitAction:
		n.Selector.AddDigit(a.Digit)
	case NumberBackspaceAction:
		n.Selector.Backspace()
	case NumberResetAction:
		n.Selector.Reset()
	case ConfirmAction:
		if path, ok := n.Confirm(); ok {
			state.confirm(path)
		} else {
			state.Status = "no such entry"
		}
	}
	return state, nil
}

func (r *StateReducer) reduceBookmarks(state *AppState, action Action) (*AppState, error) {
	b := state.Bookmarks
	if b == nil {
		return state, nil
	}

	switch a := action.(type) {
	case BookmarkKeyAction:
		if path, ok := b.KeyPress(a.Char); ok {
			state.confirm(path)
		}
	case NavigateDownAction:
		b.MoveDown()
	case NavigateUpAction:
		b.MoveUp()
	case ConfirmAction:
		if item, ok := b.Selected(); ok {
			state.confirm(item.Path)
		}
	}
	return state, nil
}

func hiddenStatus(shown bool) string {
	if shown {
		return "showing hidden"
	}
	return "hiding hidden"
}
