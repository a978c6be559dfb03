package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/jump/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false for
// Ctrl+C, which ends the session in every mode.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) emit(action statepkg.Action) {
	ih.actionChan <- action
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.emit(statepkg.CancelAction{})
		return false
	case tcell.KeyCtrlZ:
		ih.emit(statepkg.SuspendAction{})
		return true
	}
	if ih.state == nil {
		return true
	}

	switch ih.state.Mode {
	case statepkg.ModeBrowse:
		return ih.browseKey(ev)
	case statepkg.ModeFuzzy:
		if ih.state.Fuzzy != nil && ih.state.Fuzzy.TextEntry {
			return ih.textEntryKey(ev)
		}
		return ih.fuzzyKey(ev)
	case statepkg.ModeNumber:
		return ih.numberKey(ev)
	case statepkg.ModeBookmarks:
		return ih.bookmarkKey(ev)
	}
	return true
}

func (ih *InputHandler) browseKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.CancelAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.ConfirmAction{})
	// KeyBackspace is also Ctrl+H; terminals with erase set to ^H send it.
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.LabelBackspaceAction{})
	case tcell.KeyLeft:
		ih.emit(statepkg.GoUpAction{})
	case tcell.KeyCtrlR:
		ih.emit(statepkg.ReloadAction{})
	case tcell.KeyRune:
		r := ev.Rune()
		if r == '.' {
			ih.emit(statepkg.ToggleHiddenAction{})
			return true
		}
		ih.emit(statepkg.LabelKeyAction{Char: r})
	}
	return true
}

func (ih *InputHandler) textEntryKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.FilterResetQueryAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.ConfirmAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.FilterBackspaceAction{})
	case tcell.KeyCtrlU:
		ih.emit(statepkg.SetQueryAction{Query: ""})
	case tcell.KeyUp:
		ih.emit(statepkg.NavigateUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.NavigateDownAction{})
	case tcell.KeyTab:
		ih.emit(statepkg.EnterDirectoryAction{})
	case tcell.KeyRune:
		ih.emit(statepkg.FilterCharAction{Char: ev.Rune()})
	}
	return true
}

func (ih *InputHandler) fuzzyKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.CancelAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.ConfirmAction{})
	case tcell.KeyUp:
		ih.emit(statepkg.NavigateUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.NavigateDownAction{})
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		ih.emit(statepkg.ScrollPageUpAction{})
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		ih.emit(statepkg.ScrollPageDownAction{})
	case tcell.KeyHome:
		ih.emit(statepkg.GoToStartAction{})
	case tcell.KeyEnd:
		ih.emit(statepkg.GoToEndAction{})
	case tcell.KeyRight, tcell.KeyTab:
		ih.emit(statepkg.EnterDirectoryAction{})
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.NavigateBackAction{})
	case tcell.KeyCtrlR:
		ih.emit(statepkg.ReloadAction{})
	case tcell.KeyRune:
		return ih.fuzzyRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) fuzzyRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		ih.emit(statepkg.RepeatDigitAction{Digit: int(r - '0')})
	case r == 'j':
		ih.emit(statepkg.NavigateDownAction{})
	case r == 'k':
		ih.emit(statepkg.NavigateUpAction{})
	case r == 'g':
		ih.emit(statepkg.GoToStartAction{})
	case r == 'G':
		ih.emit(statepkg.GoToEndAction{})
	case r == 'l':
		ih.emit(statepkg.EnterDirectoryAction{})
	case r == 'h':
		ih.emit(statepkg.NavigateBackAction{})
	case r == '.':
		ih.emit(statepkg.ToggleHiddenAction{})
	case r == '/':
		ih.emit(statepkg.FilterStartAction{})
	case r == 'q':
		ih.emit(statepkg.CancelAction{})
	default:
		ih.emit(statepkg.ClearRepeatAction{})
	}
	return true
}

func (ih *InputHandler) numberKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.CancelAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.ConfirmAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.NumberBackspaceAction{})
	case tcell.KeyCtrlU:
		ih.emit(statepkg.NumberResetAction{})
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= '0' && r <= '9' {
			ih.emit(statepkg.NumberDigitAction{Digit: uint8(r - '0')})
		} else if r == 'q' {
			ih.emit(statepkg.CancelAction{})
		}
	}
	return true
}

func (ih *InputHandler) bookmarkKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.CancelAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.ConfirmAction{})
	case tcell.KeyUp:
		ih.emit(statepkg.NavigateUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.NavigateDownAction{})
	case tcell.KeyRune:
		ih.emit(statepkg.BookmarkKeyAction{Char: ev.Rune()})
	}
	return true
}
