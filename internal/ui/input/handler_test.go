package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/jump/internal/state"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func emitted(t *testing.T, state *statepkg.AppState, ev tcell.Event) (statepkg.Action, bool) {
	t.Helper()
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(state)
	cont := handler.ProcessEvent(ev)
	select {
	case action := <-actionChan:
		return action, cont
	default:
		t.Fatalf("expected an action for %v", ev)
		return nil, cont
	}
}

func fuzzyState(textEntry bool) *statepkg.AppState {
	return &statepkg.AppState{
		Mode:  statepkg.ModeFuzzy,
		Fuzzy: &statepkg.FuzzyState{TextEntry: textEntry},
	}
}

func TestCtrlCCancelsInEveryMode(t *testing.T) {
	for _, mode := range []statepkg.Mode{statepkg.ModeBrowse, statepkg.ModeFuzzy, statepkg.ModeNumber, statepkg.ModeBookmarks} {
		state := &statepkg.AppState{Mode: mode, Fuzzy: &statepkg.FuzzyState{}}
		action, cont := emitted(t, state, specialKey(tcell.KeyCtrlC))
		if _, ok := action.(statepkg.CancelAction); !ok {
			t.Fatalf("mode %v: expected CancelAction, got %T", mode, action)
		}
		if cont {
			t.Fatalf("mode %v: expected Ctrl+C to stop processing", mode)
		}
	}
}

func TestCtrlZSuspends(t *testing.T) {
	action, cont := emitted(t, fuzzyState(true), specialKey(tcell.KeyCtrlZ))
	if _, ok := action.(statepkg.SuspendAction); !ok || !cont {
		t.Fatalf("expected SuspendAction, got %T", action)
	}
}

func TestResizeEmitsDimensions(t *testing.T) {
	action, cont := emitted(t, &statepkg.AppState{}, tcell.NewEventResize(80, 24))
	resize, ok := action.(statepkg.ResizeAction)
	if !ok || resize.Width != 80 || resize.Height != 24 || !cont {
		t.Fatalf("expected ResizeAction{80,24}, got %#v", action)
	}
}

func TestBrowseKeys(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.ModeBrowse}
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"label rune", runeKey('a'), statepkg.LabelKeyAction{Char: 'a'}},
		{"dot toggles hidden", runeKey('.'), statepkg.ToggleHiddenAction{}},
		{"backspace", specialKey(tcell.KeyBackspace2), statepkg.LabelBackspaceAction{}},
		{"ctrl+h backspace", specialKey(tcell.KeyBackspace), statepkg.LabelBackspaceAction{}},
		{"ctrl+r reloads", specialKey(tcell.KeyCtrlR), statepkg.ReloadAction{}},
		{"left goes up", specialKey(tcell.KeyLeft), statepkg.GoUpAction{}},
		{"enter confirms", specialKey(tcell.KeyEnter), statepkg.ConfirmAction{}},
		{"escape cancels", specialKey(tcell.KeyEscape), statepkg.CancelAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _ := emitted(t, state, tt.ev)
			if action != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, action)
			}
		})
	}
}

func TestFuzzyMotionKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"j", runeKey('j'), statepkg.NavigateDownAction{}},
		{"k", runeKey('k'), statepkg.NavigateUpAction{}},
		{"digit", runeKey('3'), statepkg.RepeatDigitAction{Digit: 3}},
		{"g", runeKey('g'), statepkg.GoToStartAction{}},
		{"G", runeKey('G'), statepkg.GoToEndAction{}},
		{"l", runeKey('l'), statepkg.EnterDirectoryAction{}},
		{"h", runeKey('h'), statepkg.NavigateBackAction{}},
		{"slash", runeKey('/'), statepkg.FilterStartAction{}},
		{"dot", runeKey('.'), statepkg.ToggleHiddenAction{}},
		{"q", runeKey('q'), statepkg.CancelAction{}},
		{"other rune", runeKey('z'), statepkg.ClearRepeatAction{}},
		{"ctrl+d", specialKey(tcell.KeyCtrlD), statepkg.ScrollPageDownAction{}},
		{"pgup", specialKey(tcell.KeyPgUp), statepkg.ScrollPageUpAction{}},
		{"tab", specialKey(tcell.KeyTab), statepkg.EnterDirectoryAction{}},
		{"left", specialKey(tcell.KeyLeft), statepkg.NavigateBackAction{}},
		{"ctrl+h backspace", specialKey(tcell.KeyBackspace), statepkg.NavigateBackAction{}},
		{"ctrl+r", specialKey(tcell.KeyCtrlR), statepkg.ReloadAction{}},
		{"enter", specialKey(tcell.KeyEnter), statepkg.ConfirmAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, cont := emitted(t, fuzzyState(false), tt.ev)
			if action != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, action)
			}
			if !cont {
				t.Fatalf("expected processing to continue")
			}
		})
	}
}

func TestFuzzyTextEntryKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"rune edits query", runeKey('j'), statepkg.FilterCharAction{Char: 'j'}},
		{"backspace pops", specialKey(tcell.KeyBackspace2), statepkg.FilterBackspaceAction{}},
		{"escape clears", specialKey(tcell.KeyEscape), statepkg.FilterResetQueryAction{}},
		{"down still moves", specialKey(tcell.KeyDown), statepkg.NavigateDownAction{}},
		{"enter confirms", specialKey(tcell.KeyEnter), statepkg.ConfirmAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _ := emitted(t, fuzzyState(true), tt.ev)
			if action != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, action)
			}
		})
	}
}

func TestNumberKeys(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.ModeNumber}
	action, _ := emitted(t, state, runeKey('7'))
	if action != (statepkg.NumberDigitAction{Digit: 7}) {
		t.Fatalf("expected NumberDigitAction{7}, got %#v", action)
	}
	action, _ = emitted(t, state, specialKey(tcell.KeyBackspace2))
	if _, ok := action.(statepkg.NumberBackspaceAction); !ok {
		t.Fatalf("expected NumberBackspaceAction, got %T", action)
	}
	action, _ = emitted(t, state, specialKey(tcell.KeyEnter))
	if _, ok := action.(statepkg.ConfirmAction); !ok {
		t.Fatalf("expected ConfirmAction, got %T", action)
	}
}

func TestBookmarkKeysForwardRunes(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.ModeBookmarks}
	action, _ := emitted(t, state, runeKey('p'))
	if action != (statepkg.BookmarkKeyAction{Char: 'p'}) {
		t.Fatalf("expected BookmarkKeyAction{p}, got %#v", action)
	}
	action, _ = emitted(t, state, specialKey(tcell.KeyDown))
	if _, ok := action.(statepkg.NavigateDownAction); !ok {
		t.Fatalf("expected NavigateDownAction, got %T", action)
	}
}
