package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SESSION ACTIONS =====

type ConfirmAction struct{}
type CancelAction struct{}
type ToggleHiddenAction struct{}
type SuspendAction struct{}

// ReloadAction rescans the directory in view.
type ReloadAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== LABEL ACTIONS =====

type LabelKeyAction struct {
	Char rune
}
type LabelBackspaceAction struct{}
type GoUpAction struct{}

// ===== FILTER ACTIONS =====

type FilterStartAction struct{}
type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterResetQueryAction struct{}
type SetQueryAction struct {
	Query string
}

// ===== MOTION ACTIONS =====

type RepeatDigitAction struct {
	Digit int
}
type ClearRepeatAction struct{}
type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type GoToStartAction struct{}
type GoToEndAction struct{}
type EnterDirectoryAction struct{}
type NavigateBackAction struct{}

// ===== NUMBER ACTIONS =====

type NumberDigitAction struct {
	Digit uint8
}
type NumberBackspaceAction struct{}
type NumberResetAction struct{}

// ===== BOOKMARK ACTIONS =====

type BookmarkKeyAction struct {
	Char rune
}
