// Package tui holds the Bubble Tea models and lipgloss styles behind the
// interactive CLI views.
package tui

// ViewState is the screen a model is showing.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateDetail
	ViewStateQuitting
	ViewStateError
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyS     = "s"
)

// Terminal size defaults used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 24
	minHeight     = 5
)
