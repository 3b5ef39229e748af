// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"

	// Field actions
	ActionIncrement Action = "increment"
	ActionDecrement Action = "decrement"
	ActionPageUp    Action = "page_up"   // +10 steps
	ActionPageDown  Action = "page_down" // -10 steps
	ActionConfirm   Action = "confirm"   // enter - commit or start editing
	ActionCancel    Action = "cancel"    // esc - drop typed text
	ActionLock      Action = "lock"      // space - lock focused column
)
