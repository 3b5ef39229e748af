// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// UI components report confirmed user input to the app this way.
type Msg struct {
	Source string // Component name: "spinner", "helpbindings"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}
