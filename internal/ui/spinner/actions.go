package spinner

import (
	"github.com/llehouerou/ritzel/internal/ui/action"
)

// Changed reports a confirmed new value for a field.
type Changed struct {
	Field string
	Value float64
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "spinner.changed" }

// Reverted reports that typed text could not be parsed and the field went
// back to its last valid value.
type Reverted struct {
	Field string
	Text  string // the rejected input
	Err   error
}

// ActionType implements action.Action.
func (a Reverted) ActionType() string { return "spinner.reverted" }

// ActionMsg creates an action.Msg for a spinner action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "spinner", Action: a}
}
