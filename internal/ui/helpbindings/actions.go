package helpbindings

import "github.com/llehouerou/ritzel/internal/ui/action"

const source = "helpbindings"

// Close asks the owner to hide the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return source + ".close" }

// ActionMsg wraps a helpbindings action for the owner.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: source, Action: a}
}
