// Package handler chains input handlers: the first one to claim an event
// wins.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the event to the next handler.
var NotHandled = Result{}

// HandledNoCmd claims the event without producing a command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the event and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// From adapts the (consumed, cmd) pair returned by component key handlers.
func From(handled bool, cmd tea.Cmd) Result {
	return Result{Handled: handled, Cmd: cmd}
}

// Handler attempts to handle the current event.
type Handler func() Result

// Chain runs handlers in order and returns the result of the first one
// that handles the event, or NotHandled.
func Chain(handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return r
		}
	}
	return NotHandled
}
