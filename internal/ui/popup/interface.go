package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal overlay. While shown it receives every key and asks to
// be closed by emitting an action.
type Popup interface {
	// Update handles a message and returns a command.
	Update(msg tea.Msg) tea.Cmd

	// View renders the content. RenderBordered adds the frame.
	View() string

	// SetSize sets the size of the screen the popup is shown on.
	SetSize(width, height int)
}
