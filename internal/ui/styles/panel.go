package styles

import "github.com/charmbracelet/lipgloss"

// ColumnStyle returns the bordered panel style for a field column.
// A focused column gets the accent border; a locked one the lock color.
func ColumnStyle(focused, locked bool) lipgloss.Style {
	t := T()
	border := t.Border
	switch {
	case focused:
		border = t.BorderFocus
	case locked:
		border = t.Secondary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
