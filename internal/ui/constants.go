// Package ui provides shared UI constants and utilities.
package ui

// Panel border sizes for lipgloss rounded borders.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2
)
