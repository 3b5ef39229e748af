// Package layout provides pure functions for UI dimension calculations.
//
// The screen is a title bar followed by one bordered column per field,
// laid out left to right:
//
//	title
//	(blank)
//	╭──────────╮ ╭──────────╮ ╭──────────╮
//	│ title    │ │ title    │ │ title    │
//	│ spinner  │ │ spinner  │ │ spinner  │  SpinnerHeight rows
//	│ lock     │ │ lock     │ │ lock     │
//	│ extra    │ │ extra    │ │ extra    │  ExtraHeight rows
//	╰──────────╯ ╰──────────╯ ╰──────────╯
//	status
package layout

import "github.com/llehouerou/ritzel/internal/ui"

const (
	// HeaderHeight is the title line plus a blank separator line.
	HeaderHeight = 2

	// ColumnWidth is the outer width of a column panel, border included.
	ColumnWidth = 20

	// ColumnGap is the number of blank cells between two column panels.
	ColumnGap = 1

	// ColumnCount is the number of field columns.
	ColumnCount = 3

	// TitleHeight is the column title row.
	TitleHeight = 1

	// SpinnerHeight is two peeks above, the current value, two peeks below.
	SpinnerHeight = 5

	// LockHeight is the lock toggle row.
	LockHeight = 1

	// ExtraHeight holds derived read-only values (actual ratio, divergence).
	ExtraHeight = 2

	// ColumnInnerHeight is the content height of a column panel.
	ColumnInnerHeight = TitleHeight + SpinnerHeight + LockHeight + ExtraHeight

	// ColumnHeight is the outer height of a column panel, border included.
	ColumnHeight = ColumnInnerHeight + ui.BorderHeight
)

// Rect is a screen rectangle in terminal cells. X and Y are 0-based.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// InnerWidth is the content width of a column panel.
func InnerWidth() int {
	return ColumnWidth - ui.BorderWidth
}

// TotalWidth is the width needed to show every column.
func TotalWidth() int {
	return ColumnCount*ColumnWidth + (ColumnCount-1)*ColumnGap
}

// TotalHeight is the height of header plus columns plus one status line.
func TotalHeight() int {
	return HeaderHeight + ColumnHeight + 1
}

// ColumnRect returns the outer rectangle of the column at index.
func ColumnRect(index int) Rect {
	return Rect{
		X:      index * (ColumnWidth + ColumnGap),
		Y:      HeaderHeight,
		Width:  ColumnWidth,
		Height: ColumnHeight,
	}
}

// SpinnerRect returns the rectangle of the spinner inside the column at index.
func SpinnerRect(index int) Rect {
	col := ColumnRect(index)
	return Rect{
		X:      col.X + 1,
		Y:      col.Y + 1 + TitleHeight,
		Width:  InnerWidth(),
		Height: SpinnerHeight,
	}
}

// LockRect returns the rectangle of the lock toggle inside the column at index.
func LockRect(index int) Rect {
	sp := SpinnerRect(index)
	return Rect{
		X:      sp.X,
		Y:      sp.Y + SpinnerHeight,
		Width:  sp.Width,
		Height: LockHeight,
	}
}

// ColumnAt returns the index of the column containing (x, y).
func ColumnAt(x, y int) (int, bool) {
	for i := range ColumnCount {
		if ColumnRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
