package spinner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ritzel/internal/ui/render"
	"github.com/llehouerou/ritzel/internal/ui/styles"
)

// peekOffsets lists the rows from top to bottom: larger values above.
var peekOffsets = [...]int{2, 1, 0, -1, -2}

// Height is the number of rows rendered by View.
const Height = len(peekOffsets)

// View renders the peek column: two values above, the current value
// (or the text being typed), two values below.
func (m *Model[T]) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}

	lines := make([]string, 0, Height)
	for _, off := range peekOffsets {
		if off == 0 {
			lines = append(lines, m.renderCurrent(width))
			continue
		}
		text := render.Center(m.codec.Format(m.Peek(off)), width)
		lines = append(lines, peekStyle(off, m.disabled).Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) renderCurrent(width int) string {
	s := styles.T().S()

	if m.editing {
		return s.Editing.Render(render.Pad("▸"+m.input.View(), width))
	}

	text := m.codec.Format(m.value)
	switch {
	case m.disabled:
		return s.Disabled.Render(render.Center(text, width))
	case m.IsFocused():
		return s.Focused.Render(render.Center("▸ "+text+" ◂", width))
	default:
		return s.Title.Render(render.Center(text, width))
	}
}

func peekStyle(offset int, disabled bool) lipgloss.Style {
	s := styles.T().S()
	if disabled || offset > 1 || offset < -1 {
		return s.Subtle
	}
	return s.Muted
}
