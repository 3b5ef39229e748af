package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ritzel/internal/gear"
	"github.com/llehouerou/ritzel/internal/keymap"
	"github.com/llehouerou/ritzel/internal/ui/layout"
	"github.com/llehouerou/ritzel/internal/ui/popup"
	"github.com/llehouerou/ritzel/internal/ui/render"
	"github.com/llehouerou/ritzel/internal/ui/styles"
)

const appTitle = "ritzel · gear ratio calculator"

// View renders the application UI.
func (m Model) View() string {
	width := max(m.Width, layout.TotalWidth())
	height := max(m.Height, layout.TotalHeight())

	columns := make([]string, 0, 2*layout.ColumnCount-1)
	gap := strings.Repeat(" ", layout.ColumnGap)
	for i, slot := range gear.Slots {
		if i > 0 {
			columns = append(columns, gap)
		}
		columns = append(columns, m.renderColumn(slot))
	}

	t := styles.T()
	view := styles.ApplyBoldGradient(appTitle, t.Primary, t.Secondary) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, columns...) + "\n" +
		m.renderStatus(width)

	if m.ShowHelp {
		box := popup.RenderBordered(m.Help.View(), width, height)
		view = popup.Compose(view, box, width)
	}

	return view
}

func (m Model) renderColumn(slot gear.Slot) string {
	s := styles.T().S()
	width := layout.InnerWidth()
	focused := slot == m.Focus
	locked := slot == m.Gear.Locked()

	titleStyle := s.Muted
	if focused {
		titleStyle = s.Title
	}

	lines := []string{
		titleStyle.Render(render.Center(slot.Label(), width)),
		m.field(slot).View(),
		renderLock(locked, width),
	}
	lines = append(lines, m.renderExtra(slot, width)...)

	return styles.ColumnStyle(focused, locked).
		Width(width).
		Height(layout.ColumnInnerHeight).
		Render(strings.Join(lines, "\n"))
}

func renderLock(locked bool, width int) string {
	s := styles.T().S()
	if locked {
		return s.Locked.Render(render.Center("● locked", width))
	}
	return s.Subtle.Render(render.Center("○ lock", width))
}

// renderExtra returns the read-only rows under the lock toggle. The ratio
// column shows the ratio the teeth actually produce and how far it is from
// the requested one.
func (m Model) renderExtra(slot gear.Slot, width int) []string {
	if slot != gear.Ratio {
		return make([]string, layout.ExtraHeight)
	}
	s := styles.T().S()

	actual := "= " + strconv.FormatFloat(m.Gear.ActualRatio(), 'f', 3, 64)
	div := m.Gear.Divergence()
	divergence := lipgloss.NewStyle().
		Foreground(styles.DivergenceColor(div)).
		Render(render.Center(fmt.Sprintf("%+.2f%%", div*100), width))

	return []string{
		s.Base.Render(render.Center(actual, width)),
		divergence,
	}
}

func (m Model) renderStatus(width int) string {
	s := styles.T().S()

	var left string
	if m.ErrorMsg != "" {
		left = s.Error.Render(render.Truncate(m.ErrorMsg, width-20))
	} else {
		help := strings.Join(m.Keys.KeysFor(keymap.ActionHelp), "/")
		quit := strings.Join(m.Keys.KeysFor(keymap.ActionQuit), "/")
		left = s.Key.Render(help) + s.Subtle.Render(" help  ") +
			s.Key.Render(quit) + s.Subtle.Render(" quit")
	}

	right := s.Locked.Render("locked: " + m.Gear.Locked().Label())
	return render.Row(left, right, width)
}
