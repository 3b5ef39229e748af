// Package popup draws modal boxes over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/ritzel/internal/ui/styles"
)

// chrome is the border plus horizontal padding around popup content.
const (
	chromeWidth  = 6
	chromeHeight = 4
	screenMargin = 4
)

// RenderBordered wraps content in a rounded border sized to fit it, limited
// to the screen, and centers the box.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+chromeWidth, screenW-screenMargin)
	height := min(strings.Count(content, "\n")+1+chromeHeight, screenH-screenMargin)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(max(width-2, 1)). // Account for border
		Height(max(height-2, 1)).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(content))/2, 0)

	var sb strings.Builder
	for range padTop {
		sb.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
	return sb.String()
}

// Compose draws popupView over base. Leading and trailing blanks of each
// popup line are transparent, so a centered box keeps the base visible
// around it. A base shorter than the popup is extended with blank lines.
// Both inputs may carry ANSI styling.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popupView, "\n")

	last := len(popupLines) - 1
	for last >= 0 && strings.TrimSpace(ansi.Strip(popupLines[last])) == "" {
		last--
	}
	for len(baseLines) <= last {
		baseLines = append(baseLines, "")
	}

	for i, line := range popupLines[:last+1] {
		plain := ansi.Strip(line)
		body := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(body) == "" {
			continue
		}
		start := len(plain) - len(body) // leading ASCII spaces are one column each
		end := start + ansi.StringWidth(strings.TrimRight(body, " "))

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < max(width, end) {
			baseLine += strings.Repeat(" ", max(width, end)-w)
		}

		baseLines[i] = ansi.Cut(baseLine, 0, start) +
			ansi.Cut(line, start, end) +
			ansi.Cut(baseLine, end, max(width, end))
	}

	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
