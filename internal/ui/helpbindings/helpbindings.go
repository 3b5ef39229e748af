// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ritzel/internal/keymap"
	"github.com/llehouerou/ritzel/internal/ui"
	"github.com/llehouerou/ritzel/internal/ui/popup"
	"github.com/llehouerou/ritzel/internal/ui/render"
	"github.com/llehouerou/ritzel/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextField,
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextField:  "Focused column",
}

// mouseHelp documents the mouse, which has no key bindings.
var mouseHelp = [][2]string{
	{"wheel", "Step the value under the pointer"},
	{"drag", "Drag up or down to step"},
	{"click", "Focus a column, lock it on its lock row"},
}

// keyNames gives readable names to keys whose string form is blank.
var keyNames = map[string]string{
	" ": "space",
}

// popupChrome is the space taken by the title, footer, border and padding.
const popupChrome = 10

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// ScrollOffset returns the index of the first visible line.
func (m *Model) ScrollOffset() int {
	return m.scrollOffset
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return nil
}

// View implements popup.Popup. The border is added by the caller.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	// Width from all lines keeps the popup stable while scrolling.
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, render.Pad(line, width))
	}

	s := styles.T().S()
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(s.Subtle.Render(m.footer(len(lines))))
	return sb.String()
}

func (m *Model) contentLines() []string {
	s := styles.T().S()

	keyWidth := len("wheel")
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(keyLabel(b.Keys)))
	}
	separator := s.Subtle.Render(strings.Repeat("─", keyWidth+24))

	row := func(keys, desc string) string {
		return s.Key.Render(render.Pad(keys, keyWidth)) + "  " + s.Base.Render(desc)
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, s.Warning.Render(label), separator)
			current = b.Context
		}
		lines = append(lines, row(keyLabel(b.Keys), b.Description))
	}

	if slices.Contains(m.contexts, keymap.ContextField) {
		lines = append(lines, "", s.Warning.Render("Mouse"), separator)
		for _, h := range mouseHelp {
			lines = append(lines, row(h[0], h[1]))
		}
	}

	return lines
}

func (m *Model) footer(totalLines int) string {
	if totalLines <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-popupChrome, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}

func keyLabel(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if name, ok := keyNames[k]; ok {
			k = name
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
