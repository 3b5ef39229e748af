// Package spinner provides a numeric input field with step, scroll and drag
// adjustment and peek previews of neighbouring values.
//
// A spinner owns only view state: the text being typed, the drag offset and
// its screen bounds. Confirmed values are reported with a Changed action;
// the owner decides what they mean.
package spinner

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ritzel/internal/ui"
	"github.com/llehouerou/ritzel/internal/ui/layout"
)

// DefaultDragRows is the vertical drag distance, in rows, for one step.
const DefaultDragRows = 2

// Config holds the per-field step and bounds.
type Config[T Number] struct {
	Step      T
	Min       T
	Max       T
	Unbounded bool // ignore Max
	DragRows  int  // rows of vertical drag per step; <= 0 means DefaultDragRows
}

// dragState accumulates vertical mouse motion until a step is crossed.
type dragState struct {
	active bool
	lastY  int
	offset int // rows dragged upward not yet converted into steps
}

// Model is a numeric input field.
type Model[T Number] struct {
	ui.Base
	field    string
	cfg      Config[T]
	codec    Codec[T]
	value    T
	input    textinput.Model
	editing  bool
	disabled bool
	bounds   layout.Rect
	drag     dragState
}

// New creates a spinner for field showing value.
func New[T Number](field string, cfg Config[T], codec Codec[T], value T) Model[T] {
	if cfg.DragRows <= 0 {
		cfg.DragRows = DefaultDragRows
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := Model[T]{
		field: field,
		cfg:   cfg,
		codec: codec,
		input: ti,
	}
	m.value = m.clamp(codec.Normalize(value))
	return m
}

// Field returns the field identifier reported in actions.
func (m *Model[T]) Field() string { return m.field }

// Value returns the last confirmed value.
func (m *Model[T]) Value() T { return m.value }

// Text returns the text currently shown: the typed text while editing,
// otherwise the formatted value.
func (m *Model[T]) Text() string {
	if m.editing {
		return m.input.Value()
	}
	return m.codec.Format(m.value)
}

// Editing reports whether the user is typing a value.
func (m *Model[T]) Editing() bool { return m.editing }

// Disabled reports whether the field rejects input.
func (m *Model[T]) Disabled() bool { return m.disabled }

// Dragging reports whether a mouse drag is in progress.
func (m *Model[T]) Dragging() bool { return m.drag.active }

// SetValue replaces the value without reporting a change. Used to push
// values computed elsewhere back into the field. The value is snapped to
// the codec grid but not clamped: a pushed value is authoritative, and the
// next step moves it back inside the bounds.
func (m *Model[T]) SetValue(v T) {
	m.value = m.codec.Normalize(v)
}

// Float64 returns the value as a float64.
func (m *Model[T]) Float64() float64 { return float64(m.value) }

// SetDisabled enables or disables input. Disabling drops any pending edit.
func (m *Model[T]) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.stopEdit()
		m.drag = dragState{}
	}
}

// SetBounds records where the spinner is drawn, for mouse hit testing.
func (m *Model[T]) SetBounds(r layout.Rect) {
	m.bounds = r
	m.SetSize(r.Width, r.Height)
	m.input.Width = max(r.Width-2, 1)
}

// Bounds returns the last recorded screen rectangle.
func (m *Model[T]) Bounds() layout.Rect { return m.bounds }

// Peek returns the value offset steps away from the current one, clamped
// to the bounds.
func (m *Model[T]) Peek(offset int) T {
	return m.clamp(m.codec.Normalize(m.value + T(offset)*m.cfg.Step))
}

// Step moves the value by n steps. Any pending typed text is discarded.
func (m *Model[T]) Step(n int) tea.Cmd {
	if m.disabled || n == 0 {
		return nil
	}
	m.stopEdit()

	next := m.Peek(n)
	if next == m.value {
		return nil
	}
	m.value = next
	return m.changedCmd()
}

// Confirm commits a pending edit, or starts editing the current value.
func (m *Model[T]) Confirm() tea.Cmd {
	if m.disabled {
		return nil
	}
	if m.editing {
		return m.Commit()
	}
	return m.startEdit(m.codec.Format(m.value))
}

// Commit parses the typed text. Unparsable text reverts to the last valid
// value and reports Reverted; a parsed value is clamped to the bounds and
// reported as Changed.
func (m *Model[T]) Commit() tea.Cmd {
	if !m.editing {
		return nil
	}
	text := m.input.Value()
	m.stopEdit()

	v, err := m.codec.Parse(text)
	if err != nil {
		field := m.field
		return func() tea.Msg {
			return ActionMsg(Reverted{Field: field, Text: text, Err: err})
		}
	}
	m.value = m.clamp(m.codec.Normalize(v))
	return m.changedCmd()
}

// Cancel drops a pending edit.
func (m *Model[T]) Cancel() {
	m.stopEdit()
}

// Blur removes focus, committing any pending edit.
func (m *Model[T]) Blur() tea.Cmd {
	m.SetFocused(false)
	return m.Commit()
}

// editKeys are the non-rune keys used inside the text editor. Other
// special keys are left to the caller even while editing.
var editKeys = map[tea.KeyType]bool{
	tea.KeyBackspace: true,
	tea.KeyDelete:    true,
	tea.KeyLeft:      true,
	tea.KeyRight:     true,
	tea.KeyHome:      true,
	tea.KeyEnd:       true,
}

// HandleKey feeds a key press to the text editor. Digits and decimal
// separators start an edit; backspace starts one from the current text.
// While editing, other printable keys are swallowed. It reports whether
// the key was consumed.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.disabled {
		return false, nil
	}

	var startCmd tea.Cmd
	switch {
	case m.editing && msg.Type == tea.KeyRunes && !isNumericInput(msg):
		return true, nil
	case m.editing && (msg.Type == tea.KeyRunes || editKeys[msg.Type]):
	case isNumericInput(msg):
		startCmd = m.startEdit("")
	case msg.Type == tea.KeyBackspace:
		startCmd = m.startEdit(m.codec.Format(m.value))
	default:
		return false, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return true, tea.Batch(startCmd, cmd)
}

// Update handles mouse wheel and drag inside the spinner bounds, and
// forwards cursor blink messages while editing.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	default:
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.disabled {
		return nil
	}

	if m.drag.active {
		switch msg.Action { //nolint:exhaustive // press is handled below
		case tea.MouseActionMotion:
			return m.dragTo(msg.Y)
		case tea.MouseActionRelease:
			m.drag = dragState{}
			return nil
		}
	}

	if !m.bounds.Contains(msg.X, msg.Y) {
		return nil
	}

	switch msg.Button { //nolint:exhaustive // only wheel and left button are used
	case tea.MouseButtonWheelUp:
		return m.Step(1)
	case tea.MouseButtonWheelDown:
		return m.Step(-1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.drag = dragState{active: true, lastY: msg.Y}
		}
	}
	return nil
}

// dragTo accumulates the vertical distance since the last motion event and
// applies one step per DragRows rows. Moving up increases the value. The
// remainder is kept for the next event.
func (m *Model[T]) dragTo(y int) tea.Cmd {
	m.drag.offset += m.drag.lastY - y
	m.drag.lastY = y

	steps := m.drag.offset / m.cfg.DragRows
	if steps == 0 {
		return nil
	}
	m.drag.offset -= steps * m.cfg.DragRows
	return m.Step(steps)
}

func (m *Model[T]) startEdit(text string) tea.Cmd {
	m.editing = true
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model[T]) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model[T]) clamp(v T) T {
	if v < m.cfg.Min {
		return m.cfg.Min
	}
	if !m.cfg.Unbounded && v > m.cfg.Max {
		return m.cfg.Max
	}
	return v
}

func (m *Model[T]) changedCmd() tea.Cmd {
	a := Changed{Field: m.field, Value: float64(m.value)}
	return func() tea.Msg { return ActionMsg(a) }
}

func isNumericInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
