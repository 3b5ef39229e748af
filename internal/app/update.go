package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ritzel/internal/app/handler"
	"github.com/llehouerou/ritzel/internal/errmsg"
	"github.com/llehouerou/ritzel/internal/gear"
	"github.com/llehouerou/ritzel/internal/keymap"
	"github.com/llehouerou/ritzel/internal/ui/action"
	"github.com/llehouerou/ritzel/internal/ui/helpbindings"
	"github.com/llehouerou/ritzel/internal/ui/layout"
	"github.com/llehouerou/ritzel/internal/ui/spinner"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.SetSize(msg.Width, msg.Height)
		return m, nil

	case action.Msg:
		return m.handleActionMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Anything else belongs to the text input being edited.
	if f := m.focused(); f.Editing() {
		return m, f.Update(msg)
	}
	return m, nil
}

func (m Model) handleActionMsg(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case spinner.Changed:
		slot, err := gear.ParseSlot(a.Field)
		if err != nil {
			m.log.Error().Err(err).Msg("change from unknown field")
			return m, nil
		}
		// Commands run concurrently, so Changed messages from quick steps
		// may arrive out of order. The spinner holds the latest value.
		m.applyEdit(slot, m.field(slot).Float64())

	case spinner.Reverted:
		label := a.Field
		if slot, err := gear.ParseSlot(a.Field); err == nil {
			label = slot.Label()
		}
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpParseValue, label, a.Err)
		m.log.Warn().Err(a.Err).Str("field", a.Field).Str("text", a.Text).Msg("edit reverted")

	case helpbindings.Close:
		m.ShowHelp = false
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, m.Help.Update(msg)
	}

	key := msg.String()
	r := handler.Chain(
		func() handler.Result { return handler.From(m.focused().HandleKey(msg)) },
		func() handler.Result { return m.handleGlobalKeys(key) },
		func() handler.Result { return m.handleFieldKeys(key) },
	)
	return m, r.Cmd
}

// handleGlobalKeys handles keys that work regardless of the focused column.
func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.Keys.ResolveIn(keymap.ContextGlobal, key) { //nolint:exhaustive // field actions handled below
	case keymap.ActionQuit:
		m.log.Debug().Msg("quit")
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = true
		return handler.HandledNoCmd
	case keymap.ActionNextField:
		return handler.Handled(m.moveFocus(1))
	case keymap.ActionPrevField:
		return handler.Handled(m.moveFocus(-1))
	}
	return handler.NotHandled
}

// handleFieldKeys handles keys acting on the focused column.
func (m *Model) handleFieldKeys(key string) handler.Result {
	f := m.focused()
	switch m.Keys.ResolveIn(keymap.ContextField, key) { //nolint:exhaustive // global actions handled above
	case keymap.ActionIncrement:
		return handler.Handled(f.Step(1))
	case keymap.ActionDecrement:
		return handler.Handled(f.Step(-1))
	case keymap.ActionPageUp:
		return handler.Handled(f.Step(pageSteps))
	case keymap.ActionPageDown:
		return handler.Handled(f.Step(-pageSteps))
	case keymap.ActionConfirm:
		return handler.Handled(f.Confirm())
	case keymap.ActionCancel:
		f.Cancel()
		m.ErrorMsg = ""
		return handler.HandledNoCmd
	case keymap.ActionLock:
		m.lock(m.Focus)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}

	// A drag follows the pointer anywhere until the button is released.
	for _, slot := range gear.Slots {
		if f := m.field(slot); f.Dragging() {
			return m, f.Update(msg)
		}
	}

	idx, ok := layout.ColumnAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	slot := gear.Slots[idx]

	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmds = append(cmds, m.setFocus(slot))
		if layout.LockRect(idx).Contains(msg.X, msg.Y) {
			m.lock(slot)
			return m, tea.Batch(cmds...)
		}
	}
	cmds = append(cmds, m.field(slot).Update(msg))
	return m, tea.Batch(cmds...)
}
