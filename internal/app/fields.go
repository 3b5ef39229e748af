package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ritzel/internal/errmsg"
	"github.com/llehouerou/ritzel/internal/gear"
	"github.com/llehouerou/ritzel/internal/ui/layout"
)

// field is the part of a spinner the app drives, whatever its value type.
type field interface {
	Field() string
	Float64() float64
	View() string
	SetFocused(focused bool)
	IsFocused() bool
	Blur() tea.Cmd
	Step(n int) tea.Cmd
	Confirm() tea.Cmd
	Cancel()
	Editing() bool
	Dragging() bool
	SetDisabled(disabled bool)
	HandleKey(msg tea.KeyMsg) (bool, tea.Cmd)
	Update(msg tea.Msg) tea.Cmd
	SetBounds(r layout.Rect)
}

// field returns the spinner showing slot.
func (m *Model) field(slot gear.Slot) field {
	switch slot {
	case gear.LeftTeeth:
		return &m.Left
	case gear.Ratio:
		return &m.Ratio
	default:
		return &m.Right
	}
}

func (m *Model) focused() field {
	return m.field(m.Focus)
}

// setFocus moves focus to slot, committing any edit in the column left.
func (m *Model) setFocus(slot gear.Slot) tea.Cmd {
	if slot == m.Focus {
		return nil
	}
	cmd := m.focused().Blur()
	m.Focus = slot
	m.focused().SetFocused(true)
	return cmd
}

// moveFocus cycles focus by delta columns.
func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(gear.Slots)
	next := (int(m.Focus) + delta%n + n) % n
	return m.setFocus(gear.Slots[next])
}

// lock makes slot the locked value. The locked column stops accepting
// input and drops any pending edit.
func (m *Model) lock(slot gear.Slot) {
	prev := m.Gear.Locked()
	if slot == prev {
		return
	}
	m.Gear.SetLocked(slot)
	m.log.Debug().Stringer("locked", slot).Stringer("previous", prev).Msg("lock changed")
	m.syncFields()
}

// applyEdit feeds a confirmed spinner value into the gear state.
func (m *Model) applyEdit(slot gear.Slot, value float64) {
	// A commit queued before its column was locked.
	if slot == m.Gear.Locked() {
		m.log.Debug().Stringer("slot", slot).Msg("edit of locked value dropped")
		m.syncFields()
		return
	}

	if err := m.Gear.Edit(slot, value); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpApplyEdit, err)
		m.log.Warn().Err(err).Stringer("slot", slot).Float64("value", value).Msg("edit rejected")
		m.syncFields()
		return
	}

	m.ErrorMsg = ""
	m.log.Debug().
		Stringer("edited", slot).
		Float64("value", value).
		Int("left", m.Gear.LeftTeeth()).
		Int("right", m.Gear.RightTeeth()).
		Float64("given", m.Gear.GivenRatio()).
		Float64("actual", m.Gear.ActualRatio()).
		Msg("recomputed")
	m.syncFields()
}

// syncFields pushes the gear values and lock into the spinners.
func (m *Model) syncFields() {
	m.Left.SetValue(m.Gear.LeftTeeth())
	m.Ratio.SetValue(m.Gear.GivenRatio())
	m.Right.SetValue(m.Gear.RightTeeth())
	for _, slot := range gear.Slots {
		m.field(slot).SetDisabled(slot == m.Gear.Locked())
	}
}
