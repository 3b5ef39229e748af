// Package gear models two meshed gears and the ratio between them.
//
// Three quantities are linked: the left tooth count, the right tooth count
// and the ratio right/left. One of them is locked by the user. Editing one of
// the two others recomputes the third.
package gear

import (
	"errors"
	"fmt"
	"strings"
)

// Slot identifies one of the three linked quantities.
type Slot int

const (
	LeftTeeth Slot = iota
	Ratio
	RightTeeth
)

// ErrInvalidSlot is returned when a slot name cannot be parsed.
var ErrInvalidSlot = errors.New("invalid slot")

// Slots lists every slot in display order (left to right).
var Slots = [...]Slot{LeftTeeth, Ratio, RightTeeth}

// String returns the slot name used in config files and on the command line.
func (s Slot) String() string {
	switch s {
	case LeftTeeth:
		return "left"
	case Ratio:
		return "ratio"
	case RightTeeth:
		return "right"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Label returns a human-readable name for the slot.
func (s Slot) Label() string {
	switch s {
	case LeftTeeth:
		return "Left teeth"
	case Ratio:
		return "Ratio"
	case RightTeeth:
		return "Right teeth"
	}
	return s.String()
}

// Valid reports whether s is one of the three known slots.
func (s Slot) Valid() bool {
	return s == LeftTeeth || s == Ratio || s == RightTeeth
}

// ParseSlot parses a slot name. Matching is case-insensitive.
func ParseSlot(name string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "left_teeth":
		return LeftTeeth, nil
	case "ratio":
		return Ratio, nil
	case "right", "right_teeth":
		return RightTeeth, nil
	}
	return 0, fmt.Errorf("%w: %q (want left, ratio or right)", ErrInvalidSlot, name)
}

// Missing returns the slot that is neither a nor b.
// a and b must be distinct valid slots; anything else is a programming error
// and panics.
func Missing(a, b Slot) Slot {
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("gear: Missing(%v, %v): invalid slot", a, b))
	}
	if a == b {
		panic(fmt.Sprintf("gear: Missing(%v, %v): slots must differ", a, b))
	}

	switch {
	case a != LeftTeeth && b != LeftTeeth:
		return LeftTeeth
	case a != Ratio && b != Ratio:
		return Ratio
	default:
		return RightTeeth
	}
}
