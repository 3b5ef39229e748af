package gear

import (
	"errors"
	"fmt"
	"math"
)

// Tooth count bounds. Every tooth count stored in a State lies in
// [MinTeeth, MaxTeeth].
const (
	MinTeeth = 1
	MaxTeeth = math.MaxInt32
)

// Default values for a fresh calculator.
const (
	DefaultLeftTeeth  = 10
	DefaultRightTeeth = 15
	DefaultGivenRatio = 1.5
	DefaultLocked     = Ratio
)

var (
	ErrInvalidTeeth = errors.New("invalid tooth count")
	ErrInvalidRatio = errors.New("invalid ratio")
)

// State holds the two tooth counts, the ratio the user asked for and the
// ratio the tooth counts actually produce.
//
// The left gear drives, the right gear is driven: the ratio is right/left.
// After construction and after every edit, ActualRatio() equals
// float64(RightTeeth())/float64(LeftTeeth()).
type State struct {
	left        int
	right       int
	givenRatio  float64
	actualRatio float64
	locked      Slot
}

// New creates a state from explicit values.
func New(left, right int, givenRatio float64, locked Slot) (State, error) {
	if left < MinTeeth || left > MaxTeeth {
		return State{}, fmt.Errorf("%w: left %d", ErrInvalidTeeth, left)
	}
	if right < MinTeeth || right > MaxTeeth {
		return State{}, fmt.Errorf("%w: right %d", ErrInvalidTeeth, right)
	}
	if !validRatio(givenRatio) {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidRatio, givenRatio)
	}
	if !locked.Valid() {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidSlot, int(locked))
	}

	s := State{
		left:       left,
		right:      right,
		givenRatio: givenRatio,
		locked:     locked,
	}
	s.computeRatio()
	return s, nil
}

// Default returns the startup state: 10 and 15 teeth, ratio 1.5 locked.
func Default() State {
	s, err := New(DefaultLeftTeeth, DefaultRightTeeth, DefaultGivenRatio, DefaultLocked)
	if err != nil {
		panic(err)
	}
	return s
}

// LeftTeeth returns the tooth count of the driving gear.
func (s *State) LeftTeeth() int { return s.left }

// RightTeeth returns the tooth count of the driven gear.
func (s *State) RightTeeth() int { return s.right }

// GivenRatio returns the ratio entered by the user.
func (s *State) GivenRatio() float64 { return s.givenRatio }

// ActualRatio returns right/left for the current tooth counts. It may differ
// from GivenRatio because tooth counts are whole numbers.
func (s *State) ActualRatio() float64 { return s.actualRatio }

// Locked returns the slot that is never edited nor recomputed.
func (s *State) Locked() Slot { return s.locked }

// Divergence returns (actual-given)/given.
func (s *State) Divergence() float64 {
	return (s.actualRatio - s.givenRatio) / s.givenRatio
}

// Value returns the current value of a slot. The Ratio slot reports the
// given ratio.
func (s *State) Value(slot Slot) float64 {
	switch slot {
	case LeftTeeth:
		return float64(s.left)
	case RightTeeth:
		return float64(s.right)
	default:
		return s.givenRatio
	}
}

// SetLocked changes the locked slot. No value changes and nothing is
// recomputed until the next edit.
func (s *State) SetLocked(slot Slot) {
	if !slot.Valid() {
		panic(fmt.Sprintf("gear: SetLocked(%v): invalid slot", slot))
	}
	s.locked = slot
}

// Edit stores a new value for slot and recomputes the free slot.
//
// Tooth counts are rounded half away from zero and clamped to
// [MinTeeth, MaxTeeth]. A ratio must be finite and positive, otherwise
// ErrInvalidRatio is returned and the state is unchanged.
// Editing the locked slot panics: callers must keep the locked input
// non-interactive.
func (s *State) Edit(slot Slot, value float64) error {
	if slot == s.locked {
		panic(fmt.Sprintf("gear: Edit(%v): slot is locked", slot))
	}

	switch slot {
	case LeftTeeth:
		if math.IsNaN(value) {
			return fmt.Errorf("%w: %v", ErrInvalidTeeth, value)
		}
		s.left = roundTeeth(value)
	case RightTeeth:
		if math.IsNaN(value) {
			return fmt.Errorf("%w: %v", ErrInvalidTeeth, value)
		}
		s.right = roundTeeth(value)
	case Ratio:
		if !validRatio(value) {
			return fmt.Errorf("%w: %v", ErrInvalidRatio, value)
		}
		s.givenRatio = value
	default:
		panic(fmt.Sprintf("gear: Edit(%v): invalid slot", slot))
	}

	s.RecomputeFrom(slot)
	return nil
}

// SetLeftTeeth is Edit(LeftTeeth, n).
func (s *State) SetLeftTeeth(n int) {
	_ = s.Edit(LeftTeeth, float64(n))
}

// SetRightTeeth is Edit(RightTeeth, n).
func (s *State) SetRightTeeth(n int) {
	_ = s.Edit(RightTeeth, float64(n))
}

// SetGivenRatio is Edit(Ratio, r).
func (s *State) SetGivenRatio(r float64) error {
	return s.Edit(Ratio, r)
}

// RecomputeFrom recomputes the slot that is neither edited nor locked, then
// refreshes the actual ratio.
func (s *State) RecomputeFrom(edited Slot) {
	switch Missing(edited, s.locked) {
	case LeftTeeth:
		s.left = roundTeeth(float64(s.right) / s.givenRatio)
	case RightTeeth:
		s.right = roundTeeth(float64(s.left) * s.givenRatio)
	case Ratio:
	}
	s.computeRatio()
}

func (s *State) computeRatio() {
	s.actualRatio = float64(s.right) / float64(s.left)
}

// roundTeeth rounds half away from zero and clamps to the tooth bounds.
func roundTeeth(v float64) int {
	r := math.Round(v)
	if r < MinTeeth {
		return MinTeeth
	}
	if r > MaxTeeth {
		return MaxTeeth
	}
	return int(r)
}

func validRatio(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
