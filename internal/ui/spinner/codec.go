package spinner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a spinner can edit.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrNotANumber is returned when text cannot be parsed as a value.
var ErrNotANumber = errors.New("not a number")

// maxIntMagnitude bounds parsed integers so the float to int conversion
// stays exact.
const maxIntMagnitude = 1 << 53

// Codec converts between a value and its text representation.
type Codec[T Number] interface {
	// Parse reads a value typed by the user.
	Parse(text string) (T, error)
	// Format renders a value for display and editing.
	Format(v T) string
	// Normalize snaps a value to the representable grid (e.g. decimal places).
	Normalize(v T) T
}

// IntCodec edits whole numbers. Decimal input is accepted and rounded half
// away from zero, so "12.6" reads as 13.
type IntCodec struct{}

var _ Codec[int] = IntCodec{}

// Parse implements Codec.
func (IntCodec) Parse(text string) (int, error) {
	f, err := parseFloat(text)
	if err != nil {
		return 0, err
	}
	r := math.Round(f)
	if math.Abs(r) > maxIntMagnitude {
		return 0, fmt.Errorf("%w: %q is out of range", ErrNotANumber, text)
	}
	return int(r), nil
}

// Format implements Codec.
func (IntCodec) Format(v int) string {
	return strconv.Itoa(v)
}

// Normalize implements Codec.
func (IntCodec) Normalize(v int) int {
	return v
}

// FloatCodec edits real numbers shown with a fixed number of decimals.
type FloatCodec struct {
	Precision int
}

var _ Codec[float64] = FloatCodec{}

// Parse implements Codec.
func (c FloatCodec) Parse(text string) (float64, error) {
	return parseFloat(text)
}

// Format implements Codec.
func (c FloatCodec) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', c.Precision, 64)
}

// Normalize rounds to Precision decimals so that repeated steps of 0.1 do
// not accumulate binary rounding error.
func (c FloatCodec) Normalize(v float64) float64 {
	scale := math.Pow10(c.Precision)
	return math.Round(v*scale) / scale
}

// parseFloat accepts a comma as decimal separator and surrounding spaces.
func parseFloat(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return f, nil
}
