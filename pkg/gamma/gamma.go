// Package gamma computes gamma-corrected 8-bit levels for the chart's fixed
// brightness inputs.
package gamma

import (
	"errors"
	"fmt"
	"math"
)

// ErrGamma is returned for gamma values that cannot be inverted.
var ErrGamma = errors.New("gamma must be a positive finite number")

// Inputs are the uncorrected levels the charts are built from:
// 0%, 25%, 50%, 75% and 100% of 255.
var Inputs = [5]uint8{0, 63, 127, 191, 255}

// Validate reports whether g can be used as a gamma value.
func Validate(g float64) error {
	if g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("%w: %v", ErrGamma, g)
	}
	return nil
}

// Correct returns round((input/255)^(1/g) * 255). A gamma that fails
// Validate and yields no number corrects to 0.
func Correct(g float64, input uint8) uint8 {
	v := math.Round(math.Pow(float64(input)/255.0, 1.0/g) * 255)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex formats the corrected level as two lowercase hex digits.
func Hex(g float64, input uint8) string {
	return fmt.Sprintf("%02x", Correct(g, input))
}

// Table holds the corrected values of Inputs for one gamma.
type Table struct {
	Gamma float64
	V000  uint8
	V025  uint8
	V050  uint8
	V075  uint8
	V100  uint8
}

// NewTable corrects every entry of Inputs for gamma g.
func NewTable(g float64) (Table, error) {
	if err := Validate(g); err != nil {
		return Table{}, err
	}
	return Table{
		Gamma: g,
		V000:  Correct(g, Inputs[0]),
		V025:  Correct(g, Inputs[1]),
		V050:  Correct(g, Inputs[2]),
		V075:  Correct(g, Inputs[3]),
		V100:  Correct(g, Inputs[4]),
	}, nil
}

// Level returns the corrected value for an uncorrected input level. Inputs
// outside the fixed set are corrected on the fly.
func (t Table) Level(input uint8) uint8 {
	switch input {
	case Inputs[0]:
		return t.V000
	case Inputs[1]:
		return t.V025
	case Inputs[2]:
		return t.V050
	case Inputs[3]:
		return t.V075
	case Inputs[4]:
		return t.V100
	}
	return Correct(t.Gamma, input)
}

// Label is the tab caption for a gamma value, e.g. "Gamma=2.2".
func Label(g float64) string {
	return fmt.Sprintf("Gamma=%.1f", g)
}
