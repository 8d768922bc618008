// Package indicator implements the rolling-window math: simple moving
// averages and their envelopes, convergence ratios, turnover and amplitude
// aggregates, the Williams %R oscillator and the simulated volume split.
//
// Every output is a Value rather than a bare float64. A rolling window that
// has not warmed up, or a ratio whose denominator is zero, yields an
// undefined Value — never 0, since 0 reads as a materially different signal
// from "unknown". Undefinedness propagates: anything derived from an
// undefined input is itself undefined.
package indicator

import "encoding/json"

// Value is a float with an explicit defined/undefined marker.
// The zero Value is undefined.
type Value struct {
	V  float64
	OK bool
}

// Defined wraps a concrete number.
func Defined(v float64) Value { return Value{V: v, OK: true} }

// Undefined returns the undefined marker.
func Undefined() Value { return Value{} }

// Div divides a by b, guarding undefined operands and zero denominators.
func Div(a, b Value) Value {
	if !a.OK || !b.OK || b.V == 0 {
		return Undefined()
	}
	return Defined(a.V / b.V)
}

// Sub subtracts b from a, propagating undefinedness.
func Sub(a, b Value) Value {
	if !a.OK || !b.OK {
		return Undefined()
	}
	return Defined(a.V - b.V)
}

// Scale multiplies a defined value by k.
func (v Value) Scale(k float64) Value {
	if !v.OK {
		return Undefined()
	}
	return Defined(v.V * k)
}

// MarshalJSON encodes an undefined Value as null so API consumers can tell
// "unknown" apart from an actual zero.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

// UnmarshalJSON accepts null as undefined.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Undefined()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}
