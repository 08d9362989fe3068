// Package counter models a 5-bit synchronous up/down counter register with
// synchronous clear, an enable gate, and a combinational zero-detect output.
package counter

// Width is the number of bits the register holds.
const Width = 5

// MaxValue is the largest value the register can hold.
const MaxValue = 1<<Width - 1

// A Register is the bare counter state. It is a plain value with no locking
// of its own. One external driver steps it, once per rising clock edge.
type Register struct {
	value uint8
}

// Step updates the register for one rising clock edge. The inputs are applied
// in strict priority order. Clear wins over everything and resets the value
// to 0. Otherwise, when enable is high the register counts, up when down is
// false and down when down is true, wrapping modulo 32 in both directions.
// When enable is low the value holds.
func (r *Register) Step(clear, enable, down bool) {
	switch {
	case clear:
		r.value = 0
	case enable && !down:
		r.value = (r.value + 1) & MaxValue
	case enable && down:
		r.value = (r.value - 1) & MaxValue
	}
}

// Read returns the current value together with the zero flag. The zero flag
// is combinational. It is recomputed from the value on every read, so it can
// never lag a transition.
func (r *Register) Read() (value uint8, zero bool) {
	return r.value, r.value == 0
}

// Value returns the current register contents.
func (r *Register) Value() uint8 {
	return r.value
}

// Zero returns true exactly when the register holds 0.
func (r *Register) Zero() bool {
	return r.value == 0
}
