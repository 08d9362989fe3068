package counter

import (
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

// HookPosStep is a hook position that triggers after the register stepped at
// a rising edge. The hook ctx item is the Comp and the detail is a StepInfo.
var HookPosStep = &sim.HookPos{Name: "CounterStep"}

// StepInfo describes one register update.
type StepInfo struct {
	Cycle  sim.VTimeInCycle
	Clear  bool
	Enable bool
	Down   bool
	Before uint8
	After  uint8
}

// Comp wires a Register into a simulation as a clock-driven device. At each
// rising edge it samples the Clear, Enable and Direction wires, steps the
// register, and drives the Value bus and the Zero wire.
type Comp struct {
	*sim.ComponentBase

	timeTeller sim.TimeTeller
	reg        Register

	Clear     *wiring.Wire
	Enable    *wiring.Wire
	Direction *wiring.Wire
	Value     *wiring.Bus
	Zero      *wiring.Wire

	latchedClear  bool
	latchedEnable bool
	latchedDown   bool
}

// Sample latches the input wires at a rising edge.
func (c *Comp) Sample() {
	c.latchedClear = c.Clear.Level()
	c.latchedEnable = c.Enable.Level()
	c.latchedDown = c.Direction.Level()
}

// Commit steps the register from the latched inputs and drives the outputs.
func (c *Comp) Commit() {
	before := c.reg.Value()
	c.reg.Step(c.latchedClear, c.latchedEnable, c.latchedDown)
	after := c.reg.Value()

	c.driveOutputs()

	ctx := sim.HookCtx{
		Domain: c,
		Pos:    HookPosStep,
		Item:   c,
		Detail: StepInfo{
			Cycle:  c.timeTeller.CurrentTime(),
			Clear:  c.latchedClear,
			Enable: c.latchedEnable,
			Down:   c.latchedDown,
			Before: before,
			After:  after,
		},
	}
	c.InvokeHook(ctx)
}

func (c *Comp) driveOutputs() {
	value, zero := c.reg.Read()
	c.Value.Set(uint64(value))
	c.Zero.Set(zero)
}

// Read returns the current register value and the zero flag. It is pure and
// can be called freely between edges.
func (c *Comp) Read() (value uint8, zero bool) {
	return c.reg.Read()
}
