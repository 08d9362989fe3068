package counter

import (
	"log"

	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

// Builder builds counter Comps.
type Builder struct {
	engine       sim.Engine
	clock        *sim.Clock
	initialValue uint8

	clearWire     *wiring.Wire
	enableWire    *wiring.Wire
	directionWire *wiring.Wire
	valueBus      *wiring.Bus
	zeroWire      *wiring.Wire
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine that the counter uses to tell time.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithClock sets the clock that drives the counter.
func (b Builder) WithClock(clock *sim.Clock) Builder {
	b.clock = clock
	return b
}

// WithInitialValue sets the value the register holds before the first edge.
func (b Builder) WithInitialValue(value uint8) Builder {
	b.initialValue = value
	return b
}

// WithClearWire sets the wire that carries the clear input.
func (b Builder) WithClearWire(w *wiring.Wire) Builder {
	b.clearWire = w
	return b
}

// WithEnableWire sets the wire that carries the enable input.
func (b Builder) WithEnableWire(w *wiring.Wire) Builder {
	b.enableWire = w
	return b
}

// WithDirectionWire sets the wire that carries the direction input.
func (b Builder) WithDirectionWire(w *wiring.Wire) Builder {
	b.directionWire = w
	return b
}

// WithValueBus sets the bus that the counter drives with its value.
func (b Builder) WithValueBus(bus *wiring.Bus) Builder {
	b.valueBus = bus
	return b
}

// WithZeroWire sets the wire that the counter drives with the zero flag.
func (b Builder) WithZeroWire(w *wiring.Wire) Builder {
	b.zeroWire = w
	return b
}

// Build builds a new Comp. Pins that were not supplied are created with
// names derived from the component name. The comp registers itself with the
// clock and drives its outputs from the initial value.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		timeTeller: b.engine,
	}
	c.ComponentBase = sim.NewComponentBase(name)
	c.reg.value = b.initialValue

	c.Clear = b.clearWire
	if c.Clear == nil {
		c.Clear = wiring.NewWire(name + ".Clear")
	}

	c.Enable = b.enableWire
	if c.Enable == nil {
		c.Enable = wiring.NewWire(name + ".Enable")
	}

	c.Direction = b.directionWire
	if c.Direction == nil {
		c.Direction = wiring.NewWire(name + ".Direction")
	}

	c.Value = b.valueBus
	if c.Value == nil {
		c.Value = wiring.NewBus(name+".Value", Width)
	}

	c.Zero = b.zeroWire
	if c.Zero == nil {
		c.Zero = wiring.NewWire(name + ".Zero")
	}

	if c.Value.Width() != Width {
		log.Panicf("counter value bus must be %d bits wide", Width)
	}

	b.clock.RegisterClocked(c)
	c.driveOutputs()

	return c
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		log.Panic("counter must have an engine")
	}

	if b.clock == nil {
		log.Panic("counter must have a clock")
	}

	if b.initialValue > MaxValue {
		log.Panicf("counter initial value must be in [0, %d], but is %d",
			MaxValue, b.initialValue)
	}
}
