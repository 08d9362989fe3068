package stimulus

import (
	"log"

	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

// Builder builds stimulus Comps.
type Builder struct {
	engine  sim.Engine
	program *Program

	clearWire     *wiring.Wire
	enableWire    *wiring.Wire
	directionWire *wiring.Wire
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine that schedules the vectors.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithProgram sets the program to play.
func (b Builder) WithProgram(p *Program) Builder {
	b.program = p
	return b
}

// WithClearWire sets the wire that receives the clear levels.
func (b Builder) WithClearWire(w *wiring.Wire) Builder {
	b.clearWire = w
	return b
}

// WithEnableWire sets the wire that receives the enable levels.
func (b Builder) WithEnableWire(w *wiring.Wire) Builder {
	b.enableWire = w
	return b
}

// WithDirectionWire sets the wire that receives the direction levels.
func (b Builder) WithDirectionWire(w *wiring.Wire) Builder {
	b.directionWire = w
	return b
}

// Build builds a new Comp. Wires that were not supplied are created with
// names derived from the component name.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		engine:  b.engine,
		program: b.program,
	}
	c.ComponentBase = sim.NewComponentBase(name)

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

	return c
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		log.Panic("stimulus must have an engine")
	}

	if b.program == nil {
		log.Panic("stimulus must have a program")
	}
}
