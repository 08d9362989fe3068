package stimulus

import (
	"log"

	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

// applyEvent carries one vector to put on the wires.
type applyEvent struct {
	sim.EventBase

	vector Vector
}

func makeApplyEvent(
	handler sim.Handler,
	time sim.VTimeInCycle,
	vector Vector,
) applyEvent {
	evt := applyEvent{}
	evt.EventBase = *sim.NewEventBase(time, handler)
	evt.vector = vector

	return evt
}

// Comp plays a stimulus program. Vectors are applied as primary events, so
// at a given cycle the wires settle before any clock edge samples them.
type Comp struct {
	*sim.ComponentBase

	engine  sim.Engine
	program *Program

	Clear     *wiring.Wire
	Enable    *wiring.Wire
	Direction *wiring.Wire
}

// Play schedules every vector of the program.
func (c *Comp) Play() {
	for _, v := range c.program.Vectors {
		evt := makeApplyEvent(c, sim.VTimeInCycle(v.Cycle), v)
		c.engine.Schedule(evt)
	}
}

// Handle applies one vector.
func (c *Comp) Handle(e sim.Event) error {
	evt, ok := e.(applyEvent)
	if !ok {
		log.Panicf("cannot handle event %T", e)
	}

	c.Clear.Set(evt.vector.Clear)
	c.Enable.Set(evt.vector.Enable)
	c.Direction.Set(evt.vector.Direction)

	return nil
}
