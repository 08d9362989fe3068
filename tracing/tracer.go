// Package tracing captures signal activity from a running simulation.
// Tracers subscribe to wire, bus, and counter hooks and store the observed
// transitions into CSV files or databases.
package tracing

import (
	"github.com/sarchlab/lutra/logic/counter"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

// A Transition is one observed level change on a signal.
type Transition struct {
	ID     string
	Signal string
	Cycle  uint64
	Value  uint64
}

// A Step is one observed counter register update.
type Step struct {
	ID        string
	Component string
	Cycle     uint64
	Clear     bool
	Enable    bool
	Direction bool
	Before    uint64
	After     uint64
}

// A Tracer can collect signal traces.
type Tracer interface {
	RecordTransition(t Transition)
	RecordStep(s Step)
}

// NamedHookable is a signal or component that is both named and hookable.
type NamedHookable interface {
	sim.Named
	sim.Hookable
}

// CollectWire subscribes a tracer to the level changes of a wire. The time
// teller stamps each transition with the cycle it happened in.
func CollectWire(w *wiring.Wire, tt sim.TimeTeller, tracer Tracer) {
	w.AcceptHook(&wireTraceHook{tt: tt, tracer: tracer})
}

// CollectBus subscribes a tracer to the value changes of a bus.
func CollectBus(b *wiring.Bus, tt sim.TimeTeller, tracer Tracer) {
	b.AcceptHook(&busTraceHook{tt: tt, tracer: tracer})
}

// CollectSteps subscribes a tracer to the register updates of a counter.
func CollectSteps(c *counter.Comp, tracer Tracer) {
	c.AcceptHook(&stepTraceHook{tracer: tracer})
}

type wireTraceHook struct {
	tt     sim.TimeTeller
	tracer Tracer
}

func (h *wireTraceHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != wiring.HookPosWireChange {
		return
	}

	wire := ctx.Item.(*wiring.Wire)
	change := ctx.Detail.(wiring.WireChange)

	value := uint64(0)
	if change.New {
		value = 1
	}

	h.tracer.RecordTransition(Transition{
		ID:     sim.GetIDGenerator().Generate(),
		Signal: wire.Name(),
		Cycle:  uint64(h.tt.CurrentTime()),
		Value:  value,
	})
}

type busTraceHook struct {
	tt     sim.TimeTeller
	tracer Tracer
}

func (h *busTraceHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != wiring.HookPosBusChange {
		return
	}

	bus := ctx.Item.(*wiring.Bus)
	change := ctx.Detail.(wiring.BusChange)

	h.tracer.RecordTransition(Transition{
		ID:     sim.GetIDGenerator().Generate(),
		Signal: bus.Name(),
		Cycle:  uint64(h.tt.CurrentTime()),
		Value:  change.New,
	})
}

type stepTraceHook struct {
	tracer Tracer
}

func (h *stepTraceHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != counter.HookPosStep {
		return
	}

	comp := ctx.Item.(*counter.Comp)
	info := ctx.Detail.(counter.StepInfo)

	h.tracer.RecordStep(Step{
		ID:        sim.GetIDGenerator().Generate(),
		Component: comp.Name(),
		Cycle:     uint64(info.Cycle),
		Clear:     info.Clear,
		Enable:    info.Enable,
		Direction: info.Down,
		Before:    uint64(info.Before),
		After:     uint64(info.After),
	})
}
