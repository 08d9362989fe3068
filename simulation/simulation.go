// Package simulation assembles the services that a simulation needs,
// including the event engine, the clock, data recording, tracing, and
// monitoring.
package simulation

import (
	"github.com/sarchlab/lutra/datarecording"
	"github.com/sarchlab/lutra/logic/counter"
	"github.com/sarchlab/lutra/monitoring"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/tracing"
	"github.com/sarchlab/lutra/wiring"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	engine sim.Engine
	clock  *sim.Clock

	dataRecorder datarecording.DataRecorder
	execRecorder *datarecording.ExecRecorder
	monitor      *monitoring.Monitor
	tracer       *tracing.DBTracer

	components    []sim.Component
	compNameIndex map[string]int
	wires         []*wiring.Wire
	wireNameIndex map[string]int
	buses         []*wiring.Bus
	busNameIndex  map[string]int
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetClock returns the clock that drives the simulation.
func (s *Simulation) GetClock() *sim.Clock {
	return s.clock
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It returns nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetTracer returns the tracer that records signal activity of the
// simulation.
func (s *Simulation) GetTracer() *tracing.DBTracer {
	return s.tracer
}

// RegisterComponent registers a component with the simulation. Counters are
// automatically traced.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, ok := s.compNameIndex[compName]; ok {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}

	if counterComp, ok := c.(*counter.Comp); ok {
		tracing.CollectSteps(counterComp, s.tracer)
	}
}

// RegisterWire registers a wire with the simulation. The wire level changes
// are traced, and the wire shows up in the monitor signal listing.
func (s *Simulation) RegisterWire(w *wiring.Wire) {
	wireName := w.Name()
	if _, ok := s.wireNameIndex[wireName]; ok {
		panic("wire " + wireName + " already registered")
	}

	s.wires = append(s.wires, w)
	s.wireNameIndex[wireName] = len(s.wires) - 1

	tracing.CollectWire(w, s.engine, s.tracer)

	if s.monitor != nil {
		s.monitor.RegisterWire(w)
	}
}

// RegisterBus registers a bus with the simulation. The bus value changes are
// traced, and the bus shows up in the monitor signal listing.
func (s *Simulation) RegisterBus(b *wiring.Bus) {
	busName := b.Name()
	if _, ok := s.busNameIndex[busName]; ok {
		panic("bus " + busName + " already registered")
	}

	s.buses = append(s.buses, b)
	s.busNameIndex[busName] = len(s.buses) - 1

	tracing.CollectBus(b, s.engine, s.tracer)

	if s.monitor != nil {
		s.monitor.RegisterBus(b)
	}
}

// GetComponentByName returns the component with the given name, or nil when
// no such component is registered.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	index, ok := s.compNameIndex[name]
	if !ok {
		return nil
	}

	return s.components[index]
}

// GetWireByName returns the wire with the given name, or nil when no such
// wire is registered.
func (s *Simulation) GetWireByName(name string) *wiring.Wire {
	index, ok := s.wireNameIndex[name]
	if !ok {
		return nil
	}

	return s.wires[index]
}

// GetBusByName returns the bus with the given name, or nil when no such bus
// is registered.
func (s *Simulation) GetBusByName(name string) *wiring.Bus {
	index, ok := s.busNameIndex[name]
	if !ok {
		return nil
	}

	return s.buses[index]
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// Terminate terminates the simulation. The simulation end handlers run, the
// run metadata is finalized, and the data recorder is closed.
func (s *Simulation) Terminate() {
	s.engine.Finished()
	s.execRecorder.End()
	s.dataRecorder.Close()
}
