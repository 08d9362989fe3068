package sim

import (
	"log"
	"sync"
)

// EdgeEvent triggers one rising clock edge. Edge events are always secondary
// so that stimulus applied at the same cycle is on the wires before any
// device samples them.
type EdgeEvent struct {
	EventBase
}

// MakeEdgeEvent creates a new EdgeEvent
func MakeEdgeEvent(handler Handler, time VTimeInCycle) EdgeEvent {
	evt := EdgeEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time
	evt.secondary = true

	return evt
}

// A Clocked is a device that updates its state on rising clock edges. The
// update is split in two phases. At an edge, the clock first calls Sample on
// every registered device, then Commit on every registered device. A device
// must read its inputs only in Sample and drive its outputs only in Commit,
// so that same-edge feedback between devices cannot race.
type Clocked interface {
	Named

	// Sample latches the input signals of the device.
	Sample()

	// Commit updates the device state from the latched inputs and drives the
	// output signals.
	Commit()
}

// HookPosClockEdge is a hook position that triggers after all devices have
// committed at a rising edge. The hook ctx item is the EdgeEvent.
var HookPosClockEdge = &HookPos{Name: "ClockEdge"}

// A Clock generates rising edges and drives the registered devices through
// their two-phase update.
type Clock struct {
	HookableBase

	lock    sync.Mutex
	name    string
	engine  Engine
	period  VTimeInCycle
	devices []Clocked

	remaining uint64
	scheduled bool
	edgeCount uint64
}

// NewClock creates a clock that fires one rising edge every period cycles.
func NewClock(name string, engine Engine, period VTimeInCycle) *Clock {
	if period == 0 {
		log.Panic("clock period must be at least one cycle")
	}

	c := new(Clock)
	c.name = name
	c.engine = engine
	c.period = period

	return c
}

// Name returns the name of the clock.
func (c *Clock) Name() string {
	return c.name
}

// Period returns the number of cycles between two rising edges.
func (c *Clock) Period() VTimeInCycle {
	return c.period
}

// EdgeCount returns the number of rising edges fired so far.
func (c *Clock) EdgeCount() uint64 {
	c.lock.Lock()
	n := c.edgeCount
	c.lock.Unlock()
	return n
}

// RegisterClocked adds a device to the clock domain. Devices sample and
// commit in registration order.
func (c *Clock) RegisterClocked(d Clocked) {
	if d == nil {
		log.Panic("cannot register a nil device")
	}

	c.lock.Lock()
	c.devices = append(c.devices, d)
	c.lock.Unlock()
}

// Advance schedules n more rising edges, the first one period after the
// current cycle. Calling Advance again before the edges run out extends the
// run without stacking extra edge events.
func (c *Clock) Advance(n uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.remaining += n
	if !c.scheduled && c.remaining > 0 {
		c.scheduleNextEdge(c.engine.CurrentTime() + c.period)
	}
}

func (c *Clock) scheduleNextEdge(t VTimeInCycle) {
	c.scheduled = true
	evt := MakeEdgeEvent(c, t)
	c.engine.Schedule(evt)
}

// Handle runs one rising edge.
func (c *Clock) Handle(e Event) error {
	c.lock.Lock()
	devices := make([]Clocked, len(c.devices))
	copy(devices, c.devices)
	c.remaining--
	c.scheduled = false
	c.edgeCount++
	c.lock.Unlock()

	for _, d := range devices {
		d.Sample()
	}

	for _, d := range devices {
		d.Commit()
	}

	ctx := HookCtx{
		Domain: c,
		Pos:    HookPosClockEdge,
		Item:   e,
	}
	c.InvokeHook(ctx)

	c.lock.Lock()
	if c.remaining > 0 && !c.scheduled {
		c.scheduleNextEdge(e.Time() + c.period)
	}
	c.lock.Unlock()

	return nil
}
