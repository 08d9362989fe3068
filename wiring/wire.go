// Package wiring provides the signals that connect simulated devices. Wires
// carry single-bit levels and buses carry multi-bit values. Both are hookable
// so that tracers can observe transitions as they happen.
package wiring

import (
	"log"
	"sync"

	"github.com/sarchlab/lutra/sim"
)

// HookPosWireChange is a hook position that triggers when the level of a wire
// changes. The hook ctx item is the wire and the detail is a WireChange.
var HookPosWireChange = &sim.HookPos{Name: "WireChange"}

// WireChange describes one level transition on a wire.
type WireChange struct {
	Old bool
	New bool
}

// A Wire is a named single-bit signal. Levels are strict booleans. A wire has
// one driver at a time; the driving device sets the level and any number of
// devices read it.
type Wire struct {
	sim.HookableBase

	lock  sync.Mutex
	name  string
	level bool
}

// NewWire creates a wire that is initially low.
func NewWire(name string) *Wire {
	if name == "" {
		log.Panic("wire must have a name")
	}

	w := new(Wire)
	w.name = name

	return w
}

// Name returns the name of the wire.
func (w *Wire) Name() string {
	return w.name
}

// Set drives the wire to the given level. Hooks fire only when the level
// actually changes.
func (w *Wire) Set(level bool) {
	w.lock.Lock()
	old := w.level
	w.level = level
	w.lock.Unlock()

	if old == level {
		return
	}

	ctx := sim.HookCtx{
		Domain: w,
		Pos:    HookPosWireChange,
		Item:   w,
		Detail: WireChange{Old: old, New: level},
	}
	w.InvokeHook(ctx)
}

// Level returns the current level of the wire.
func (w *Wire) Level() bool {
	w.lock.Lock()
	level := w.level
	w.lock.Unlock()
	return level
}
