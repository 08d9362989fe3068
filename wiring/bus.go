package wiring

import (
	"log"
	"sync"

	"github.com/sarchlab/lutra/sim"
)

// HookPosBusChange is a hook position that triggers when the value of a bus
// changes. The hook ctx item is the bus and the detail is a BusChange.
var HookPosBusChange = &sim.HookPos{Name: "BusChange"}

// BusChange describes one value transition on a bus.
type BusChange struct {
	Old uint64
	New uint64
}

// A Bus is a named multi-bit signal of up to 64 bits. Values written to the
// bus are truncated to the bus width.
type Bus struct {
	sim.HookableBase

	lock  sync.Mutex
	name  string
	width int
	value uint64
}

// NewBus creates a bus of the given width, initially all zero.
func NewBus(name string, width int) *Bus {
	if name == "" {
		log.Panic("bus must have a name")
	}

	if width <= 0 || width > 64 {
		log.Panicf("bus width must be in [1, 64], but is %d", width)
	}

	b := new(Bus)
	b.name = name
	b.width = width

	return b
}

// Name returns the name of the bus.
func (b *Bus) Name() string {
	return b.name
}

// Width returns the number of bits the bus carries.
func (b *Bus) Width() int {
	return b.width
}

// Mask returns a mask with the low Width bits set.
func (b *Bus) Mask() uint64 {
	if b.width == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << b.width) - 1
}

// Set drives the bus to the given value, truncated to the bus width. Hooks
// fire only when the value actually changes.
func (b *Bus) Set(value uint64) {
	masked := value & b.Mask()

	b.lock.Lock()
	old := b.value
	b.value = masked
	b.lock.Unlock()

	if old == masked {
		return
	}

	ctx := sim.HookCtx{
		Domain: b,
		Pos:    HookPosBusChange,
		Item:   b,
		Detail: BusChange{Old: old, New: masked},
	}
	b.InvokeHook(ctx)
}

// Value returns the current value of the bus.
func (b *Bus) Value() uint64 {
	b.lock.Lock()
	value := b.value
	b.lock.Unlock()
	return value
}
