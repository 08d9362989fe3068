package wiring

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lutra/sim"
)

type changeRecorderHook struct {
	changes []sim.HookCtx
}

func (h *changeRecorderHook) Func(ctx sim.HookCtx) {
	h.changes = append(h.changes, ctx)
}

var _ = Describe("Wire", func() {
	var (
		wire *Wire
		hook *changeRecorderHook
	)

	BeforeEach(func() {
		wire = NewWire("Harness.Clear")
		hook = &changeRecorderHook{}
		wire.AcceptHook(hook)
	})

	It("should panic without a name", func() {
		Expect(func() { NewWire("") }).To(Panic())
	})

	It("should start low", func() {
		Expect(wire.Level()).To(BeFalse())
	})

	It("should hold the driven level", func() {
		wire.Set(true)
		Expect(wire.Level()).To(BeTrue())

		wire.Set(false)
		Expect(wire.Level()).To(BeFalse())
	})

	It("should hook on transitions only", func() {
		wire.Set(true)
		wire.Set(true)
		wire.Set(false)

		Expect(hook.changes).To(HaveLen(2))
		Expect(hook.changes[0].Pos).To(BeIdenticalTo(HookPosWireChange))
		Expect(hook.changes[0].Detail).To(
			Equal(WireChange{Old: false, New: true}))
		Expect(hook.changes[1].Detail).To(
			Equal(WireChange{Old: true, New: false}))
	})
})
