package counter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lutra/sim"
)

type stepRecorderHook struct {
	steps []StepInfo
}

func (h *stepRecorderHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosStep {
		return
	}

	h.steps = append(h.steps, ctx.Detail.(StepInfo))
}

var _ = Describe("Comp", func() {
	var (
		engine *sim.SerialEngine
		clock  *sim.Clock
		comp   *Comp
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		clock = sim.NewClock("Clock", engine, 1)
		comp = MakeBuilder().
			WithEngine(engine).
			WithClock(clock).
			Build("Counter")
	})

	It("should panic when the clock is missing", func() {
		Expect(func() {
			MakeBuilder().WithEngine(engine).Build("NoClock")
		}).To(Panic())
	})

	It("should panic on an out-of-range initial value", func() {
		Expect(func() {
			MakeBuilder().
				WithEngine(engine).
				WithClock(clock).
				WithInitialValue(32).
				Build("TooBig")
		}).To(Panic())
	})

	It("should drive its outputs before the first edge", func() {
		Expect(comp.Value.Value()).To(Equal(uint64(0)))
		Expect(comp.Zero.Level()).To(BeTrue())
	})

	It("should start from the configured initial value", func() {
		seeded := MakeBuilder().
			WithEngine(engine).
			WithClock(clock).
			WithInitialValue(7).
			Build("Seeded")

		value, zero := seeded.Read()
		Expect(value).To(Equal(uint8(7)))
		Expect(zero).To(BeFalse())
		Expect(seeded.Value.Value()).To(Equal(uint64(7)))
		Expect(seeded.Zero.Level()).To(BeFalse())
	})

	It("should count up while enabled", func() {
		comp.Enable.Set(true)
		clock.Advance(3)

		Expect(engine.Run()).To(Succeed())

		value, zero := comp.Read()
		Expect(value).To(Equal(uint8(3)))
		Expect(zero).To(BeFalse())
		Expect(comp.Value.Value()).To(Equal(uint64(3)))
		Expect(comp.Zero.Level()).To(BeFalse())
	})

	It("should clear synchronously", func() {
		comp.Enable.Set(true)
		clock.Advance(3)
		Expect(engine.Run()).To(Succeed())

		comp.Clear.Set(true)
		clock.Advance(1)
		Expect(engine.Run()).To(Succeed())

		value, zero := comp.Read()
		Expect(value).To(Equal(uint8(0)))
		Expect(zero).To(BeTrue())
		Expect(comp.Zero.Level()).To(BeTrue())
	})

	It("should wrap downward from zero", func() {
		comp.Enable.Set(true)
		comp.Direction.Set(true)
		clock.Advance(1)

		Expect(engine.Run()).To(Succeed())

		value, zero := comp.Read()
		Expect(value).To(Equal(uint8(31)))
		Expect(zero).To(BeFalse())
		Expect(comp.Value.Value()).To(Equal(uint64(31)))
	})

	It("should wrap upward from the maximum value", func() {
		wrapping := MakeBuilder().
			WithEngine(engine).
			WithClock(clock).
			WithInitialValue(31).
			Build("Wrapping")
		wrapping.Enable.Set(true)
		clock.Advance(1)

		Expect(engine.Run()).To(Succeed())

		value, zero := wrapping.Read()
		Expect(value).To(Equal(uint8(0)))
		Expect(zero).To(BeTrue())
		Expect(wrapping.Zero.Level()).To(BeTrue())
	})

	It("should hold when disabled", func() {
		comp.Enable.Set(true)
		clock.Advance(2)
		Expect(engine.Run()).To(Succeed())

		comp.Enable.Set(false)
		comp.Direction.Set(true)
		clock.Advance(5)
		Expect(engine.Run()).To(Succeed())

		value, _ := comp.Read()
		Expect(value).To(Equal(uint8(2)))
	})

	It("should report each step through hooks", func() {
		hook := &stepRecorderHook{}
		comp.AcceptHook(hook)

		comp.Enable.Set(true)
		clock.Advance(2)

		Expect(engine.Run()).To(Succeed())

		Expect(hook.steps).To(HaveLen(2))
		Expect(hook.steps[0]).To(Equal(StepInfo{
			Cycle:  1,
			Enable: true,
			Before: 0,
			After:  1,
		}))
		Expect(hook.steps[1]).To(Equal(StepInfo{
			Cycle:  2,
			Enable: true,
			Before: 1,
			After:  2,
		}))
	})
})
