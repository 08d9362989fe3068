package stimulus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lutra/logic/counter"
	"github.com/sarchlab/lutra/sim"
)

type badEvent struct {
	sim.EventBase
}

var _ = Describe("Comp", func() {
	var (
		engine *sim.SerialEngine
		clock  *sim.Clock
		cnt    *counter.Comp
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		clock = sim.NewClock("Clock", engine, 1)
		cnt = counter.MakeBuilder().
			WithEngine(engine).
			WithClock(clock).
			Build("Counter")
	})

	play := func(p *Program) {
		driver := MakeBuilder().
			WithEngine(engine).
			WithProgram(p).
			WithClearWire(cnt.Clear).
			WithEnableWire(cnt.Enable).
			WithDirectionWire(cnt.Direction).
			Build("Driver")

		driver.Play()
		clock.Advance(p.LastCycle())

		Expect(engine.Run()).To(Succeed())
	}

	It("should panic on foreign events", func() {
		driver := MakeBuilder().
			WithEngine(engine).
			WithProgram(&Program{}).
			Build("Driver")

		Expect(func() { _ = driver.Handle(badEvent{}) }).To(Panic())
	})

	It("should put vectors on the wires before the sampling edge", func() {
		play(&Program{
			Name: "count",
			Vectors: []Vector{
				{Cycle: 1, Enable: true},
			},
		})

		value, zero := cnt.Read()
		Expect(value).To(Equal(uint8(1)))
		Expect(zero).To(BeFalse())
	})

	It("should replay a full counter exercise", func() {
		play(&Program{
			Name: "exercise",
			Vectors: []Vector{
				{Cycle: 1, Enable: true},
				{Cycle: 4, Clear: true, Enable: true},
				{Cycle: 5, Enable: true, Direction: true},
			},
		})

		// Edges 1 to 3 count to 3, edge 4 clears, edge 5 counts down.
		value, zero := cnt.Read()
		Expect(value).To(Equal(uint8(31)))
		Expect(zero).To(BeFalse())
		Expect(clock.EdgeCount()).To(Equal(uint64(5)))
	})

	It("should keep the wires settled between vectors", func() {
		play(&Program{
			Name: "hold",
			Vectors: []Vector{
				{Cycle: 1, Enable: true},
				{Cycle: 3, Enable: false},
				{Cycle: 6, Enable: true},
			},
		})

		// Edges 1 and 2 count, edges 3 to 5 hold, edge 6 counts again.
		value, _ := cnt.Read()
		Expect(value).To(Equal(uint8(3)))
	})
})
