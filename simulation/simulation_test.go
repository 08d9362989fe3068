package simulation

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/lutra/logic/counter"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"
)

type fakeComp struct {
	*sim.ComponentBase
}

func newFakeComp(name string) *fakeComp {
	return &fakeComp{
		ComponentBase: sim.NewComponentBase(name),
	}
}

var _ = Describe("Simulation", func() {
	var simulation *Simulation

	BeforeEach(func() {
		simulation = MakeBuilder().WithoutMonitoring().Build()
	})

	AfterEach(func() {
		simulation.Terminate()

		os.Remove("lutra_sim_" + simulation.ID() + ".sqlite3")
	})

	It("should have an engine and a clock", func() {
		Expect(simulation.ID()).ToNot(BeEmpty())
		Expect(simulation.GetEngine()).ToNot(BeNil())
		Expect(simulation.GetClock()).ToNot(BeNil())
		Expect(simulation.GetClock().Period()).To(Equal(sim.VTimeInCycle(1)))
		Expect(simulation.GetDataRecorder()).ToNot(BeNil())
		Expect(simulation.GetTracer()).ToNot(BeNil())
		Expect(simulation.GetMonitor()).To(BeNil())
	})

	It("should register a component", func() {
		comp := newFakeComp("Comp")

		simulation.RegisterComponent(comp)

		Expect(simulation.GetComponentByName("Comp")).To(
			BeIdenticalTo(comp))
		Expect(simulation.Components()).To(HaveLen(1))
	})

	It("should refuse duplicated component names", func() {
		simulation.RegisterComponent(newFakeComp("Comp"))

		Expect(func() {
			simulation.RegisterComponent(newFakeComp("Comp"))
		}).To(Panic())
	})

	It("should return nil for unknown names", func() {
		Expect(simulation.GetComponentByName("NoSuchComp")).To(BeNil())
		Expect(simulation.GetWireByName("NoSuchWire")).To(BeNil())
		Expect(simulation.GetBusByName("NoSuchBus")).To(BeNil())
	})

	It("should register wires and buses", func() {
		wire := wiring.NewWire("W")
		bus := wiring.NewBus("B", 5)

		simulation.RegisterWire(wire)
		simulation.RegisterBus(bus)

		Expect(simulation.GetWireByName("W")).To(BeIdenticalTo(wire))
		Expect(simulation.GetBusByName("B")).To(BeIdenticalTo(bus))
	})

	It("should refuse duplicated wire names", func() {
		simulation.RegisterWire(wiring.NewWire("W"))

		Expect(func() {
			simulation.RegisterWire(wiring.NewWire("W"))
		}).To(Panic())
	})

	It("should run a registered counter", func() {
		c := counter.MakeBuilder().
			WithEngine(simulation.GetEngine()).
			WithClock(simulation.GetClock()).
			Build("Counter")
		simulation.RegisterComponent(c)
		simulation.RegisterWire(c.Enable)
		simulation.RegisterBus(c.Value)

		c.Enable.Set(true)
		simulation.GetClock().Advance(3)

		err := simulation.GetEngine().Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(c.Value.Value()).To(Equal(uint64(3)))
	})

	Context("Builder", func() {
		var customSim *Simulation

		AfterEach(func() {
			if customSim != nil {
				customSim.Terminate()
				os.Remove("test_custom_output.sqlite3")
				customSim = nil
			}
		})

		It("should allow custom output file to be set", func() {
			customSim = MakeBuilder().
				WithoutMonitoring().
				WithOutputFileName("test_custom_output").
				Build()

			Expect(customSim).ToNot(BeNil())
			Expect(customSim.GetDataRecorder()).ToNot(BeNil())
		})

		It("should set the clock period", func() {
			customSim = MakeBuilder().
				WithoutMonitoring().
				WithClockPeriod(2).
				WithOutputFileName("test_custom_output").
				Build()

			Expect(customSim.GetClock().Period()).To(
				Equal(sim.VTimeInCycle(2)))
		})

		It("should build with the parallel engine", func() {
			customSim = MakeBuilder().
				WithoutMonitoring().
				WithParallelEngine().
				WithOutputFileName("test_custom_output").
				Build()

			_, ok := customSim.GetEngine().(*sim.ParallelEngine)

			Expect(ok).To(BeTrue())
		})

		It("should refuse a monitor port without monitoring", func() {
			Expect(func() {
				MakeBuilder().WithoutMonitoring().WithMonitorPort(8080).Build()
			}).To(Panic())
		})

		It("should refuse a zero clock period", func() {
			Expect(func() {
				MakeBuilder().WithoutMonitoring().WithClockPeriod(0).Build()
			}).To(Panic())
		})
	})
})
