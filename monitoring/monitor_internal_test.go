package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/wiring"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sampleComponent struct {
	*sim.ComponentBase
}

func newSampleComponent(name string) *sampleComponent {
	return &sampleComponent{
		ComponentBase: sim.NewComponentBase(name),
	}
}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine sim.Engine
	)

	BeforeEach(func() {
		m = NewMonitor()
		engine = sim.NewSerialEngine()
		m.RegisterEngine(engine)
	})

	It("should register components", func() {
		c := newSampleComponent("Comp")

		m.RegisterComponent(c)

		Expect(m.components).To(HaveLen(1))
	})

	It("should register signals and clocks", func() {
		m.RegisterWire(wiring.NewWire("W"))
		m.RegisterBus(wiring.NewBus("B", 5))
		m.RegisterClock(sim.NewClock("Clock", engine, 1))

		Expect(m.wires).To(HaveLen(1))
		Expect(m.buses).To(HaveLen(1))
		Expect(m.clocks).To(HaveLen(1))
	})

	It("should report the current cycle", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/now", nil)

		m.now(w, r)

		Expect(w.Body.String()).To(Equal(`{"now":0}`))
	})

	It("should list component names", func() {
		m.RegisterComponent(newSampleComponent("CompA"))
		m.RegisterComponent(newSampleComponent("CompB"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/list_components", nil)

		m.listComponents(w, r)

		Expect(w.Body.String()).To(Equal(`["CompA","CompB"]`))
	})

	It("should report signal levels", func() {
		wire := wiring.NewWire("Counter.Enable")
		wire.Set(true)
		bus := wiring.NewBus("Counter.Value", 5)
		bus.Set(13)
		m.RegisterWire(wire)
		m.RegisterBus(bus)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/signals", nil)

		m.listSignals(w, r)

		var signals []signalRsp
		err := json.Unmarshal(w.Body.Bytes(), &signals)

		Expect(err).ToNot(HaveOccurred())
		Expect(signals).To(HaveLen(2))
		Expect(signals[0].Signal).To(Equal("Counter.Enable"))
		Expect(signals[0].Kind).To(Equal("wire"))
		Expect(signals[0].Value).To(Equal(uint64(1)))
		Expect(signals[1].Signal).To(Equal("Counter.Value"))
		Expect(signals[1].Width).To(Equal(5))
		Expect(signals[1].Value).To(Equal(uint64(13)))
	})

	It("should schedule clock edges on request", func() {
		clock := sim.NewClock("Clock", engine, 1)
		m.RegisterClock(clock)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/edge/Clock?n=3", nil)
		r = mux.SetURLVars(r, map[string]string{"clock": "Clock"})

		m.edge(w, r)

		Expect(w.Code).To(Equal(200))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(clock.EdgeCount()).To(Equal(uint64(3)))
	})

	It("should return 404 for an unknown clock", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/edge/NoSuchClock", nil)
		r = mux.SetURLVars(r, map[string]string{"clock": "NoSuchClock"})

		m.edge(w, r)

		Expect(w.Code).To(Equal(404))
	})

	It("should return 404 for an unknown component", func() {
		w := httptest.NewRecorder()

		c := m.findComponentOr404(w, "NoSuchComp")

		Expect(c).To(BeNil())
		Expect(w.Code).To(Equal(404))
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("matching", 10)

		bar.IncrementFinished(10)

		Expect(m.progressBars).To(HaveLen(1))
		Expect(bar.Completed()).To(BeTrue())

		m.CompleteProgressBar(bar)

		Expect(m.progressBars).To(BeEmpty())
	})
})
