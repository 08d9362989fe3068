package sim

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHandler struct {
	lock    sync.Mutex
	cycles  []VTimeInCycle
	markers []string
}

func (h *recordingHandler) record(cycle VTimeInCycle, marker string) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.cycles = append(h.cycles, cycle)
	h.markers = append(h.markers, marker)
}

type markedEvent struct {
	EventBase

	marker string
}

type markerHandler struct {
	recorder *recordingHandler
}

func (h *markerHandler) Handle(e Event) error {
	evt := e.(markedEvent)
	h.recorder.record(evt.Time(), evt.marker)
	return nil
}

var _ = Describe("Parallel Engine", func() {
	var (
		engine   *ParallelEngine
		recorder *recordingHandler
		handler  *markerHandler
	)

	BeforeEach(func() {
		engine = NewParallelEngine()
		recorder = &recordingHandler{}
		handler = &markerHandler{recorder: recorder}
	})

	makeEvent := func(cycle VTimeInCycle, marker string, secondary bool) markedEvent {
		evt := markedEvent{marker: marker}
		evt.EventBase = *NewEventBase(cycle, handler)
		evt.secondary = secondary
		return evt
	}

	It("should run events in cycle order", func() {
		engine.Schedule(makeEvent(4, "a", false))
		engine.Schedule(makeEvent(1, "b", false))
		engine.Schedule(makeEvent(3, "c", false))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(recorder.cycles).To(Equal([]VTimeInCycle{1, 3, 4}))
		Expect(recorder.markers).To(Equal([]string{"b", "c", "a"}))
		Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(4)))
	})

	It("should run same-cycle secondary events after primary events", func() {
		engine.Schedule(makeEvent(2, "secondary", true))
		engine.Schedule(makeEvent(2, "primary1", false))
		engine.Schedule(makeEvent(2, "primary2", false))

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(recorder.markers).To(HaveLen(3))
		Expect(recorder.markers[2]).To(Equal("secondary"))
		Expect(recorder.markers[0:2]).To(
			ConsistOf("primary1", "primary2"))
	})

	It("should drive clocked devices", func() {
		clock := NewClock("Clock", engine, 1)
		device := &splitCounterDevice{}
		clock.RegisterClocked(device)
		clock.Advance(8)

		err := engine.Run()

		Expect(err).ToNot(HaveOccurred())
		Expect(device.count).To(Equal(8))
		Expect(clock.EdgeCount()).To(Equal(uint64(8)))
	})
})

type splitCounterDevice struct {
	staged int
	count  int
}

func (d *splitCounterDevice) Name() string {
	return "Device"
}

func (d *splitCounterDevice) Sample() {
	d.staged = d.count + 1
}

func (d *splitCounterDevice) Commit() {
	d.count = d.staged
}
