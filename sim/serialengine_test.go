package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)
		evt4 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInCycle(4)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler1).AnyTimes()
		evt1.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInCycle(2)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler2).AnyTimes()
		evt2.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInCycle(3)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler1).AnyTimes()
		evt3.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt4.EXPECT().Time().Return(VTimeInCycle(5)).AnyTimes()
		evt4.EXPECT().Handler().Return(handler1).AnyTimes()
		evt4.EXPECT().IsSecondary().Return(false).AnyTimes()
		handleEvt2 := handler2.EXPECT().Handle(evt2).Do(func(e Event) {
			engine.Schedule(evt3)
			engine.Schedule(evt4)
		})
		handleEvt3 := handler1.EXPECT().
			Handle(evt3).Do(func(e Event) {}).After(handleEvt2)
		handleEvt1 := handler1.EXPECT().
			Handle(evt1).Do(func(e Event) {}).After(handleEvt3)
		handler1.EXPECT().
			Handle(evt4).Do(func(e Event) {}).After(handleEvt1)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		_ = engine.Run()
	})

	It("should consider secondary events", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		handler3 := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInCycle(2)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler1).AnyTimes()
		evt1.EXPECT().IsSecondary().Return(true).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInCycle(2)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler2).AnyTimes()
		evt2.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInCycle(2)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler3).AnyTimes()
		evt3.EXPECT().IsSecondary().Return(false).AnyTimes()

		handleEvt2 := handler2.EXPECT().Handle(evt2)
		handleEvt3 := handler3.EXPECT().Handle(evt3)
		handler1.EXPECT().
			Handle(evt1).Do(func(e Event) {}).
			After(handleEvt2).
			After(handleEvt3)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		_ = engine.Run()
	})

	It("should run same-cycle events in scheduling order", func() {
		handler := NewMockHandler(mockCtrl)
		events := make([]*MockEvent, 4)

		for i := range events {
			evt := NewMockEvent(mockCtrl)
			evt.EXPECT().Time().Return(VTimeInCycle(7)).AnyTimes()
			evt.EXPECT().Handler().Return(handler).AnyTimes()
			evt.EXPECT().IsSecondary().Return(false).AnyTimes()
			events[i] = evt
		}

		var prev *gomock.Call
		for _, evt := range events {
			call := handler.EXPECT().Handle(evt)
			if prev != nil {
				call.After(prev)
			}
			prev = call
		}

		for _, evt := range events {
			engine.Schedule(evt)
		}

		_ = engine.Run()
	})

	It("should advance the current cycle to the event cycle", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)

		evt.EXPECT().Time().Return(VTimeInCycle(12)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()
		evt.EXPECT().IsSecondary().Return(false).AnyTimes()
		handler.EXPECT().Handle(evt).Do(func(e Event) {
			Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(12)))
		})

		engine.Schedule(evt)

		_ = engine.Run()

		Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(12)))
	})

	It("should call simulation end handlers on Finished", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)

		evt.EXPECT().Time().Return(VTimeInCycle(8)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()
		evt.EXPECT().IsSecondary().Return(false).AnyTimes()
		handler.EXPECT().Handle(evt)

		endRecorder := &simulationEndRecorder{}
		engine.RegisterSimulationEndHandler(endRecorder)

		engine.Schedule(evt)
		_ = engine.Run()
		engine.Finished()

		Expect(endRecorder.calledAt).To(Equal([]VTimeInCycle{8}))
	})
})

type simulationEndRecorder struct {
	calledAt []VTimeInCycle
}

func (r *simulationEndRecorder) Handle(now VTimeInCycle) {
	r.calledAt = append(r.calledAt, now)
}
