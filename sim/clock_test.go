package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type edgeCounterHook struct {
	edges []VTimeInCycle
}

func (h *edgeCounterHook) Func(ctx HookCtx) {
	if ctx.Pos != HookPosClockEdge {
		return
	}

	evt := ctx.Item.(Event)
	h.edges = append(h.edges, evt.Time())
}

var _ = Describe("Clock", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
		clock    *Clock
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
		clock = NewClock("Clock", engine, 1)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic on a zero period", func() {
		Expect(func() { NewClock("BadClock", engine, 0) }).To(Panic())
	})

	It("should sample all devices before committing any", func() {
		d1 := NewMockClocked(mockCtrl)
		d2 := NewMockClocked(mockCtrl)

		sample1 := d1.EXPECT().Sample()
		sample2 := d2.EXPECT().Sample().After(sample1)
		commit1 := d1.EXPECT().Commit().After(sample2)
		d2.EXPECT().Commit().After(commit1)

		clock.RegisterClocked(d1)
		clock.RegisterClocked(d2)
		clock.Advance(1)

		_ = engine.Run()
	})

	It("should fire one edge per period", func() {
		d := NewMockClocked(mockCtrl)
		d.EXPECT().Sample().Times(4)
		d.EXPECT().Commit().Times(4)

		clock.RegisterClocked(d)
		clock.Advance(4)

		_ = engine.Run()

		Expect(clock.EdgeCount()).To(Equal(uint64(4)))
		Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(4)))
	})

	It("should space edges by the period", func() {
		slowClock := NewClock("SlowClock", engine, 3)
		hook := &edgeCounterHook{}
		slowClock.AcceptHook(hook)

		slowClock.Advance(2)

		_ = engine.Run()

		Expect(hook.edges).To(Equal([]VTimeInCycle{3, 6}))
	})

	It("should apply same-cycle stimulus before the edge", func() {
		stimulusApplied := false

		stimulusHandler := NewMockHandler(mockCtrl)
		stimulus := NewMockEvent(mockCtrl)
		stimulus.EXPECT().Time().Return(VTimeInCycle(1)).AnyTimes()
		stimulus.EXPECT().Handler().Return(stimulusHandler).AnyTimes()
		stimulus.EXPECT().IsSecondary().Return(false).AnyTimes()
		stimulusHandler.EXPECT().Handle(stimulus).Do(func(e Event) {
			stimulusApplied = true
		})

		d := NewMockClocked(mockCtrl)
		d.EXPECT().Sample().Do(func() {
			Expect(stimulusApplied).To(BeTrue())
		})
		d.EXPECT().Commit()

		clock.RegisterClocked(d)
		clock.Advance(1)
		engine.Schedule(stimulus)

		_ = engine.Run()
	})

	It("should extend a run without stacking edges", func() {
		d := NewMockClocked(mockCtrl)
		d.EXPECT().Sample().Times(3)
		d.EXPECT().Commit().Times(3)

		clock.RegisterClocked(d)
		clock.Advance(1)
		clock.Advance(2)

		_ = engine.Run()

		Expect(clock.EdgeCount()).To(Equal(uint64(3)))
		Expect(engine.CurrentTime()).To(Equal(VTimeInCycle(3)))
	})
})
