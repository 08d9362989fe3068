package tracing

import (
	"github.com/sarchlab/lutra/datarecording"
)

// DBTracer stores the signal trace with a data recorder, so that the trace
// can be queried after the simulation completes.
type DBTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer that writes to the given data recorder.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		recorder: recorder,
	}

	recorder.CreateTable("signal_transitions", Transition{})
	recorder.CreateTable("counter_steps", Step{})

	return t
}

// RecordTransition adds one signal transition to the trace.
func (t *DBTracer) RecordTransition(trans Transition) {
	t.recorder.InsertData("signal_transitions", trans)
}

// RecordStep adds one counter step to the trace.
func (t *DBTracer) RecordStep(s Step) {
	t.recorder.InsertData("counter_steps", s)
}
