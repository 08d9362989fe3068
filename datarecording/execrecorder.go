package datarecording

import (
	"os"
	"strings"
	"time"
)

// An execInfo row is one property of the recorded run.
type execInfo struct {
	Property string
	Value    string
}

// An ExecRecorder stores metadata about one run of the program, such as when
// it started, the command line, and when it ended.
type ExecRecorder struct {
	tablename string
	recorder  DataRecorder
	entries   []execInfo
}

// NewExecRecorder creates an ExecRecorder that stores its rows through the
// given DataRecorder.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	e := &ExecRecorder{
		tablename: "exec_info",
		recorder:  recorder,
	}

	recorder.CreateTable(e.tablename, execInfo{})

	return e
}

// Start collects the start time, the command line, and the working directory.
func (e *ExecRecorder) Start() {
	startTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	e.entries = append(e.entries, execInfo{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	e.entries = append(e.entries, execInfo{"Command", cmd})

	cwd, err := os.Getwd()
	if err == nil {
		e.entries = append(e.entries, execInfo{"Working Directory", cwd})
	}
}

// AddProperty records an extra property of the run.
func (e *ExecRecorder) AddProperty(property, value string) {
	e.entries = append(e.entries, execInfo{property, value})
}

// End writes all collected rows along with the program end time.
func (e *ExecRecorder) End() {
	for _, entry := range e.entries {
		e.recorder.InsertData(e.tablename, entry)
	}

	endTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	e.recorder.InsertData(e.tablename, execInfo{"End Time", endTime})

	e.entries = nil

	e.recorder.Flush()
}
