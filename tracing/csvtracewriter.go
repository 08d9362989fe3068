package tracing

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter is a tracer that dumps the signal trace into a CSV file.
type CSVWriter struct {
	sync.Mutex

	path       string
	rowsToAdd  []string
	file       *os.File
	bufferSize int
}

// NewCSVWriter creates a CSVWriter that writes to the file at path, with
// ".csv" appended. If path is empty, a unique name is generated.
func NewCSVWriter(path string) *CSVWriter {
	if path == "" {
		path = "lutra_trace_" + xid.New().String()
	}

	w := &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}

	return w
}

// Init creates the file to dump the trace into.
func (w *CSVWriter) Init() {
	filename := w.path + ".csv"
	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file,
		"ID, Kind, Component, Cycle, Value, Clear, Enable, Direction, Before, After\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// RecordTransition adds one signal transition to the trace.
func (w *CSVWriter) RecordTransition(t Transition) {
	w.Lock()
	defer w.Unlock()

	row := fmt.Sprintf("%s, transition, %s, %d, %d, , , , , ",
		t.ID, t.Signal, t.Cycle, t.Value)
	w.rowsToAdd = append(w.rowsToAdd, row)

	if len(w.rowsToAdd) >= w.bufferSize {
		w.flushLocked()
	}
}

// RecordStep adds one counter step to the trace.
func (w *CSVWriter) RecordStep(s Step) {
	w.Lock()
	defer w.Unlock()

	row := fmt.Sprintf("%s, step, %s, %d, , %d, %d, %d, %d, %d",
		s.ID, s.Component, s.Cycle,
		boolToInt(s.Clear), boolToInt(s.Enable), boolToInt(s.Direction),
		s.Before, s.After)
	w.rowsToAdd = append(w.rowsToAdd, row)

	if len(w.rowsToAdd) >= w.bufferSize {
		w.flushLocked()
	}
}

// Flush writes all the buffered rows into the file.
func (w *CSVWriter) Flush() {
	w.Lock()
	defer w.Unlock()

	w.flushLocked()
}

func (w *CSVWriter) flushLocked() {
	for _, row := range w.rowsToAdd {
		fmt.Fprintf(w.file, "%s\n", row)
	}

	w.rowsToAdd = nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
