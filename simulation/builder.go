package simulation

import (
	"github.com/rs/xid"
	"github.com/sarchlab/lutra/datarecording"
	"github.com/sarchlab/lutra/monitoring"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	parallelEngine bool
	monitorOn      bool
	monitorPort    int
	browserOn      bool
	clockPeriod    sim.VTimeInCycle
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		parallelEngine: false,
		monitorOn:      true,
		clockPeriod:    1,
	}
}

// WithParallelEngine sets the simulation to use a parallel engine.
func (b Builder) WithParallelEngine() Builder {
	b.parallelEngine = true
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser makes the monitor open the dashboard in the default browser
// when the simulation starts.
func (b Builder) WithBrowser() Builder {
	b.browserOn = true
	return b
}

// WithClockPeriod sets the number of engine cycles between two rising edges
// of the simulation clock.
func (b Builder) WithClockPeriod(period sim.VTimeInCycle) Builder {
	b.clockPeriod = period
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.browserOn {
		panic("browser cannot be opened when monitoring is disabled")
	}

	if b.clockPeriod == 0 {
		panic("clock period must be at least 1 cycle")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		compNameIndex: make(map[string]int),
		wireNameIndex: make(map[string]int),
		busNameIndex:  make(map[string]int),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "lutra_sim_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)

	s.execRecorder = datarecording.NewExecRecorder(s.dataRecorder)
	s.execRecorder.Start()
	s.execRecorder.AddProperty("Simulation ID", s.id)

	s.engine = sim.NewSerialEngine()
	if b.parallelEngine {
		s.engine = sim.NewParallelEngine()
	}

	s.clock = sim.NewClock("Clock", s.engine, b.clockPeriod)

	s.tracer = tracing.NewDBTracer(s.dataRecorder)

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		if b.browserOn {
			s.monitor.WithBrowser()
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterClock(s.clock)
		s.monitor.StartServer()
	}

	return s
}
