package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sarchlab/lutra/logic/counter"
	"github.com/sarchlab/lutra/logic/stimulus"
	"github.com/sarchlab/lutra/sim"
	"github.com/sarchlab/lutra/simulation"
	"github.com/sarchlab/lutra/tracing"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the counter with a stimulus program.",
	Long: "`run --stimulus [file]` plays a YAML or Starlark stimulus " +
		"program against the counter and records the resulting signal " +
		"activity.",
	Run: func(cmd *cobra.Command, args []string) {
		stimulusPath, _ := cmd.Flags().GetString("stimulus")
		cycles, _ := cmd.Flags().GetUint64("cycles")
		initial, _ := cmd.Flags().GetUint8("initial")
		output, _ := cmd.Flags().GetString("output")
		csvPath, _ := cmd.Flags().GetString("csv")
		period, _ := cmd.Flags().GetUint64("period")
		parallel, _ := cmd.Flags().GetBool("parallel")
		noMonitor, _ := cmd.Flags().GetBool("no-monitor")
		monitorPort, _ := cmd.Flags().GetInt("monitor-port")
		browser, _ := cmd.Flags().GetBool("browser")
		logEvents, _ := cmd.Flags().GetBool("log-events")

		program := loadStimulusProgram(stimulusPath)

		b := simulation.MakeBuilder().
			WithClockPeriod(sim.VTimeInCycle(period))
		if parallel {
			b = b.WithParallelEngine()
		}
		if noMonitor {
			b = b.WithoutMonitoring()
		}
		if monitorPort > 0 {
			b = b.WithMonitorPort(monitorPort)
		}
		if browser {
			b = b.WithBrowser()
		}
		if output != "" {
			b = b.WithOutputFileName(output)
		}

		s := b.Build()
		defer s.Terminate()

		if logEvents {
			logger := log.New(os.Stderr, "", 0)
			s.GetEngine().AcceptHook(sim.NewEventLogger(logger))
		}

		c := counter.MakeBuilder().
			WithEngine(s.GetEngine()).
			WithClock(s.GetClock()).
			WithInitialValue(initial).
			Build("Counter")
		s.RegisterComponent(c)
		s.RegisterWire(c.Clear)
		s.RegisterWire(c.Enable)
		s.RegisterWire(c.Direction)
		s.RegisterWire(c.Zero)
		s.RegisterBus(c.Value)

		driver := stimulus.MakeBuilder().
			WithEngine(s.GetEngine()).
			WithProgram(program).
			WithClearWire(c.Clear).
			WithEnableWire(c.Enable).
			WithDirectionWire(c.Direction).
			Build("Stimulus")
		s.RegisterComponent(driver)

		if csvPath != "" {
			csv := tracing.NewCSVWriter(csvPath)
			csv.Init()
			tracing.CollectSteps(c, csv)
			defer csv.Flush()
		}

		edges := cycles
		if edges == 0 {
			edges = program.LastCycle() + 1
		}

		driver.Play()
		s.GetClock().Advance(edges)

		err := s.GetEngine().Run()
		if err != nil {
			log.Fatalf("Error running simulation: %v", err)
		}

		value, zero := c.Read()
		fmt.Printf("Ran %d edges, final value %d, zero flag %t\n",
			s.GetClock().EdgeCount(), value, zero)
	},
}

// loadStimulusProgram loads the program at path, treating .star files as
// Starlark scripts and everything else as YAML. Without a path, the counter
// counts up freely.
func loadStimulusProgram(path string) *stimulus.Program {
	if path == "" {
		return &stimulus.Program{
			Name:    "free-run",
			Vectors: []stimulus.Vector{{Cycle: 0, Enable: true}},
		}
	}

	load := stimulus.LoadProgram
	if filepath.Ext(path) == ".star" {
		load = stimulus.LoadStarlarkProgram
	}

	program, err := load(path)
	if err != nil {
		log.Fatalf("Error loading stimulus program: %v", err)
	}

	return program
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("stimulus", "",
		"YAML or Starlark (.star) stimulus program to play, "+
			"counting up freely when omitted")
	runCmd.Flags().Uint64("cycles", 0,
		"number of rising edges to run, one past the last vector when 0")
	runCmd.Flags().Uint8("initial", 0,
		"register value before the first edge")
	runCmd.Flags().String("output", "",
		"base name of the recorded database")
	runCmd.Flags().String("csv", "",
		"also dump the counter steps into this CSV file")
	runCmd.Flags().Uint64("period", 1,
		"number of engine cycles between rising edges")
	runCmd.Flags().Bool("parallel", false,
		"run the simulation on the parallel engine")
	runCmd.Flags().Bool("no-monitor", false,
		"disable the monitoring web server")
	runCmd.Flags().Int("monitor-port", 0,
		"port for the monitoring web server")
	runCmd.Flags().Bool("browser", false,
		"open the monitor dashboard in the default browser")
	runCmd.Flags().Bool("log-events", false,
		"log every event to stderr as it is handled")
}
