package synthesis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/lutra/datarecording"
	"github.com/sarchlab/lutra/liberty"
	"github.com/sarchlab/lutra/lut"
	"github.com/sarchlab/lutra/verilog"
)

// ErrYosysNotFound reports that the Yosys binary is not installed. The
// flow still generates the RTL, library, and script before returning it,
// so the run can be repeated by hand.
var ErrYosysNotFound = errors.New("yosys binary not found")

// Default file names of the flow artifacts, relative to the flow
// directory.
const (
	RTLFileName     = "counter5.v"
	LibertyFileName = "custom_liberty/custom_luts.lib"
	ScriptFileName  = "custom_synth.ys"
	NetlistFileName = "mapped_design.v"
)

// A Flow runs the full custom-LUT synthesis: counter RTL emission, cell
// library and script generation, Yosys invocation, and verification of the
// mapped netlist.
type Flow struct {
	dir       string
	topModule string
	runner    Runner
	recorder  datarecording.DataRecorder
	c1        lut.ConfigSet
	c2        lut.ConfigSet
}

// FlowBuilder builds flows.
type FlowBuilder struct {
	dir       string
	topModule string
	runner    Runner
	recorder  datarecording.DataRecorder
	c1        lut.ConfigSet
	c2        lut.ConfigSet
}

// MakeFlowBuilder returns a builder with default parameters.
func MakeFlowBuilder() FlowBuilder {
	return FlowBuilder{
		dir:       ".",
		topModule: verilog.CounterModuleName,
	}
}

// WithDir sets the directory the flow artifacts are written to.
func (b FlowBuilder) WithDir(dir string) FlowBuilder {
	b.dir = dir
	return b
}

// WithTopModule sets the name of the synthesized top-level module.
func (b FlowBuilder) WithTopModule(name string) FlowBuilder {
	b.topModule = name
	return b
}

// WithRunner sets the Yosys runner.
func (b FlowBuilder) WithRunner(r Runner) FlowBuilder {
	b.runner = r
	return b
}

// WithDataRecorder sets the recorder the cell census is written to.
func (b FlowBuilder) WithDataRecorder(
	r datarecording.DataRecorder,
) FlowBuilder {
	b.recorder = r
	return b
}

// WithConfigSets sets precomputed c1 and c2 configuration sets. Without
// them, the flow computes the closures itself.
func (b FlowBuilder) WithConfigSets(c1, c2 lut.ConfigSet) FlowBuilder {
	b.c1 = c1
	b.c2 = c2
	return b
}

// Build creates the flow.
func (b FlowBuilder) Build() *Flow {
	b.parametersMustBeValid()

	f := &Flow{
		dir:       b.dir,
		topModule: b.topModule,
		runner:    b.runner,
		recorder:  b.recorder,
		c1:        b.c1,
		c2:        b.c2,
	}

	if f.runner.Dir == "" {
		f.runner.Dir = f.dir
	}

	if f.recorder != nil {
		f.recorder.CreateTable("synthesis_census", Census{})
	}

	return f
}

func (b FlowBuilder) parametersMustBeValid() {
	if b.dir == "" {
		log.Panic("flow directory must not be empty")
	}

	if b.topModule == "" {
		log.Panic("top module name must not be empty")
	}

	if (b.c1 == nil) != (b.c2 == nil) {
		log.Panic("c1 and c2 configuration sets must be given together")
	}
}

// Run executes the flow and returns the cell census of the mapped netlist.
// When Yosys is not installed, the generated artifacts are left in place
// and ErrYosysNotFound is returned.
func (f *Flow) Run(ctx context.Context) (Census, error) {
	if err := f.generateArtifacts(); err != nil {
		return Census{}, err
	}

	if !f.runner.Available() {
		return Census{}, ErrYosysNotFound
	}

	output, err := f.runner.Run(ctx, ScriptFileName)
	logYosysDiagnostics(output)
	if err != nil {
		return Census{}, err
	}

	netlist, err := os.ReadFile(filepath.Join(f.dir, NetlistFileName))
	if err != nil {
		return Census{}, fmt.Errorf("mapped netlist not created: %v", err)
	}

	census := Verify(string(netlist))
	f.reportCensus(census)

	return census, nil
}

// GenerateArtifacts writes the RTL, the liberty library, and the synthesis
// script without invoking Yosys.
func (f *Flow) GenerateArtifacts() error {
	return f.generateArtifacts()
}

func (f *Flow) generateArtifacts() error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("%v", err)
	}

	rtlPath := filepath.Join(f.dir, RTLFileName)
	if err := verilog.GenerateCounterFile(rtlPath, f.topModule); err != nil {
		return err
	}

	c1, c2 := f.configSets()
	cells := append(
		liberty.Cells(liberty.C1CellPrefix, c1),
		liberty.Cells(liberty.C2CellPrefix, c2)...)

	libPath := filepath.Join(f.dir, filepath.FromSlash(LibertyFileName))
	if err := liberty.GenerateLibraryFile(libPath, "", cells); err != nil {
		return err
	}

	scriptPath := filepath.Join(f.dir, ScriptFileName)
	return GenerateScriptFile(scriptPath, Script{
		VerilogFile: RTLFileName,
		TopModule:   f.topModule,
		LibertyFile: LibertyFileName,
		OutputFile:  NetlistFileName,
	})
}

func (f *Flow) configSets() (c1, c2 lut.ConfigSet) {
	if f.c1 != nil {
		return f.c1, f.c2
	}

	log.Printf("generating c1 configurations")
	f.c1 = lut.Configurations(lut.C1TruthTable())
	log.Printf("generated %d c1 configurations", f.c1.Size())

	log.Printf("generating c2 configurations")
	f.c2 = lut.Configurations(lut.C2TruthTable())
	log.Printf("generated %d c2 configurations", f.c2.Size())

	return f.c1, f.c2
}

func (f *Flow) reportCensus(census Census) {
	log.Printf("custom LUTs: %d (c1 %d, c2 %d), flip-flops: %d",
		census.LUTCells(), census.C1Cells, census.C2Cells,
		census.FlipFlops())

	if !census.Clean() {
		log.Printf("warning: %d generic LUTs remain unmapped",
			census.GenericLUTs)
	}

	if f.recorder != nil {
		f.recorder.InsertData("synthesis_census", census)
	}
}

func logYosysDiagnostics(output string) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Warning") ||
			strings.Contains(line, "ERROR") {
			log.Printf("yosys: %s", line)
		}
	}
}
