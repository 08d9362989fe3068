package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sarchlab/lutra/datarecording"
	"github.com/sarchlab/lutra/synthesis"
	"github.com/sarchlab/lutra/verilog"
	"github.com/spf13/cobra"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Run the full synthesis flow.",
	Long: "`synth` generates the counter RTL, the cell library, and the " +
		"Yosys script, runs the synthesis, and verifies the mapped netlist.",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		top, _ := cmd.Flags().GetString("top")
		yosys, _ := cmd.Flags().GetString("yosys")
		record, _ := cmd.Flags().GetString("record")

		b := synthesis.MakeFlowBuilder().
			WithDir(dir).
			WithTopModule(top).
			WithRunner(synthesis.Runner{Binary: yosys})

		if record != "" {
			recorder := datarecording.New(record)
			defer recorder.Close()

			b = b.WithDataRecorder(recorder)
		}

		flow := b.Build()

		census, err := flow.Run(context.Background())
		if errors.Is(err, synthesis.ErrYosysNotFound) {
			log.Fatalf("Yosys is not installed. The flow inputs were still " +
				"generated, so the synthesis can run elsewhere.")
		}
		if err != nil {
			log.Fatalf("Error running synthesis flow: %v", err)
		}

		fmt.Printf("Mapped netlist uses %d c1 cells, %d c2 cells, and %d "+
			"flip-flops\n",
			census.C1Cells, census.C2Cells, census.FlipFlops())
		if !census.Clean() {
			fmt.Printf("%d generic LUTs were left unmapped\n",
				census.GenericLUTs)
		}
	},
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().String("dir", ".",
		"directory the flow reads and writes its files in")
	synthCmd.Flags().String("top", verilog.CounterModuleName,
		"top module to synthesize")
	synthCmd.Flags().String("yosys", "",
		"Yosys binary to run, LUTRA_YOSYS or the PATH when omitted")
	synthCmd.Flags().String("record", "",
		"record the netlist census into this database")
}
