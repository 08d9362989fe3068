package cmd

import (
	"fmt"
	"log"

	"github.com/sarchlab/lutra/synthesis"
	"github.com/sarchlab/lutra/verilog"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Write the Yosys synthesis script.",
	Long: "`script` writes the Yosys script that synthesizes the counter " +
		"onto the custom cells.",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		verilogFile, _ := cmd.Flags().GetString("verilog")
		top, _ := cmd.Flags().GetString("top")
		libertyFile, _ := cmd.Flags().GetString("liberty")
		netlist, _ := cmd.Flags().GetString("netlist")

		cfg := synthesis.Script{
			VerilogFile: verilogFile,
			TopModule:   top,
			LibertyFile: libertyFile,
			OutputFile:  netlist,
		}

		err := synthesis.GenerateScriptFile(output, cfg)
		if err != nil {
			log.Fatalf("Error writing synthesis script: %v", err)
		}

		fmt.Printf("Synthesis script written to %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().String("output", synthesis.ScriptFileName,
		"file to write the script to")
	scriptCmd.Flags().String("verilog", synthesis.RTLFileName,
		"RTL file the script reads")
	scriptCmd.Flags().String("top", verilog.CounterModuleName,
		"top module to synthesize")
	scriptCmd.Flags().String("liberty", synthesis.LibertyFileName,
		"cell library the script maps onto")
	scriptCmd.Flags().String("netlist", synthesis.NetlistFileName,
		"netlist file the script writes")
}
