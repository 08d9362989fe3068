package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sarchlab/lutra/verilog"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite small LUT cells into explicit gates.",
	Long: "`rewrite [netlist]` replaces 1-input and 2-input $lut cells " +
		"with constant drivers, buffers, inverters, or c1 instances.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Error: netlist path argument is required")
			os.Exit(1)
		}
		netlistPath := args[0]

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = netlistPath
		}

		data, err := os.ReadFile(netlistPath)
		if err != nil {
			log.Fatalf("Error reading netlist: %v", err)
		}

		rewritten, count := verilog.RewriteSmallLUTs(string(data))

		err = os.WriteFile(output, []byte(rewritten), 0644)
		if err != nil {
			log.Fatalf("Error writing netlist: %v", err)
		}

		fmt.Printf("Rewrote %d small LUT cells into %s\n", count, output)
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().String("output", "",
		"file to write, rewriting in place when omitted")
}
