package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sarchlab/lutra/verilog"
	"github.com/spf13/cobra"
)

var rtlCmd = &cobra.Command{
	Use:   "rtl",
	Short: "Write the counter Verilog module.",
	Long: "`rtl` writes the synthesizable counter module, to stdout or to " +
		"the file given with --output.",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		top, _ := cmd.Flags().GetString("top")

		if output == "" {
			err := verilog.WriteCounterModule(os.Stdout, top)
			if err != nil {
				log.Fatalf("Error writing counter module: %v", err)
			}

			return
		}

		err := verilog.GenerateCounterFile(output, top)
		if err != nil {
			log.Fatalf("Error writing counter module: %v", err)
		}

		fmt.Printf("Counter module written to %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(rtlCmd)

	rtlCmd.Flags().String("output", "",
		"file to write, stdout when omitted")
	rtlCmd.Flags().String("top", verilog.CounterModuleName,
		"name of the generated module")
}
