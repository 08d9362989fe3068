// Package cmd provides the command-line interface for Lutra.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "lutra",
	Short: "Lutra CLI tool can simulate the 5-bit counter and drive the " +
		"custom LUT synthesis flow.",
	Long: `Lutra CLI tool can simulate the 5-bit counter and drive the ` +
		`custom LUT synthesis flow. It generates the counter RTL, the ` +
		`custom cell library, and the Yosys script, runs the synthesis, ` +
		`and classifies the lookup tables of the mapped netlist.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// Settings such as LUTRA_YOSYS can live in a .env file in the working
	// directory.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
