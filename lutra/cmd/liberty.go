package cmd

import (
	"fmt"
	"log"

	"github.com/sarchlab/lutra/liberty"
	"github.com/sarchlab/lutra/lut"
	"github.com/sarchlab/lutra/synthesis"
	"github.com/spf13/cobra"
)

var libertyCmd = &cobra.Command{
	Use:   "liberty",
	Short: "Write the custom LUT cell library.",
	Long: "`liberty` computes the c1 and c2 cell function sets and writes " +
		"the Liberty file that synthesis maps onto.",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		log.Printf("Computing the c1 cell configurations")
		c1 := lut.Configurations(lut.C1TruthTable())
		log.Printf("Computing the c2 cell configurations")
		c2 := lut.Configurations(lut.C2TruthTable())

		cells := liberty.Cells(liberty.C1CellPrefix, c1)
		cells = append(cells, liberty.Cells(liberty.C2CellPrefix, c2)...)

		err := liberty.GenerateLibraryFile(output, liberty.LibraryName, cells)
		if err != nil {
			log.Fatalf("Error writing cell library: %v", err)
		}

		fmt.Printf("Cell library with %d cells written to %s\n",
			len(cells), output)
	},
}

func init() {
	rootCmd.AddCommand(libertyCmd)

	libertyCmd.Flags().String("output", synthesis.LibertyFileName,
		"file to write the cell library to")
}
