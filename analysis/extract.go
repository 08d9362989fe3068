package analysis

import (
	"github.com/sarchlab/lutra/lut"
	"github.com/sarchlab/lutra/verilog"
)

// A LUT is one lookup table extracted from a netlist.
type LUT struct {
	// Name identifies the LUT in the netlist, the driven signal for
	// shift tables and the instance name for $lut cells.
	Name string

	// Width is the number of select inputs.
	Width int

	// Mask holds the table contents.
	Mask lut.TruthTable
}

// ExtractLUTs gathers every lookup table of a netlist, covering both the
// shift-assign form of expression output and the generic $lut cell form.
func ExtractLUTs(src string) []LUT {
	shiftLUTs := verilog.ParseShiftLUTs(src)
	cells := verilog.ParseCells(src)

	luts := make([]LUT, 0, len(shiftLUTs)+len(cells))
	for _, s := range shiftLUTs {
		luts = append(luts, LUT{
			Name:  s.Target,
			Width: s.Inputs,
			Mask:  s.Mask,
		})
	}

	for _, c := range cells {
		luts = append(luts, LUT{
			Name:  c.Name,
			Width: c.Width,
			Mask:  c.Mask,
		})
	}

	return luts
}
