package synthesis

import (
	"regexp"

	"github.com/sarchlab/lutra/liberty"
)

// A Census counts the cell kinds of a mapped netlist.
type Census struct {
	C1Cells     int
	C2Cells     int
	DFFs        int
	DFFREs      int
	GenericLUTs int
}

// LUTCells returns the number of custom LUT cells.
func (c Census) LUTCells() int {
	return c.C1Cells + c.C2Cells
}

// FlipFlops returns the number of sequential cells.
func (c Census) FlipFlops() int {
	return c.DFFs + c.DFFREs
}

// Clean reports whether technology mapping covered all combinational
// logic, leaving no generic $lut cells behind.
func (c Census) Clean() bool {
	return c.GenericLUTs == 0
}

var (
	c1CellPattern     = regexp.MustCompile(liberty.C1CellPrefix + `\d+`)
	c2CellPattern     = regexp.MustCompile(liberty.C2CellPrefix + `\d+`)
	dffPattern        = regexp.MustCompile(`\\DFF\b`)
	dffrePattern      = regexp.MustCompile(`\\DFFRE\b`)
	genericLUTPattern = regexp.MustCompile(`\\\$lut\b`)
)

// Verify counts the custom cells of a mapped netlist.
func Verify(netlist string) Census {
	return Census{
		C1Cells:     len(c1CellPattern.FindAllString(netlist, -1)),
		C2Cells:     len(c2CellPattern.FindAllString(netlist, -1)),
		DFFs:        len(dffPattern.FindAllString(netlist, -1)),
		DFFREs:      len(dffrePattern.FindAllString(netlist, -1)),
		GenericLUTs: len(genericLUTPattern.FindAllString(netlist, -1)),
	}
}
