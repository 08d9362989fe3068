package verilog

import (
	"fmt"
	"strings"
)

const c1ModuleDef = `
module c1(input A0, A1, SA, B0, B1, SB, S0, S1, output f);
    wire f1, f2, s2;
    assign f1 = (SA) ? A1 : A0;
    assign f2 = (SB) ? B1 : B0;
    assign s2 = !(S0 | S1);
    assign f = (s2) ? f2 : f1;
endmodule
`

// RewriteSmallLUTs replaces one-input $lut cells with plain assigns and
// two-input $lut cells with c1 instances that compute the same function. It
// returns the rewritten netlist and the number of instances replaced. The
// c1 module definition is appended when at least one cell was mapped to it.
func RewriteSmallLUTs(src string) (string, int) {
	cells := ParseCells(src)

	rewritten := src
	replaced := 0
	needC1 := false

	for _, cell := range cells {
		replacement, usesC1, ok := smallLUTReplacement(cell)
		if !ok {
			continue
		}

		rewritten = strings.Replace(rewritten, cell.Raw, replacement, 1)
		replaced++
		needC1 = needC1 || usesC1
	}

	if needC1 {
		rewritten += c1ModuleDef
	}

	return rewritten, replaced
}

func smallLUTReplacement(cell CellInstance) (string, bool, bool) {
	switch cell.Width {
	case 1:
		s, ok := lut1Replacement(cell)
		return s, false, ok
	case 2:
		s, ok := lut2Replacement(cell)
		return s, ok, ok
	}

	return "", false, false
}

// lut1Replacement turns a one-input LUT into a buffer, an inverter, or a
// constant driver.
func lut1Replacement(cell CellInstance) (string, bool) {
	if len(cell.Inputs) != 1 {
		return "", false
	}

	b0 := cell.Mask.Bit(0)
	b1 := cell.Mask.Bit(1)

	switch {
	case b0 == 0 && b1 == 1:
		return fmt.Sprintf("assign %s = %s;", cell.Output, cell.Inputs[0]), true
	case b0 == 1 && b1 == 0:
		return fmt.Sprintf("assign %s = ~%s;", cell.Output, cell.Inputs[0]), true
	case b0 == 0 && b1 == 0:
		return fmt.Sprintf("assign %s = 1'b0;", cell.Output), true
	default:
		return fmt.Sprintf("assign %s = 1'b1;", cell.Output), true
	}
}

// lut2Replacement maps a two-input LUT onto a c1 cell. With the select
// inputs a and b, a most significant, table entry ab indexes the mask, so
// the a select steers between the low and high table halves and b picks
// within a half.
func lut2Replacement(cell CellInstance) (string, bool) {
	if len(cell.Inputs) != 2 {
		return "", false
	}

	b1 := cell.Mask.Bit(0)
	b2 := cell.Mask.Bit(1)
	b3 := cell.Mask.Bit(2)
	b4 := cell.Mask.Bit(3)

	a := cell.Inputs[0]
	b := cell.Inputs[1]

	inst := fmt.Sprintf(
		"c1 %s (.A0(1'b%d), .A1(1'b%d), .SA(%s), "+
			".B0(1'b%d), .B1(1'b%d), .SB(%s), "+
			".S0(%s), .S1(%s), .f(%s) );",
		cell.Name, b3, b4, b, b1, b2, b, a, a, cell.Output)

	return inst, true
}
