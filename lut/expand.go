package lut

// ExpandWith lifts a small LUT mask to an 8-input table, binding logical
// input i of the mask to physical pin assignment[i]. Pins that are not
// assigned do not affect the output.
func ExpandWith(mask TruthTable, assignment []int) TruthTable {
	var t TruthTable

	for addr := 0; addr < TableBits; addr++ {
		index := 0
		for i, pin := range assignment {
			bit := (addr >> pin) & 1
			index |= bit << i
		}

		t.SetBit(addr, mask.Bit(index))
	}

	return t
}

// Expand lifts a k-input LUT mask to the set of 8-input tables over all
// ordered assignments of the k logical inputs to the physical pins.
func Expand(mask TruthTable, k int) []TruthTable {
	arrangements := Arrangements(k)

	tables := make([]TruthTable, 0, len(arrangements))
	for _, a := range arrangements {
		tables = append(tables, ExpandWith(mask, a))
	}

	return tables
}
