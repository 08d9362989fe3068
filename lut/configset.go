package lut

import "sort"

// A ConfigSet holds every truth table that a LUT cell can realize by
// permuting its input pins.
type ConfigSet map[TruthTable]struct{}

// Configurations computes the closure of a base table under all input pin
// permutations.
func Configurations(base TruthTable) ConfigSet {
	set := make(ConfigSet)

	inv := make([]int, NumInputs)
	forEachPermutation(NumInputs, func(p []int) {
		for i, v := range p {
			inv[v] = i
		}

		var perm TruthTable
		for newAddr := 0; newAddr < TableBits; newAddr++ {
			oldAddr := 0
			for j := 0; j < NumInputs; j++ {
				bit := (newAddr >> inv[j]) & 1
				oldAddr |= bit << j
			}

			perm.SetBit(newAddr, base.Bit(oldAddr))
		}

		set[perm] = struct{}{}
	})

	return set
}

// Contains returns true when the table is one of the configurations.
func (s ConfigSet) Contains(t TruthTable) bool {
	_, ok := s[t]
	return ok
}

// Size returns the number of distinct configurations.
func (s ConfigSet) Size() int {
	return len(s)
}

// Sorted returns the configurations in ascending numeric order, so that
// consumers enumerate them deterministically.
func (s ConfigSet) Sorted() []TruthTable {
	tables := make([]TruthTable, 0, len(s))
	for t := range s {
		tables = append(tables, t)
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Less(tables[j])
	})

	return tables
}
