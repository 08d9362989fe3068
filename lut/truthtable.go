// Package lut provides the truth table mathematics of the custom c1 and c2
// LUT cells. It computes the base truth tables of the cells, the closure of
// a base table under input pin permutations, and the expansion of smaller
// LUT masks onto the 8 physical input pins for cell matching.
package lut

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// NumInputs is the number of physical input pins of a LUT cell.
const NumInputs = 8

// TableBits is the number of entries in the truth table of a LUT cell.
const TableBits = 1 << NumInputs

// A TruthTable is the 256-entry truth table of an 8-input boolean function.
// Entry i holds the function output for input address i. The type is
// comparable, so tables can serve as map keys.
type TruthTable [4]uint64

// Bit returns entry i of the table.
func (t TruthTable) Bit(i int) uint64 {
	return (t[i/64] >> (i % 64)) & 1
}

// SetBit sets entry i of the table to the lowest bit of v.
func (t *TruthTable) SetBit(i int, v uint64) {
	if v&1 == 1 {
		t[i/64] |= 1 << (i % 64)
	} else {
		t[i/64] &^= 1 << (i % 64)
	}
}

// OnesCount returns the number of 1 entries in the table.
func (t TruthTable) OnesCount() int {
	return bits.OnesCount64(t[0]) + bits.OnesCount64(t[1]) +
		bits.OnesCount64(t[2]) + bits.OnesCount64(t[3])
}

// Hex returns the table as 64 hex digits, most significant first. This is
// the format of the lut attribute in liberty cell descriptions.
func (t TruthTable) Hex() string {
	return fmt.Sprintf("%016x%016x%016x%016x", t[3], t[2], t[1], t[0])
}

// FromHex parses a table from up to 64 hex digits, with or without a 0x
// prefix.
func FromHex(s string) (TruthTable, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")

	if s == "" {
		return TruthTable{}, errors.New("empty hex string")
	}

	if len(s) > 64 {
		return TruthTable{},
			fmt.Errorf("hex string %q is longer than 256 bits", s)
	}

	var t TruthTable
	for i := 0; i < 4; i++ {
		end := len(s) - 16*i
		if end <= 0 {
			break
		}

		start := end - 16
		if start < 0 {
			start = 0
		}

		word, err := strconv.ParseUint(s[start:end], 16, 64)
		if err != nil {
			return TruthTable{}, fmt.Errorf("invalid hex string %q: %w", s, err)
		}

		t[i] = word
	}

	return t, nil
}

// Less reports whether t is numerically smaller than other, comparing the
// tables as 256-bit integers.
func (t TruthTable) Less(other TruthTable) bool {
	for i := 3; i >= 0; i-- {
		if t[i] != other[i] {
			return t[i] < other[i]
		}
	}

	return false
}

// AllOnes returns the table of the constant-1 function. The zero value of
// TruthTable is the table of the constant-0 function.
func AllOnes() TruthTable {
	return TruthTable{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

// MaskTo clears every entry at position n or above, keeping only the low n
// entries.
func (t TruthTable) MaskTo(n int) TruthTable {
	if n >= TableBits {
		return t
	}

	var masked TruthTable
	for i := 0; i < 4; i++ {
		low := n - 64*i
		if low <= 0 {
			break
		}

		if low >= 64 {
			masked[i] = t[i]
			continue
		}

		masked[i] = t[i] & (1<<low - 1)
	}

	return masked
}
