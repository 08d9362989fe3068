// Package verilog emits the counter RTL and parses the netlists that Yosys
// synthesis produces, including the shift-style LUTs of write_verilog
// -noexpr output and generic $lut cell instances.
package verilog

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/sarchlab/lutra/lut"
)

// A Constant is a parsed Verilog constant such as 16'hb44b or 32'd5.
type Constant struct {
	// Width is the declared width in bits. Zero means the constant was
	// unsized.
	Width int

	// Value holds the constant bits, LSB first. Bits at or above Width are
	// always zero for sized constants.
	Value lut.TruthTable
}

// Uint64 returns the low 64 bits of the constant.
func (c Constant) Uint64() uint64 {
	return c.Value[0]
}

// ParseConstant parses a sized or unsized Verilog constant of up to 256
// bits.
func ParseConstant(s string) (Constant, error) {
	s = strings.TrimSpace(s)

	if !strings.Contains(s, "'") {
		value, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Constant{}, fmt.Errorf("invalid constant %q: %w", s, err)
		}

		return Constant{Value: lut.TruthTable{value}}, nil
	}

	parts := strings.SplitN(s, "'", 2)

	width := 0
	if parts[0] != "" {
		parsed, err := strconv.Atoi(parts[0])
		if err != nil {
			return Constant{}, fmt.Errorf("invalid constant width in %q: %w", s, err)
		}
		width = parsed
	}

	if width > lut.TableBits {
		return Constant{}, fmt.Errorf("constant %q is wider than %d bits", s, lut.TableBits)
	}

	if parts[1] == "" {
		return Constant{}, fmt.Errorf("constant %q has no digits", s)
	}

	baseChar := parts[1][0]
	digits := strings.ReplaceAll(parts[1][1:], "_", "")

	base := 10
	switch baseChar {
	case 'h', 'H':
		base = 16
	case 'b', 'B':
		base = 2
	case 'd', 'D':
		base = 10
	default:
		// No base character, the whole suffix is decimal digits.
		digits = strings.ReplaceAll(parts[1], "_", "")
	}

	// Yosys occasionally emits x digits. Only the bits after the last one
	// are meaningful.
	if i := strings.LastIndexAny(digits, "xX"); i >= 0 {
		digits = digits[i+1:]
	}

	value, err := parseDigits(digits, base)
	if err != nil {
		return Constant{}, fmt.Errorf("invalid constant %q: %w", s, err)
	}

	if width > 0 {
		value = value.MaskTo(width)
	}

	return Constant{Width: width, Value: value}, nil
}

func parseDigits(digits string, base int) (lut.TruthTable, error) {
	switch base {
	case 16:
		return lut.FromHex(digits)
	case 2:
		return parseBinaryDigits(digits)
	default:
		return parseDecimalDigits(digits)
	}
}

func parseBinaryDigits(digits string) (lut.TruthTable, error) {
	if digits == "" {
		return lut.TruthTable{}, fmt.Errorf("empty binary string")
	}

	if len(digits) > lut.TableBits {
		return lut.TruthTable{},
			fmt.Errorf("binary string %q is longer than %d bits",
				digits, lut.TableBits)
	}

	var t lut.TruthTable
	for i := 0; i < len(digits); i++ {
		switch digits[len(digits)-1-i] {
		case '1':
			t.SetBit(i, 1)
		case '0':
		default:
			return lut.TruthTable{},
				fmt.Errorf("invalid binary digit %q", digits[len(digits)-1-i])
		}
	}

	return t, nil
}

func parseDecimalDigits(digits string) (lut.TruthTable, error) {
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return lut.TruthTable{}, fmt.Errorf("invalid decimal digits %q", digits)
	}

	if value.BitLen() > lut.TableBits {
		return lut.TruthTable{},
			fmt.Errorf("decimal constant %q is wider than %d bits",
				digits, lut.TableBits)
	}

	var t lut.TruthTable
	for i := 0; i < value.BitLen(); i++ {
		t.SetBit(i, uint64(value.Bit(i)))
	}

	return t, nil
}
