package verilog

import (
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/sarchlab/lutra/lut"
)

// A ShiftLUT is a lookup table that `write_verilog -noexpr` expresses as a
// constant shifted right by the concatenated select signals, such as
// `assign y = 32'hcafecafe >> {a, b, c, d, e};`.
type ShiftLUT struct {
	// Raw is the matched source text.
	Raw string

	// Target is the signal on the left of the assignment.
	Target string

	// Inputs is the number of select bits feeding the shift.
	Inputs int

	// Width is the declared width of the shifted constant.
	Width int

	// Mask holds the table contents, masked to Width bits.
	Mask lut.TruthTable
}

var shiftLUTPattern = regexp.MustCompile(
	`assign\s+([\w'\[\]]+)\s*=\s*(\d+)'([bdh]?)([0-9a-fA-FxX_]+)\s*>>\s*(?:\{([^}]+)\}|([^;]+));`)

// ParseShiftLUTs extracts the shift-style lookup tables from netlist source.
// Assignments whose constant cannot be parsed are skipped.
func ParseShiftLUTs(src string) []ShiftLUT {
	matches := shiftLUTPattern.FindAllStringSubmatch(src, -1)

	luts := make([]ShiftLUT, 0, len(matches))
	for _, m := range matches {
		l, ok := parseShiftLUTMatch(m)
		if !ok {
			continue
		}
		luts = append(luts, l)
	}

	return luts
}

func parseShiftLUTMatch(m []string) (ShiftLUT, bool) {
	width, err := strconv.Atoi(m[2])
	if err != nil || width > lut.TableBits {
		return ShiftLUT{}, false
	}

	base := 10
	switch m[3] {
	case "h":
		base = 16
	case "b":
		base = 2
	}

	digits := strings.ReplaceAll(m[4], "_", "")
	if i := strings.LastIndexAny(digits, "xX"); i >= 0 {
		digits = digits[i+1:]
	}

	value, err := parseDigits(digits, base)
	if err != nil {
		return ShiftLUT{}, false
	}

	if width > 0 {
		value = value.MaskTo(width)
	} else {
		value = lut.TruthTable{}
	}

	return ShiftLUT{
		Raw:    m[0],
		Target: m[1],
		Inputs: countSelectBits(m[5], m[6], width),
		Width:  width,
		Mask:   value,
	}, true
}

// countSelectBits counts how many bits index the table. Signals contribute
// one bit each and bus slices contribute one bit per lane, braced or not.
// When no select is present the count falls back to the number of address
// bits the constant width implies.
func countSelectBits(braced, single string, width int) int {
	k := 0

	switch {
	case braced != "":
		for _, sig := range strings.Split(braced, ",") {
			k += len(expandSignal(strings.TrimSpace(sig)))
		}
	case strings.TrimSpace(single) != "":
		k = len(expandSignal(strings.TrimSpace(single)))
	}

	if k == 0 && width > 0 {
		k = bits.Len(uint(width - 1))
	}

	return k
}
