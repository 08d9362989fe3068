package verilog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sarchlab/lutra/lut"
)

// A CellInstance is one generic $lut cell instantiation in a synthesized
// netlist.
type CellInstance struct {
	// Raw is the matched instantiation text, kept verbatim so the instance
	// can be replaced in place.
	Raw string

	// Name is the instance name.
	Name string

	// Width is the number of LUT inputs, taken from the WIDTH parameter.
	Width int

	// Mask holds the LUT parameter, masked to the 1<<Width table entries.
	Mask lut.TruthTable

	// Inputs lists the input signals, most significant select first.
	Inputs []string

	// Output is the signal the cell drives.
	Output string
}

var cellPattern = regexp.MustCompile(
	`\\?\$lut\s*#\s*\(\s*\.LUT\(([^)]+)\)\s*,\s*\.WIDTH\(([^)]+)\)\s*\)\s*` +
		`([\w$]+)\s*\(\s*\.A\(([^)]+)\)\s*,\s*\.Y\(([^)]+)\)\s*\);`)

var busSlicePattern = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// ParseCells extracts the $lut cell instances from a synthesized netlist.
// Instances whose parameters cannot be parsed are skipped.
func ParseCells(src string) []CellInstance {
	matches := cellPattern.FindAllStringSubmatch(src, -1)

	cells := make([]CellInstance, 0, len(matches))
	for _, m := range matches {
		cell, err := parseCellMatch(m)
		if err != nil {
			continue
		}
		cells = append(cells, cell)
	}

	return cells
}

func parseCellMatch(m []string) (CellInstance, error) {
	mask, err := ParseConstant(m[1])
	if err != nil {
		return CellInstance{}, err
	}

	widthConst, err := ParseConstant(m[2])
	if err != nil {
		return CellInstance{}, err
	}
	width := int(widthConst.Uint64())

	value := mask.Value
	if width >= 0 && width <= lut.NumInputs {
		value = value.MaskTo(1 << width)
	}

	return CellInstance{
		Raw:    m[0],
		Name:   m[3],
		Width:  width,
		Mask:   value,
		Inputs: parseSignalList(m[4]),
		Output: strings.TrimSpace(m[5]),
	}, nil
}

// parseSignalList splits a port connection into individual signal bits,
// expanding concatenations and bus slices.
func parseSignalList(raw string) []string {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		parts := strings.Split(raw[1:len(raw)-1], ",")

		signals := make([]string, 0, len(parts))
		for _, p := range parts {
			signals = append(signals, expandSignal(strings.TrimSpace(p))...)
		}

		return signals
	}

	return expandSignal(raw)
}

// expandSignal expands a bus slice such as value[3:1] into individual bits
// in declared order, so the most significant select comes first. Signals
// without a slice are returned as they are.
func expandSignal(sig string) []string {
	m := busSlicePattern.FindStringSubmatch(sig)
	if m == nil {
		return []string{sig}
	}

	base := sig[:strings.Index(sig, "[")]
	hi, _ := strconv.Atoi(m[1])
	lo, _ := strconv.Atoi(m[2])

	count := hi - lo
	if count < 0 {
		count = -count
	}

	signals := make([]string, 0, count+1)
	if hi >= lo {
		for i := hi; i >= lo; i-- {
			signals = append(signals, fmt.Sprintf("%s[%d]", base, i))
		}
	} else {
		for i := hi; i <= lo; i++ {
			signals = append(signals, fmt.Sprintf("%s[%d]", base, i))
		}
	}

	return signals
}
