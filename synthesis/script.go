// Package synthesis orchestrates the Yosys flow that maps the counter RTL
// onto the custom c1 and c2 LUT cells. It generates the synthesis script,
// invokes Yosys, and verifies the cell mix of the mapped netlist.
package synthesis

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Script configures one Yosys synthesis run. All file names are resolved
// relative to the directory Yosys runs in.
type Script struct {
	// VerilogFile is the RTL input.
	VerilogFile string

	// TopModule is the module to synthesize.
	TopModule string

	// LibertyFile is the cell library used for technology mapping.
	LibertyFile string

	// OutputFile receives the mapped netlist.
	OutputFile string
}

//go:embed scriptTemplate.txt
var scriptTemplate string

// WriteScript writes the Yosys script for cfg. The script runs generic
// synthesis with 8-input LUT mapping, maps onto the liberty library, and
// writes the netlist without expressions so lookup tables stay explicit.
func WriteScript(w io.Writer, cfg Script) error {
	content := scriptTemplate
	content = strings.ReplaceAll(content, "{{verilogFile}}", cfg.VerilogFile)
	content = strings.ReplaceAll(content, "{{topModule}}", cfg.TopModule)
	content = strings.ReplaceAll(content, "{{libertyFile}}", cfg.LibertyFile)
	content = strings.ReplaceAll(content, "{{outputFile}}", cfg.OutputFile)

	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("%v", err)
	}

	return nil
}

// GenerateScriptFile materialises the script at path.
func GenerateScriptFile(path string, cfg Script) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	defer file.Close()

	return WriteScript(file, cfg)
}
