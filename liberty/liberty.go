// Package liberty renders the custom LUT cell library that technology
// mapping consumes. Every reachable c1 and c2 configuration becomes one
// library cell, joined by the flip-flop cells that sequential mapping
// needs.
package liberty

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/lutra/lut"
)

// LibraryName is the default name of the generated liberty library.
const LibraryName = "custom_luts"

// C1CellPrefix and C2CellPrefix name the generated LUT cells. The index of
// the configuration in sorted order is appended.
const (
	C1CellPrefix = "lut_c1_"
	C2CellPrefix = "lut_c2_"
)

// A Cell is one LUT cell of the library.
type Cell struct {
	// Name is the liberty cell name.
	Name string

	// Table is the 8-input truth table the cell realizes.
	Table lut.TruthTable
}

//go:embed headerTemplate.txt
var headerTemplate string

//go:embed lutCellTemplate.txt
var lutCellTemplate string

//go:embed ffCellsTemplate.txt
var ffCellsTemplate string

// Cells names every configuration in the set, appending the sorted index
// of each table to the prefix. The same set always yields the same cells.
func Cells(prefix string, configs lut.ConfigSet) []Cell {
	tables := configs.Sorted()

	cells := make([]Cell, 0, len(tables))
	for i, table := range tables {
		cells = append(cells, Cell{
			Name:  fmt.Sprintf("%s%d", prefix, i),
			Table: table,
		})
	}

	return cells
}

// WriteLibrary writes a liberty library named libName holding the given
// LUT cells plus the DFF and DFFRE flip-flop cells. An empty libName falls
// back to LibraryName.
func WriteLibrary(w io.Writer, libName string, cells []Cell) error {
	if libName == "" {
		libName = LibraryName
	}

	header := strings.ReplaceAll(headerTemplate, "{{libraryName}}", libName)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("%v", err)
	}

	for _, cell := range cells {
		text := strings.ReplaceAll(lutCellTemplate, "{{cellName}}", cell.Name)
		text = strings.ReplaceAll(text, "{{lutHex}}", cell.Table.Hex())

		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("%v", err)
		}
	}

	if _, err := io.WriteString(w, ffCellsTemplate); err != nil {
		return fmt.Errorf("%v", err)
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("%v", err)
	}

	return nil
}

// GenerateLibraryFile materialises the library at path, creating the
// parent directory when needed. The full c1 and c2 libraries run to tens
// of thousands of cells, so the file is written through a large buffer.
func GenerateLibraryFile(path, libName string, cells []Cell) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%v", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	defer file.Close()

	buffered := bufio.NewWriterSize(file, 1<<20)
	if err := WriteLibrary(buffered, libName, cells); err != nil {
		return err
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("%v", err)
	}

	return nil
}
