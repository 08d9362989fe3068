package verilog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// CounterModuleName is the default top-level module name of the generated
// counter RTL.
const CounterModuleName = "Counter_5bit"

//go:embed counterTemplate.txt
var counterTemplate string

// WriteCounterModule writes the 5-bit up/down counter RTL to w, naming the
// top-level module moduleName.
func WriteCounterModule(w io.Writer, moduleName string) error {
	if moduleName == "" {
		moduleName = CounterModuleName
	}

	content := strings.ReplaceAll(counterTemplate, "{{moduleName}}", moduleName)

	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("%v", err)
	}

	return nil
}

// GenerateCounterFile materialises the counter RTL at path.
func GenerateCounterFile(path, moduleName string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%v", err)
	}
	defer file.Close()

	return WriteCounterModule(file, moduleName)
}
