package synthesis

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// A Runner invokes Yosys on a synthesis script.
type Runner struct {
	// Binary is the Yosys executable. When empty, the LUTRA_YOSYS
	// environment variable is consulted, and then "yosys" on the PATH.
	Binary string

	// Dir is the working directory of the run. Empty means the current
	// directory.
	Dir string
}

// execCommandContext is wrapped for testability.
var execCommandContext = exec.CommandContext

func (r Runner) binary() string {
	if r.Binary != "" {
		return r.Binary
	}

	if env := os.Getenv("LUTRA_YOSYS"); env != "" {
		return env
	}

	return "yosys"
}

// Available reports whether the Yosys binary can be found.
func (r Runner) Available() bool {
	_, err := exec.LookPath(r.binary())
	return err == nil
}

// Run executes the script and returns the combined Yosys output. Mapping
// against the full LUT library can take minutes, so the context can be
// used to bound the run.
func (r Runner) Run(ctx context.Context, scriptPath string) (string, error) {
	cmd := execCommandContext(ctx, r.binary(), "-s", scriptPath)
	cmd.Dir = r.Dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("yosys failed: %v", err)
	}

	return string(output), nil
}
