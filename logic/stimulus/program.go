// Package stimulus drives input wires from a scripted program of test
// vectors. Programs are plain YAML files or Starlark scripts so that
// harnesses can be edited without recompiling.
package stimulus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Vector is the input state to apply at one cycle. The wires keep the
// applied levels until a later vector changes them.
type Vector struct {
	Cycle     uint64 `yaml:"cycle"`
	Clear     bool   `yaml:"clear"`
	Enable    bool   `yaml:"enable"`
	Direction bool   `yaml:"direction"`
}

// A Program is an ordered list of vectors.
type Program struct {
	Name    string   `yaml:"name"`
	Vectors []Vector `yaml:"vectors"`
}

// ParseProgram parses a YAML stimulus program.
func ParseProgram(data []byte) (*Program, error) {
	p := new(Program)

	err := yaml.Unmarshal(data, p)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stimulus program: %w", err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// LoadProgram reads and parses a YAML stimulus program file.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stimulus program: %w", err)
	}

	return ParseProgram(data)
}

// Validate checks that the vector cycles are non-decreasing.
func (p *Program) Validate() error {
	for i := 1; i < len(p.Vectors); i++ {
		if p.Vectors[i].Cycle < p.Vectors[i-1].Cycle {
			return fmt.Errorf(
				"stimulus program %s: vector %d at cycle %d is earlier than its predecessor at cycle %d",
				p.Name, i, p.Vectors[i].Cycle, p.Vectors[i-1].Cycle)
		}
	}

	return nil
}

// LastCycle returns the cycle of the final vector, or 0 for an empty program.
func (p *Program) LastCycle() uint64 {
	if len(p.Vectors) == 0 {
		return 0
	}

	return p.Vectors[len(p.Vectors)-1].Cycle
}
