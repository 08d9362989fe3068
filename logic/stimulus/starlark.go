package stimulus

import (
	"fmt"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Starlark scripts generate stimulus programs that are too repetitive to
// write as plain YAML, such as long ramps or sweeps. A script runs with a
// predeclared vector(cycle, clear, enable, direction) function and must
// leave a module-level list called vectors behind:
//
//	vectors = [vector(i, enable = True) for i in range(32)]
//	vectors.append(vector(32, clear = True))
//
// An optional module-level name string names the program.
const vectorsGlobal = "vectors"

// ParseStarlarkProgram evaluates Starlark source text and collects the
// program it builds. The filename only labels error messages.
func ParseStarlarkProgram(filename, src string) (*Program, error) {
	thread := starlark.Thread{Name: "stimulus"}
	opts := syntax.FileOptions{}

	predeclared := starlark.StringDict{
		"vector": starlark.NewBuiltin("vector", makeVector),
	}

	globals, err := starlark.ExecFileOptions(
		&opts, &thread, filename, src, predeclared)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate stimulus script: %w", err)
	}

	p, err := programFromGlobals(globals)
	if err != nil {
		return nil, fmt.Errorf("stimulus script %s: %w", filename, err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// LoadStarlarkProgram reads and evaluates a Starlark stimulus script file.
func LoadStarlarkProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stimulus script: %w", err)
	}

	return ParseStarlarkProgram(path, string(data))
}

// makeVector is the predeclared vector builtin. It packs its arguments into
// the dict shape that programFromGlobals consumes.
func makeVector(
	_ *starlark.Thread,
	b *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var cycle int64
	var clear, enable, direction bool

	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"cycle", &cycle,
		"clear?", &clear,
		"enable?", &enable,
		"direction?", &direction)
	if err != nil {
		return nil, err
	}

	if cycle < 0 {
		return nil, fmt.Errorf("%s: cycle must not be negative, got %d",
			b.Name(), cycle)
	}

	d := starlark.NewDict(4)
	_ = d.SetKey(starlark.String("cycle"), starlark.MakeInt64(cycle))
	_ = d.SetKey(starlark.String("clear"), starlark.Bool(clear))
	_ = d.SetKey(starlark.String("enable"), starlark.Bool(enable))
	_ = d.SetKey(starlark.String("direction"), starlark.Bool(direction))

	return d, nil
}

func programFromGlobals(globals starlark.StringDict) (*Program, error) {
	p := new(Program)

	if nameValue, ok := globals["name"]; ok {
		name, ok := nameValue.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("name must be a string, got %s",
				nameValue.Type())
		}
		p.Name = string(name)
	}

	vectorsValue, ok := globals[vectorsGlobal]
	if !ok {
		return nil, fmt.Errorf("script defines no %s list", vectorsGlobal)
	}

	list, ok := vectorsValue.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("%s must be a list, got %s",
			vectorsGlobal, vectorsValue.Type())
	}

	p.Vectors = make([]Vector, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		v, err := vectorFromValue(list.Index(i))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", vectorsGlobal, i, err)
		}

		p.Vectors = append(p.Vectors, v)
	}

	return p, nil
}

func vectorFromValue(value starlark.Value) (Vector, error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return Vector{}, fmt.Errorf("vector must be a dict, got %s",
			value.Type())
	}

	var v Vector

	cycle, err := dictUintEntry(dict, "cycle")
	if err != nil {
		return Vector{}, err
	}
	v.Cycle = cycle

	for key, field := range map[string]*bool{
		"clear":     &v.Clear,
		"enable":    &v.Enable,
		"direction": &v.Direction,
	} {
		b, err := dictBoolEntry(dict, key)
		if err != nil {
			return Vector{}, err
		}
		*field = b
	}

	return v, nil
}

func dictUintEntry(dict *starlark.Dict, key string) (uint64, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("vector has no %s entry", key)
	}

	i, ok := value.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%s must be an int, got %s", key, value.Type())
	}

	u, ok := i.Uint64()
	if !ok {
		return 0, fmt.Errorf("%s value %s does not fit an unsigned cycle",
			key, i.String())
	}

	return u, nil
}

func dictBoolEntry(dict *starlark.Dict, key string) (bool, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	b, ok := value.(starlark.Bool)
	if !ok {
		return false, fmt.Errorf("%s must be a bool, got %s",
			key, value.Type())
	}

	return bool(b), nil
}
