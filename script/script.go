// Package script runs optional Starlark hook scripts so users can react
// to HUD events without rebuilding the game.
package script

import (
	"fmt"
	"log"
	"os"

	"go.starlark.net/starlark"
)

// Hooks holds the global bindings of a loaded hook script. A hook is
// any top-level function the script defines, looked up by name at call
// time.
type Hooks struct {
	name    string
	globals starlark.StringDict
}

// LoadFile reads and executes a hook script from disk.
func LoadFile(path string) (*Hooks, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, src)
}

// New executes src once and captures its globals.
func New(name string, src []byte) (*Hooks, error) {
	thread := newThread(name)
	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, err
	}
	return &Hooks{name: name, globals: globals}, nil
}

// Call invokes the hook function fn with the given arguments, converting
// Go values in and the result back out. A script that does not define fn
// is not an error; Call simply returns nil.
func (h *Hooks) Call(fn string, args ...interface{}) (interface{}, error) {
	v, ok := h.globals[fn]
	if !ok {
		return nil, nil
	}
	callable, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not callable", h.name, fn)
	}

	tuple := make(starlark.Tuple, 0, len(args))
	for _, a := range args {
		val, err := toStarlarkValue(a)
		if err != nil {
			return nil, err
		}
		tuple = append(tuple, val)
	}

	out, err := starlark.Call(newThread(h.name), callable, tuple, nil)
	if err != nil {
		return nil, err
	}
	return FromStarlarkValue(out), nil
}

func newThread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Println(name+":", msg) },
	}
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}
