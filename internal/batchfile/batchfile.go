// Package batchfile reads batches of commands and merge directives from YAML.
//
//	ops:
//	  - command: [DEL, k]
//	  - command: [SET, k, v1]
//	    set:
//	      result.val: ok
//	  - command: [GET, k]
//	    set:
//	      result.val: $reply
//	    inc:
//	      stats.reads: 1
//
// Any string value equal to $reply is replaced by the command's reply. Directive entries
// keep the order they are written in.
package batchfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/isaymatato/roseredis"
)

const Reply = "$reply"

type File struct {
	Specs []OpSpec `yaml:"ops"`
}

type OpSpec struct {
	Command []any     `yaml:"command"`
	Set     yaml.Node `yaml:"set"`
	Inc     yaml.Node `yaml:"inc"`
}

type entry struct {
	path  string
	value any
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Ops compiles every spec, in file order.
func (f *File) Ops() ([]roseredis.Op, error) {
	ops := make([]roseredis.Op, len(f.Specs))
	for i, spec := range f.Specs {
		op, err := spec.Op()
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		ops[i] = op
	}
	return ops, nil
}

var ErrEmptyCommand = errors.New("empty command")

// Op compiles the spec. Specs without set or inc entries get no handler.
func (s OpSpec) Op() (roseredis.Op, error) {

	if len(s.Command) == 0 {
		return roseredis.Op{}, ErrEmptyCommand
	}

	sets, err := entries(&s.Set)
	if err != nil {
		return roseredis.Op{}, fmt.Errorf("set: %w", err)
	}
	incs, err := entries(&s.Inc)
	if err != nil {
		return roseredis.Op{}, fmt.Errorf("inc: %w", err)
	}

	op := roseredis.Op{Command: s.Command}
	if len(sets) == 0 && len(incs) == 0 {
		return op, nil
	}

	op.Handler = func(reply any) roseredis.Directive {
		var d roseredis.Directive
		for _, e := range sets {
			d = d.Set(e.path, substitute(e.value, reply))
		}
		for _, e := range incs {
			d = d.Inc(e.path, delta(substitute(e.value, reply)))
		}
		return d
	}
	return op, nil
}

func entries(n *yaml.Node) ([]entry, error) {

	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of paths", n.Line)
	}

	out := make([]entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if _, err := roseredis.ParsePath(k.Value); err != nil {
			return nil, fmt.Errorf("line %d: %w", k.Line, err)
		}

		var val any
		if err := v.Decode(&val); err != nil {
			return nil, fmt.Errorf("line %d: %w", v.Line, err)
		}
		out = append(out, entry{path: k.Value, value: val})
	}
	return out, nil
}

func substitute(v any, reply any) any {

	switch t := v.(type) {
	case string:
		if t == Reply {
			return reply
		}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = substitute(e, reply)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = substitute(e, reply)
		}
		return out
	}
	return v
}

// delta parses text so numbers written as strings, or string replies, still add up.
func delta(v any) any {

	switch v.(type) {
	case string, []byte:
		if i, ok := roseredis.Int(v); ok {
			return i
		}
		if f, ok := roseredis.Float(v); ok {
			return f
		}
	}
	return v
}
