package roseredis

import (
	"iter"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Directive describes how a handler's reply is merged into the result: $set entries are
// applied first, then $inc entries, each in the order they were added. The zero value is
// a valid no-op.
type Directive struct {
	set *sequencedmap.Map[string, any]
	inc *sequencedmap.Map[string, any]
}

// SetKey returns a Directive with a single $set entry.
func SetKey(path string, v any) Directive {
	return Directive{}.Set(path, v)
}

// IncKey returns a Directive with a single $inc entry.
func IncKey(path string, delta any) Directive {
	return Directive{}.Inc(path, delta)
}

// Set returns a copy of d with a $set entry added; d itself is left as it was. Setting the
// same path twice keeps the first position and the last value.
func (d Directive) Set(path string, v any) Directive {
	d.set = with(d.set, path, v)
	return d
}

// Inc returns a copy of d with an $inc entry added.
func (d Directive) Inc(path string, delta any) Directive {
	d.inc = with(d.inc, path, delta)
	return d
}

func (d Directive) IsZero() bool {
	return d.set == nil && d.inc == nil
}

func (d Directive) Sets() iter.Seq2[string, any] {
	return entries(d.set)
}

func (d Directive) Incs() iter.Seq2[string, any] {
	return entries(d.inc)
}

// Apply merges the directive into root. It stops at the first invalid path or delta.
func (d Directive) Apply(root *Map) error {

	for path, v := range d.Sets() {
		if err := Set(root, path, v); err != nil {
			return err
		}
	}

	for path, delta := range d.Incs() {
		if err := Increment(root, path, delta); err != nil {
			return err
		}
	}

	return nil
}

func with(m *sequencedmap.Map[string, any], path string, v any) *sequencedmap.Map[string, any] {
	out := sequencedmap.New[string, any]()
	for k, e := range entries(m) {
		out.Set(k, e)
	}
	out.Set(path, v)
	return out
}

func entries(m *sequencedmap.Map[string, any]) iter.Seq2[string, any] {
	if m == nil {
		return func(func(string, any) bool) {}
	}
	return m.All()
}
