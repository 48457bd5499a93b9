package roseredis

import (
	"bytes"
	"encoding/json"
	"iter"
	"sort"
	"strconv"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// container is either a *Map or a *Seq. Which one a path needs is decided by the segment
// used to address it.
type container interface {
	get(seg Segment) (any, bool)
	put(seg Segment, v any)
	Len() int
}

// MaxIndexGap is how far a single write may extend a sequence past the current size of
// the container it lands in. Resolve addresses a larger index by name instead, so
// "a.20000000" stores the key "20000000" in a mapping rather than growing a sequence to
// twenty million slots.
const MaxIndexGap = 1024

// Map is a mapping that keeps keys in insertion order.
type Map struct {
	entries *sequencedmap.Map[string, any]
	n       int
}

func NewMap() *Map {
	return &Map{entries: sequencedmap.New[string, any]()}
}

func (m *Map) list() *sequencedmap.Map[string, any] {
	if m.entries == nil {
		m.entries = sequencedmap.New[string, any]()
	}
	return m.entries
}

func (m *Map) Get(key string) (any, bool) {
	return m.list().Get(key)
}

func (m *Map) Put(key string, v any) {
	if _, ok := m.list().Get(key); !ok {
		m.n++
	}
	m.list().Set(key, v)
}

func (m *Map) Len() int {
	return m.n
}

// All iterates the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return m.list().All()
}

func (m *Map) Keys() []string {
	keys := make([]string, 0, m.n)
	for k := range m.list().All() {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map) get(seg Segment) (any, bool) {
	return m.Get(seg.Text)
}

func (m *Map) put(seg Segment, v any) {
	m.Put(seg.Text, v)
}

// toSeq renumbers the entries onto a sequence. Only keys that are index segments within
// MaxIndexGap of the map's size survive.
func (m *Map) toSeq() *Seq {
	s := &Seq{}
	for k, v := range m.list().All() {
		if seg := parseSegment(k); seg.IsIndex() && seg.Index <= m.n+MaxIndexGap {
			s.set(seg.Index, v)
		}
	}
	return s
}

// Native returns a copy of the tree made of map[string]any and []any.
func (m *Map) Native() map[string]any {
	out := make(map[string]any, m.n)
	for k, v := range m.list().All() {
		out[k] = native(v)
	}
	return out
}

// Lookup reads the value at path without creating or converting anything.
func (m *Map) Lookup(path string) (any, bool) {

	p, err := ParsePath(path)
	if err != nil {
		return nil, false
	}

	var cur any = m
	for _, seg := range p {
		c, ok := asContainer(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = c.get(seg); !ok {
			return nil, false
		}
	}
	return cur, true
}

func (m *Map) MarshalJSON() ([]byte, error) {

	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range m.list().All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Seq is a dense, 0-based sequence. Writing past the end grows it with nil holes.
type Seq struct {
	items []any
}

func NewSeq(items ...any) *Seq {
	return &Seq{items: append([]any(nil), items...)}
}

func (s *Seq) Get(i int) (any, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// Put stores v at i, filling any gap with nil. It refuses negative indexes and indexes
// more than MaxIndexGap past the end.
func (s *Seq) Put(i int, v any) bool {
	if i < 0 || i > len(s.items)+MaxIndexGap {
		return false
	}
	s.set(i, v)
	return true
}

func (s *Seq) set(i int, v any) {
	if i < len(s.items) {
		s.items[i] = v
		return
	}
	s.items = append(s.items, make([]any, i-len(s.items)+1)...)
	s.items[i] = v
}

func (s *Seq) Len() int {
	return len(s.items)
}

func (s *Seq) get(seg Segment) (any, bool) {
	if !seg.IsIndex() {
		return nil, false
	}
	return s.Get(seg.Index)
}

func (s *Seq) put(seg Segment, v any) {
	s.Put(seg.Index, v)
}

// toMap keys every element by its decimal index.
func (s *Seq) toMap() *Map {
	m := NewMap()
	for i, v := range s.items {
		m.Put(strconv.Itoa(i), v)
	}
	return m
}

func (s *Seq) Native() []any {
	out := make([]any, len(s.items))
	for i, v := range s.items {
		out[i] = native(v)
	}
	return out
}

func (s *Seq) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func native(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Native()
	case *Seq:
		return t.Native()
	}
	return v
}

// asContainer reports whether v can be walked. Plain maps and slices are read as-is.
func asContainer(v any) (container, bool) {
	switch t := v.(type) {
	case *Map:
		return t, true
	case *Seq:
		return t, true
	case map[string]any, H, []any:
		c, _ := adopt(v)
		return c, true
	}
	return nil, false
}

// adopt turns v into a container. Native maps are copied with sorted keys since Go map
// order is random; native slices are copied.
func adopt(v any) (container, bool) {

	switch t := v.(type) {
	case *Map:
		return t, true
	case *Seq:
		return t, true
	case H:
		return adopt(map[string]any(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Put(k, t[k])
		}
		return m, true
	case []any:
		return NewSeq(t...), true
	}
	return nil, false
}
