package roseredis

// Ref is a resolved (container, final segment) pair. It is only valid until the tree it
// was resolved against is modified through another path.
type Ref struct {
	c   container
	seg Segment
}

func (r Ref) Get() (any, bool) {
	return r.c.get(r.seg)
}

func (r Ref) Set(v any) {
	r.c.put(r.seg, v)
}

// Resolve walks path from root, creating and converting containers on the way, and
// returns a reference to the final segment without touching its value.
//
// Every container below root is coerced to the kind the segment addressing it requires:
// an index segment needs a *Seq, a name segment needs a *Map. Root itself is never
// converted, so an index segment on root is stored under its text. Values on the way that
// are not containers are replaced by an empty *Map. An index more than MaxIndexGap past
// the size of the container it addresses is treated as a name segment.
func Resolve(root *Map, path string) (Ref, error) {

	p, err := ParsePath(path)
	if err != nil {
		return Ref{}, err
	}

	var cur container = root
	var parent container
	var parentSeg Segment
	var last Segment

	for i, seg := range p {

		if parent != nil {
			seg = fit(cur, seg)
			cur = coerce(cur, parent, parentSeg, seg)
		}

		if i == len(p)-1 {
			last = seg
			break
		}

		v, _ := cur.get(seg)
		child, ok := v.(container)
		if !ok {
			if child, ok = adopt(v); !ok {
				child = NewMap()
			}
			cur.put(seg, child)
		}

		parent, parentSeg = cur, seg
		cur = child
	}

	return Ref{c: cur, seg: last}, nil
}

func fit(c container, seg Segment) Segment {
	if seg.IsIndex() && seg.Index > c.Len()+MaxIndexGap {
		return Segment{Text: seg.Text, Index: -1}
	}
	return seg
}

// coerce replaces cur in its parent slot when it is the wrong kind for seg.
func coerce(cur container, parent container, parentSeg Segment, seg Segment) container {

	switch c := cur.(type) {
	case *Map:
		if seg.IsIndex() {
			s := c.toSeq()
			parent.put(parentSeg, s)
			return s
		}
	case *Seq:
		if !seg.IsIndex() {
			m := c.toMap()
			parent.put(parentSeg, m)
			return m
		}
	}
	return cur
}

// Set resolves path and overwrites whatever is stored there.
func Set(root *Map, path string, v any) error {

	ref, err := Resolve(root, path)
	if err != nil {
		return err
	}
	ref.Set(v)
	return nil
}

// Increment resolves path and adds delta to the stored number. A missing or non-numeric
// value counts as 0.
func Increment(root *Map, path string, delta any) error {

	if _, err := ParsePath(path); err != nil {
		return err
	}

	d, ok := toNumber(delta)
	if !ok {
		return InvalidDeltaError{Path: path, Delta: delta}
	}

	ref, err := Resolve(root, path)
	if err != nil {
		return err
	}

	cur, _ := ref.Get()
	n, ok := toNumber(cur)
	if !ok {
		n = number{isInt: true}
	}
	ref.Set(n.add(d).value())
	return nil
}
