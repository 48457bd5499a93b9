package roseredis

import (
	"strconv"
	"strings"
)

// Separator splits a path string into segments.
const Separator = "."

// Segment is one unit of a dotted path. A segment whose text parses as a non-negative
// integer is an index segment and addresses a position in a *Seq.
type Segment struct {
	Text  string
	Index int // -1 for name segments
}

func (s Segment) IsIndex() bool {
	return s.Index >= 0
}

// Path is the parsed form of a path string like "a.3.b".
type Path []Segment

// ParsePath splits s on Separator and classifies every segment.
func ParsePath(s string) (Path, error) {

	if s == "" {
		return nil, InvalidPathError{Path: s}
	}

	parts := strings.Split(s, Separator)
	p := make(Path, len(parts))
	for i, part := range parts {
		p[i] = parseSegment(part)
	}
	return p, nil
}

func parseSegment(text string) Segment {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return Segment{Text: text, Index: -1}
	}
	return Segment{Text: text, Index: n}
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.Text
	}
	return strings.Join(parts, Separator)
}
