package token

import (
	"bytes"
	"fmt"
)

// Segment is one parsed step of a path: a table key lookup, an array index
// lookup, or the array append marker. Exactly one of Key, Index, Append is
// set.
type Segment struct {
	Key    *string
	Index  *int
	Append bool
}

func KeySegment(k string) Segment {
	return Segment{Key: &k}
}

func IndexSegment(i int) Segment {
	return Segment{Index: &i}
}

func AppendSegment() Segment {
	return Segment{Append: true}
}

// SegmentString returns the canonical text of this single segment:
// "a", "[3]" or "[]".
func (s Segment) SegmentString() string {
	if s.Key != nil {
		return *s.Key
	}
	if s.Index != nil {
		return fmt.Sprintf("[%d]", *s.Index)
	}
	if s.Append {
		return "[]"
	}
	return ""
}

func (s Segment) Equal(o Segment) bool {
	if (s.Key == nil) != (o.Key == nil) {
		return false
	}
	if s.Key != nil {
		return *s.Key == *o.Key
	}
	if (s.Index == nil) != (o.Index == nil) {
		return false
	}
	if s.Index != nil {
		return *s.Index == *o.Index
	}
	return s.Append == o.Append
}

// Path is the parsed form of a query: segments in source order. It is not
// modified after Tokenize returns it.
type Path []Segment

// String renders the path in canonical syntax with '.' as separator,
// brackets attached to the preceding segment.
func (p Path) String() string {
	buf := bytes.NewBuffer(nil)
	for _, s := range p {
		if s.Key != nil && buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s.SegmentString())
	}
	return buf.String()
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
