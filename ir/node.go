package ir

import (
	"slices"
	"time"
)

// Node is a single value in a configuration document. Type selects which of
// the remaining fields is meaningful: the scalar fields for leaf kinds,
// Fields+Values for tables, Values alone for arrays. Table fields keep
// insertion order.
type Node struct {
	Type Type

	String string
	Int    int64
	Float  float64
	Bool   bool
	Time   time.Time

	Fields []string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromDatetime(t time.Time) *Node {
	return &Node{Type: DatetimeType, Time: t}
}

func NewTable() *Node {
	return &Node{Type: TableType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewTable()
	for _, kv := range kvs {
		res.SetField(kv.Key, kv.Val)
	}
	return res
}

// Len returns the number of table entries or array elements.
func (y *Node) Len() int {
	return len(y.Values)
}

// FieldIndex returns the position of field in a table, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

// Get returns the table value for field, or nil when absent.
func (y *Node) Get(field string) *Node {
	if i := y.FieldIndex(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

// SetField replaces the value of an existing field in place, keeping its
// position, or appends a new field at the end.
func (y *Node) SetField(field string, v *Node) {
	if i := y.FieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// DeleteField removes field from a table and returns its value, or nil when
// the field is absent. Later fields shift down.
func (y *Node) DeleteField(field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	v := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return v
}

// Append adds v to the end of an array.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// DeleteAt removes the array element at i and returns it. Later elements
// shift down.
func (y *Node) DeleteAt(i int) *Node {
	v := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	return v
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Int = y.Int
	dst.Float = y.Float
	dst.Bool = y.Bool
	dst.Time = y.Time
	dst.Fields = slices.Clone(y.Fields)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
