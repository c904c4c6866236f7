package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	IntegerType
	FloatType
	BoolType
	DatetimeType
	ArrayType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:   "String",
		IntegerType:  "Integer",
		FloatType:    "Float",
		BoolType:     "Boolean",
		DatetimeType: "Datetime",
		ArrayType:    "Array",
		TableType:    "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":   StringType,
		"Integer":  IntegerType,
		"Float":    FloatType,
		"Boolean":  BoolType,
		"Datetime": DatetimeType,
		"Array":    ArrayType,
		"Table":    TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		FloatType,
		BoolType,
		DatetimeType,
		ArrayType,
		TableType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, TableType:
		return false
	default:
		return true
	}
}
