package ir

// Equal reports deep equality of two nodes. Table fields must appear in the
// same order: two documents that differ only in key order are not equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringType:
		return a.String == b.String
	case IntegerType:
		return a.Int == b.Int
	case FloatType:
		return a.Float == b.Float
	case BoolType:
		return a.Bool == b.Bool
	case DatetimeType:
		return a.Time.Equal(b.Time)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case TableType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
