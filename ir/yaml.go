package ir

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// DecodeYAML parses a YAML (or JSON) document into a Node. Mappings decode
// through yaml.MapSlice so table key order matches the source text. An all
// whitespace input decodes to an empty table.
func DecodeYAML(d []byte) (*Node, error) {
	if strings.TrimSpace(string(d)) == "" {
		return NewTable(), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromGo(v)
}

// EncodeYAML renders a Node as YAML, tables in field order.
func EncodeYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(y.ToGo())
}

// FromGo converts a plain Go value to a Node. Strings in exact RFC 3339 form
// become Datetime values. Nil is not representable in the value union and is
// rejected.
func FromGo(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrNull
	case yaml.MapSlice:
		res := NewTable()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v", ErrDecode, item.Key)
			}
			val, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := NewTable()
		for _, k := range keys {
			val, err := FromGo(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, val)
		}
		return res, nil
	case []any:
		res := NewArray()
		for _, e := range x {
			val, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	case string:
		if t, ok := parseDatetime(x); ok {
			return FromDatetime(t), nil
		}
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return nil, fmt.Errorf("%w: integer overflow %d", ErrDecode, x)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case time.Time:
		return FromDatetime(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrDecode, v)
	}
}

// ToGo converts a Node back to a plain Go value, tables as yaml.MapSlice so
// key order survives re-encoding.
func (y *Node) ToGo() any {
	switch y.Type {
	case StringType:
		return y.String
	case IntegerType:
		return y.Int
	case FloatType:
		return y.Float
	case BoolType:
		return y.Bool
	case DatetimeType:
		return y.Time
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = yv.ToGo()
		}
		return res
	case TableType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f, Value: y.Values[i].ToGo()}
		}
		return res
	}
	return nil
}

func parseDatetime(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02T15:04:05Z") || s[4] != '-' || s[10] != 'T' {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
