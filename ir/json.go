package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// MarshalJSON renders the document as plain JSON, objects in table field
// order and datetimes as RFC 3339 strings. This is the wire form used for
// RFC 6902 patching.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case IntegerType:
		buf.WriteString(strconv.FormatInt(y.Int, 10))
	case FloatType:
		if math.IsNaN(y.Float) || math.IsInf(y.Float, 0) {
			return fmt.Errorf("float %v has no JSON form", y.Float)
		}
		buf.WriteString(strconv.FormatFloat(y.Float, 'g', -1, 64))
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case DatetimeType:
		d, err := json.Marshal(y.Time.Format(time.RFC3339))
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, yv); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case TableType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unrecognized type %d", y.Type)
	}
	return nil
}

// DecodeJSON parses a JSON document into a Node. JSON is a YAML subset, so
// this is the YAML decoder under another name.
func DecodeJSON(d []byte) (*Node, error) {
	return DecodeYAML(d)
}
