package tomlquery

import (
	"time"

	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/resolve"
	"github.com/ehuss/toml-query/token"
)

// As narrows a resolved outcome to the requested kind. A pre-existing
// failure passes through unchanged; a kind mismatch replaces success with a
// type-mismatch error naming both kinds. As never touches the tree.
func As(n *ir.Node, err error, t ir.Type) (*ir.Node, error) {
	return asType(resolve.OpRead, nil, n, err, t)
}

func asType(op resolve.Op, p token.Path, n *ir.Node, err error, t ir.Type) (*ir.Node, error) {
	if err != nil {
		return nil, err
	}
	if n.Type != t {
		return nil, &resolve.Error{
			Op:       op,
			Path:     p,
			Expected: t,
			Actual:   n.Type,
			Err:      resolve.ErrTypeMismatch,
		}
	}
	return n, nil
}

func (d *Document) readAs(query string, t ir.Type) (*ir.Node, error) {
	p, err := d.tokenize(query)
	if err != nil {
		return nil, err
	}
	n, err := resolve.Read(d.root, p)
	return asType(resolve.OpRead, p, n, err, t)
}

// ReadString reads query narrowed to String.
func (d *Document) ReadString(query string) (string, error) {
	n, err := d.readAs(query, ir.StringType)
	if err != nil {
		return "", err
	}
	return n.String, nil
}

// ReadInt reads query narrowed to Integer.
func (d *Document) ReadInt(query string) (int64, error) {
	n, err := d.readAs(query, ir.IntegerType)
	if err != nil {
		return 0, err
	}
	return n.Int, nil
}

// ReadFloat reads query narrowed to Float.
func (d *Document) ReadFloat(query string) (float64, error) {
	n, err := d.readAs(query, ir.FloatType)
	if err != nil {
		return 0, err
	}
	return n.Float, nil
}

// ReadBool reads query narrowed to Boolean.
func (d *Document) ReadBool(query string) (bool, error) {
	n, err := d.readAs(query, ir.BoolType)
	if err != nil {
		return false, err
	}
	return n.Bool, nil
}

// ReadDatetime reads query narrowed to Datetime.
func (d *Document) ReadDatetime(query string) (time.Time, error) {
	n, err := d.readAs(query, ir.DatetimeType)
	if err != nil {
		return time.Time{}, err
	}
	return n.Time, nil
}

// ReadArray reads query narrowed to Array and returns its elements.
func (d *Document) ReadArray(query string) ([]*ir.Node, error) {
	n, err := d.readAs(query, ir.ArrayType)
	if err != nil {
		return nil, err
	}
	return n.Values, nil
}

// ReadTable reads query narrowed to Table and returns the table node;
// iterate Fields and Values for its entries in insertion order.
func (d *Document) ReadTable(query string) (*ir.Node, error) {
	return d.readAs(query, ir.TableType)
}
