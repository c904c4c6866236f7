package resolve

import (
	"github.com/ehuss/toml-query/debug"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

// Update replaces the value in an existing terminal slot, preserving its
// position: table key order and array index are untouched. An absent
// segment, intermediate or terminal, fails with ErrNotFound.
func Update(root *ir.Node, path token.Path, v *ir.Node) error {
	return update(OpUpdate, root, path, v)
}

func update(op Op, root *ir.Node, path token.Path, v *ir.Node) error {
	if debug.Resolve() {
		debug.Logf("%s %q", op, path.String())
	}
	if len(path) == 0 {
		// the root is not a slot inside anything
		return notFound(op, path)
	}
	parent, err := lookup(op, root, path[:len(path)-1])
	if err != nil {
		return err
	}
	seg := path[len(path)-1]
	switch {
	case seg.Key != nil:
		if parent.Type != ir.TableType {
			return typeMismatch(op, path, ir.TableType, parent.Type)
		}
		i := parent.FieldIndex(*seg.Key)
		if i == -1 {
			return notFound(op, path)
		}
		parent.Values[i] = v
	case seg.Index != nil:
		if parent.Type != ir.ArrayType {
			return typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		if *seg.Index >= parent.Len() {
			return notFound(op, path)
		}
		parent.Values[*seg.Index] = v
	default:
		if parent.Type != ir.ArrayType {
			return typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		// The append marker never names an existing slot.
		return notFound(op, path)
	}
	return nil
}
