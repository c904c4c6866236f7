package resolve

import (
	"github.com/ehuss/toml-query/debug"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

// Delete removes the terminal slot and returns the removed value. Table
// deletion erases the key; array deletion shifts later elements down. An
// absent terminal slot fails with ErrNotFound.
func Delete(root *ir.Node, path token.Path) (*ir.Node, error) {
	op := OpDelete
	if debug.Resolve() {
		debug.Logf("%s %q", op, path.String())
	}
	if len(path) == 0 {
		// the root is not a slot inside anything
		return nil, notFound(op, path)
	}
	parent, err := lookup(op, root, path[:len(path)-1])
	if err != nil {
		return nil, err
	}
	seg := path[len(path)-1]
	switch {
	case seg.Key != nil:
		if parent.Type != ir.TableType {
			return nil, typeMismatch(op, path, ir.TableType, parent.Type)
		}
		v := parent.DeleteField(*seg.Key)
		if v == nil {
			return nil, notFound(op, path)
		}
		return v, nil
	case seg.Index != nil:
		if parent.Type != ir.ArrayType {
			return nil, typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		if *seg.Index >= parent.Len() {
			return nil, notFound(op, path)
		}
		return parent.DeleteAt(*seg.Index), nil
	default:
		if parent.Type != ir.ArrayType {
			return nil, typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		return nil, notFound(op, path)
	}
}
