package resolve

import (
	"github.com/ehuss/toml-query/debug"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

// Read resolves path against root and returns the addressed node as a
// shared view. The caller must not mutate the result; use ReadMut for that.
func Read(root *ir.Node, path token.Path) (*ir.Node, error) {
	return lookup(OpRead, root, path)
}

// ReadMut resolves path against root and returns the addressed node as an
// exclusive view the caller may mutate. While the caller holds it, no other
// view of the same tree may be used.
func ReadMut(root *ir.Node, path token.Path) (*ir.Node, error) {
	return lookup(OpReadMut, root, path)
}

func lookup(op Op, root *ir.Node, path token.Path) (*ir.Node, error) {
	if debug.Resolve() {
		debug.Logf("%s %q", op, path.String())
	}
	cur := root
	for i := range path {
		next, err := step(op, cur, path, i)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// step applies path[i] to cur. Segments apply strictly left to right; the
// error sub-path is path[:i+1], the resolution attempted so far.
func step(op Op, cur *ir.Node, path token.Path, i int) (*ir.Node, error) {
	seg := path[i]
	switch {
	case seg.Key != nil:
		if cur.Type != ir.TableType {
			return nil, typeMismatch(op, path[:i+1], ir.TableType, cur.Type)
		}
		child := cur.Get(*seg.Key)
		if child == nil {
			return nil, notFound(op, path[:i+1])
		}
		return child, nil
	case seg.Index != nil:
		if cur.Type != ir.ArrayType {
			return nil, typeMismatch(op, path[:i+1], ir.ArrayType, cur.Type)
		}
		if *seg.Index >= cur.Len() {
			return nil, notFound(op, path[:i+1])
		}
		return cur.Values[*seg.Index], nil
	default:
		// The append marker names a slot that does not exist yet, so any
		// operation that requires an existing slot resolves it to NotFound.
		if cur.Type != ir.ArrayType {
			return nil, typeMismatch(op, path[:i+1], ir.ArrayType, cur.Type)
		}
		return nil, notFound(op, path[:i+1])
	}
}
