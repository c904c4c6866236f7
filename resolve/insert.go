package resolve

import (
	"github.com/ehuss/toml-query/debug"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

// Insert writes v at path, creating missing intermediate containers along
// the way: a table when the following segment is a key, an array when it is
// an index or the append marker. An existing intermediate of the wrong kind
// fails with a type mismatch and is never overwritten. An occupied terminal
// slot fails with ErrExists.
//
// Intermediates created before a failure are not rolled back; callers that
// need whole-call atomicity should work on root.Clone() and discard it on
// failure.
func Insert(root *ir.Node, path token.Path, v *ir.Node) error {
	return insert(OpInsert, root, path, v)
}

func insert(op Op, root *ir.Node, path token.Path, v *ir.Node) error {
	if debug.Resolve() {
		debug.Logf("%s %q", op, path.String())
	}
	if len(path) == 0 {
		// the root is not a slot inside anything
		return notFound(op, path)
	}
	parent, err := descendCreate(op, root, path)
	if err != nil {
		return err
	}
	return place(op, parent, path, v)
}

// descendCreate walks the non-final segments, creating absent children, and
// returns the container the final segment applies to.
func descendCreate(op Op, root *ir.Node, path token.Path) (*ir.Node, error) {
	cur := root
	for i := 0; i < len(path)-1; i++ {
		seg := path[i]
		switch {
		case seg.Key != nil:
			if cur.Type != ir.TableType {
				return nil, typeMismatch(op, path[:i+1], ir.TableType, cur.Type)
			}
			child := cur.Get(*seg.Key)
			if child == nil {
				child = newContainer(path[i+1])
				cur.SetField(*seg.Key, child)
			}
			cur = child
		default:
			// The tokenizer rejects non-final append markers, so this is an
			// index segment.
			if cur.Type != ir.ArrayType {
				return nil, typeMismatch(op, path[:i+1], ir.ArrayType, cur.Type)
			}
			if *seg.Index < cur.Len() {
				cur = cur.Values[*seg.Index]
				continue
			}
			child := newContainer(path[i+1])
			cur.Append(child)
			cur = child
		}
	}
	return cur, nil
}

// newContainer picks the container kind an absent intermediate needs to
// satisfy the segment that follows it.
func newContainer(next token.Segment) *ir.Node {
	if next.Key != nil {
		return ir.NewTable()
	}
	return ir.NewArray()
}

// place writes v into the terminal slot of parent.
func place(op Op, parent *ir.Node, path token.Path, v *ir.Node) error {
	seg := path[len(path)-1]
	switch {
	case seg.Key != nil:
		if parent.Type != ir.TableType {
			return typeMismatch(op, path, ir.TableType, parent.Type)
		}
		if parent.Get(*seg.Key) != nil {
			return alreadyExists(op, path)
		}
		parent.SetField(*seg.Key, v)
	case seg.Index != nil:
		if parent.Type != ir.ArrayType {
			return typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		if *seg.Index < parent.Len() {
			return alreadyExists(op, path)
		}
		// An index at or past the end lands at the end.
		parent.Append(v)
	default:
		if parent.Type != ir.ArrayType {
			return typeMismatch(op, path, ir.ArrayType, parent.Type)
		}
		parent.Append(v)
	}
	return nil
}
