package resolve

import (
	"errors"

	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

// Set updates path, falling back to Insert exactly when the update failed
// NotFound at the terminal segment. Every other failure, such as a type
// mismatch at an intermediate, propagates unchanged.
func Set(root *ir.Node, path token.Path, v *ir.Node) error {
	err := update(OpSet, root, path, v)
	if err == nil {
		return nil
	}
	var rerr *Error
	if errors.As(err, &rerr) &&
		errors.Is(rerr.Err, ErrNotFound) &&
		len(rerr.Path) == len(path) {
		return insert(OpSet, root, path, v)
	}
	return err
}
