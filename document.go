package tomlquery

import (
	"github.com/ehuss/toml-query/debug"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/resolve"
	"github.com/ehuss/toml-query/token"
)

// Document is the entry point for path queries against a caller-owned tree.
// It borrows the root and mutates it in place; it never clones the tree. A
// Document is not safe for concurrent use.
type Document struct {
	root  *ir.Node
	sep   rune
	debug bool
}

type Option func(*Document)

// WithSeparator sets the path segment separator, '.' by default.
func WithSeparator(r rune) Option {
	return func(d *Document) {
		d.sep = r
	}
}

// WithDebug turns operation logging on or off, overriding the TQ_DEBUG_OP
// environment gate.
func WithDebug(enabled bool) Option {
	return func(d *Document) {
		d.debug = enabled
	}
}

func New(root *ir.Node, opts ...Option) *Document {
	d := &Document{root: root, sep: '.', debug: debug.Op()}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Root returns the underlying tree.
func (d *Document) Root() *ir.Node {
	return d.root
}

func (d *Document) tokenize(query string) (token.Path, error) {
	p, err := token.Tokenize(query, token.WithSeparator(d.sep))
	if err != nil {
		return nil, err
	}
	if debug.Tokenize() {
		debug.Logf("tokenize %q -> %q", query, p.String())
	}
	return p, nil
}

// Read resolves query and returns the addressed node as a shared view; the
// caller must not mutate it.
func (d *Document) Read(query string) (*ir.Node, error) {
	p, err := d.tokenize(query)
	if err != nil {
		return nil, err
	}
	if d.debug {
		debug.Logf("read %q", query)
	}
	return resolve.Read(d.root, p)
}

// ReadMut resolves query and returns the addressed node as an exclusive
// view the caller may mutate. No other view of the tree may be used while
// the caller holds it.
func (d *Document) ReadMut(query string) (*ir.Node, error) {
	p, err := d.tokenize(query)
	if err != nil {
		return nil, err
	}
	if d.debug {
		debug.Logf("read-mut %q", query)
	}
	return resolve.ReadMut(d.root, p)
}

// Insert writes v at query, creating missing intermediate containers. An
// occupied terminal slot is an error; see resolve.Insert.
func (d *Document) Insert(query string, v *ir.Node) error {
	p, err := d.tokenize(query)
	if err != nil {
		return err
	}
	if d.debug {
		debug.Logf("insert %q", query)
	}
	return resolve.Insert(d.root, p, v)
}

// Update replaces the value in an existing terminal slot in place.
func (d *Document) Update(query string, v *ir.Node) error {
	p, err := d.tokenize(query)
	if err != nil {
		return err
	}
	if d.debug {
		debug.Logf("update %q", query)
	}
	return resolve.Update(d.root, p, v)
}

// Delete removes the terminal slot and returns the removed value.
func (d *Document) Delete(query string) (*ir.Node, error) {
	p, err := d.tokenize(query)
	if err != nil {
		return nil, err
	}
	if d.debug {
		debug.Logf("delete %q", query)
	}
	return resolve.Delete(d.root, p)
}

// Set updates query, inserting when the terminal slot is absent.
func (d *Document) Set(query string, v *ir.Node) error {
	p, err := d.tokenize(query)
	if err != nil {
		return err
	}
	if d.debug {
		debug.Logf("set %q", query)
	}
	return resolve.Set(d.root, p, v)
}
