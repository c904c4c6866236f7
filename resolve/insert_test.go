package resolve

import (
	"errors"
	"testing"

	"github.com/ehuss/toml-query/ir"
)

func TestInsertIntoTable(t *testing.T) {
	doc := mustDoc(t, `
table: {}
`)
	if err := Insert(doc, mustPath(t, "table.a"), ir.FromInt(1)); err != nil {
		t.Fatal(err)
	}
	got, err := Read(doc, mustPath(t, "table.a"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Int != 1 {
		t.Errorf("table.a = %v", got)
	}
}

func TestInsertCreatesIntermediates(t *testing.T) {
	doc := mustDoc(t, `a: {}`)
	if err := Insert(doc, mustPath(t, "a.b.c.d"), ir.FromInt(1)); err != nil {
		t.Fatal(err)
	}
	got, err := Read(doc, mustPath(t, "a.b.c.d"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Int != 1 {
		t.Errorf("a.b.c.d = %v", got)
	}
	// the created intermediates are tables
	b, _ := Read(doc, mustPath(t, "a.b"))
	if b.Type != ir.TableType {
		t.Errorf("a.b type = %s", b.Type)
	}
}

func TestInsertCreatesArrayForBracket(t *testing.T) {
	doc := mustDoc(t, `a: {}`)
	if err := Insert(doc, mustPath(t, "a.c[]"), ir.FromInt(5)); err != nil {
		t.Fatal(err)
	}
	c, err := Read(doc, mustPath(t, "a.c"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != ir.ArrayType || c.Len() != 1 || c.Values[0].Int != 5 {
		t.Errorf("a.c = %v", c)
	}
}

func TestInsertAppendMarker(t *testing.T) {
	doc := mustDoc(t, `array: [1, 2]`)
	if err := Insert(doc, mustPath(t, "array[]"), ir.FromInt(3)); err != nil {
		t.Fatal(err)
	}
	a, _ := Read(doc, mustPath(t, "array"))
	if a.Len() != 3 || a.Values[2].Int != 3 {
		t.Errorf("array = %v", a.Values)
	}
}

func TestInsertIndexAtEnd(t *testing.T) {
	doc := mustDoc(t, `array: [1]`)
	if err := Insert(doc, mustPath(t, "array[1]"), ir.FromInt(2)); err != nil {
		t.Fatal(err)
	}
	// an index past the end also lands at the end
	if err := Insert(doc, mustPath(t, "array[1000]"), ir.FromInt(3)); err != nil {
		t.Fatal(err)
	}
	a, _ := Read(doc, mustPath(t, "array"))
	if a.Len() != 3 || a.Values[1].Int != 2 || a.Values[2].Int != 3 {
		t.Errorf("array = %v", a.Values)
	}
}

func TestInsertOccupied(t *testing.T) {
	doc := mustDoc(t, `
table:
  a: 1
array: [10]
`)
	err := Insert(doc, mustPath(t, "table.a"), ir.FromInt(2))
	if !errors.Is(err, ErrExists) {
		t.Errorf("occupied key: %v, want ErrExists", err)
	}
	err = Insert(doc, mustPath(t, "array[0]"), ir.FromInt(2))
	if !errors.Is(err, ErrExists) {
		t.Errorf("occupied index: %v, want ErrExists", err)
	}
	// the occupied values are untouched
	a, _ := Read(doc, mustPath(t, "table.a"))
	if a.Int != 1 {
		t.Errorf("table.a = %v", a)
	}
}

func TestInsertTypeMismatch(t *testing.T) {
	doc := mustDoc(t, `
scalar: 1
`)
	err := Insert(doc, mustPath(t, "scalar.a"), ir.FromInt(2))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
	// the scalar kind is never overwritten
	s, _ := Read(doc, mustPath(t, "scalar"))
	if s.Type != ir.IntegerType || s.Int != 1 {
		t.Errorf("scalar = %v", s)
	}
}

func TestInsertNoRollback(t *testing.T) {
	doc := mustDoc(t, `
a:
  b:
    leaf: 1
`)
	// a.c is created before the failure at a.b.leaf.x
	err := Insert(doc, mustPath(t, "a.b.leaf.x"), ir.FromInt(2))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v", err)
	}
	err = Insert(doc, mustPath(t, "a.c.d.e"), ir.FromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	// now fail below the freshly created a.c.d table
	err = Insert(doc, mustPath(t, "a.c.d.e.f"), ir.FromInt(3))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v", err)
	}
	// a.c.d remains with its partial content
	d, rerr := Read(doc, mustPath(t, "a.c.d"))
	if rerr != nil {
		t.Fatal(rerr)
	}
	if d.Type != ir.TableType || d.Get("e") == nil {
		t.Errorf("a.c.d = %v", d)
	}
}
