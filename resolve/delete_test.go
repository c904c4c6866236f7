package resolve

import (
	"errors"
	"testing"
)

func TestDeleteTableKey(t *testing.T) {
	doc := mustDoc(t, `
table:
  a: 1
  b: 2
  c: 3
`)
	v, err := Delete(doc, mustPath(t, "table.b"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Int != 2 {
		t.Errorf("removed %v, want 2", v)
	}
	tab, _ := Read(doc, mustPath(t, "table"))
	if tab.Len() != 2 || tab.Fields[0] != "a" || tab.Fields[1] != "c" {
		t.Errorf("fields = %v", tab.Fields)
	}
	if _, err := Read(doc, mustPath(t, "table.b")); !errors.Is(err, ErrNotFound) {
		t.Errorf("read after delete = %v, want ErrNotFound", err)
	}
}

func TestDeleteArrayElementShifts(t *testing.T) {
	doc := mustDoc(t, `array: [10, 20, 30]`)
	v, err := Delete(doc, mustPath(t, "array[0]"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Int != 10 {
		t.Errorf("removed %v, want 10", v)
	}
	a, _ := Read(doc, mustPath(t, "array"))
	if a.Len() != 2 || a.Values[0].Int != 20 || a.Values[1].Int != 30 {
		t.Errorf("array = %v %v", a.Values[0], a.Values[1])
	}
}

func TestDeleteErrors(t *testing.T) {
	doc := mustDoc(t, `
table:
  a: 1
array: [10]
`)
	tests := []struct {
		name  string
		query string
		want  error
	}{
		{name: "absent key", query: "table.b", want: ErrNotFound},
		{name: "absent intermediate", query: "missing.b", want: ErrNotFound},
		{name: "index out of range", query: "array[3]", want: ErrNotFound},
		{name: "append marker", query: "array[]", want: ErrNotFound},
		{name: "delete into scalar", query: "table.a.b", want: ErrTypeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Delete(doc, mustPath(t, tc.query))
			if !errors.Is(err, tc.want) {
				t.Errorf("Delete(%q) = %v, want %v", tc.query, err, tc.want)
			}
		})
	}
}
