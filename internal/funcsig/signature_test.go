package funcsig

import (
	"strings"
	"testing"

	"uriql/internal/edm"
)

func str(nullable bool) *edm.TypeRef  { return edm.Primitive(edm.KindString, nullable) }
func i32(nullable bool) *edm.TypeRef  { return edm.Primitive(edm.KindInt32, nullable) }
func boolean(nullable bool) *edm.TypeRef { return edm.Primitive(edm.KindBoolean, nullable) }

func TestEqualIsStructural(t *testing.T) {
	a := NewFunction(str(true), str(true), i32(false))
	b := NewFunction(str(true), str(true), i32(false))
	if !a.Equal(b) {
		t.Fatal("independently built overloads must be equal")
	}
	tests := []struct {
		name  string
		other WithReturnType
	}{
		{"return", NewFunction(boolean(true), str(true), i32(false))},
		{"nullability", NewFunction(str(true), str(true), i32(true))},
		{"arity", NewFunction(str(true), str(true))},
		{"kind", NewFunction(str(true), str(true), str(false))},
	}
	for _, tt := range tests {
		if a.Equal(tt.other) {
			t.Errorf("%s: expected difference", tt.name)
		}
	}
	if Index([]WithReturnType{tests[0].other, b}, a) != 1 {
		t.Fatal("Index must find the structural match")
	}
}

func TestFacetFactories(t *testing.T) {
	dec := func(p, s edm.Facet) *edm.TypeRef { return edm.Decimal(p, s, false) }
	sig := NewWithFactories(
		[]*edm.TypeRef{edm.Decimal(edm.NoFacet, edm.NoFacet, false), i32(false)},
		[]FacetFactory{dec, nil},
	)
	got := sig.Materialize(0, edm.MakeFacet(10), edm.MakeFacet(2))
	if p, _ := got.Precision.Get(); p != 10 {
		t.Fatalf("precision = %d, want 10", p)
	}
	if sig.Materialize(1, edm.MakeFacet(10), edm.NoFacet) != sig.Arg(1) {
		t.Fatal("argument without factory must keep its declared type")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched factories must panic")
		}
	}()
	NewWithFactories([]*edm.TypeRef{i32(false)}, []FacetFactory{nil, nil})
}

func TestFoldAndDescribe(t *testing.T) {
	if !EqualFold("ToUpper", "toupper") || EqualFold("toupper", "tolower") {
		t.Fatal("EqualFold mismatch")
	}
	if !EqualFold("STRASSE", "straße") {
		t.Fatal("full case folding expected")
	}
	got := Describe("pad", []WithReturnType{
		NewFunction(str(true), str(true), i32(false)),
		NewFunction(str(true), str(true)),
	})
	want := "  pad(Edm.String?, Edm.Int32) Edm.String?\n  pad(Edm.String?) Edm.String?"
	if got != want {
		t.Fatalf("Describe:\n%s\nwant:\n%s", got, want)
	}
	if !strings.HasPrefix(Render("f", NewFunction(boolean(false))), "f() ") {
		t.Fatal("Render of a zero-argument overload")
	}
}
