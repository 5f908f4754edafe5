package builtin

import (
	"testing"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

func TestOverloadCounts(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"endswith", 1},
		{"substring", 6},
		{"year", 4},
		{"hour", 6},
		{"fractionalseconds", 4},
		{"now", 1},
		{"round", 4},
		{"geo.distance", 2},
		{"geo.intersects", 4},
		{"geo.length", 2},
	}
	for _, tt := range tests {
		sigs, ok := Lookup(tt.name)
		if !ok {
			t.Errorf("%s: not in catalog", tt.name)
			continue
		}
		if len(sigs) != tt.want {
			t.Errorf("%s: %d overloads, want %d", tt.name, len(sigs), tt.want)
		}
	}
}

func TestNoDuplicateOverloads(t *testing.T) {
	for _, name := range Names() {
		sigs, _ := Lookup(name)
		for i := range sigs {
			if j := funcsig.Index(sigs, sigs[i]); j != i {
				t.Errorf("%s: overload %d duplicates %d", name, i, j)
			}
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	if _, ok := Lookup("ToUpper"); ok {
		t.Fatal("exact lookup must not fold case")
	}
	got := LookupFold("ToUpper")
	if len(got) != 1 || got[0].Name != "toupper" {
		t.Fatalf("LookupFold(ToUpper) = %+v", got)
	}
}

func TestContains(t *testing.T) {
	str := edm.Primitive(edm.KindString, true)
	sig := funcsig.NewFunction(edm.Primitive(edm.KindInt32, false), str)
	if !Contains("length", sig) {
		t.Fatal("length(Edm.String?) is built in")
	}
	if Contains("length", funcsig.NewFunction(edm.Primitive(edm.KindInt32, false), str, str)) {
		t.Fatal("length has no two-argument overload")
	}
	if Contains("pad", sig) {
		t.Fatal("pad is not built in")
	}
}

func TestSubstringPermutations(t *testing.T) {
	sigs, _ := Lookup("substring")
	seen := map[string]bool{}
	for _, s := range sigs {
		seen[s.Signature.String()] = true
	}
	for _, want := range []string{
		"(Edm.String?, Edm.Int32)",
		"(Edm.String?, Edm.Int32?)",
		"(Edm.String?, Edm.Int32, Edm.Int32)",
		"(Edm.String?, Edm.Int32?, Edm.Int32)",
		"(Edm.String?, Edm.Int32, Edm.Int32?)",
		"(Edm.String?, Edm.Int32?, Edm.Int32?)",
	} {
		if !seen[want] {
			t.Errorf("missing substring%s", want)
		}
	}
}
