package registry

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"
	"weak"

	"golang.org/x/sync/errgroup"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/lexer"
	"uriql/internal/token"
)

func str() *edm.TypeRef { return edm.Primitive(edm.KindString, true) }
func i32() *edm.TypeRef { return edm.Primitive(edm.KindInt32, false) }

func padSig() funcsig.WithReturnType { return funcsig.NewFunction(str(), str(), i32()) }

func TestAddAndLookupCustomFunction(t *testing.T) {
	m := edm.NewModel("Test")
	if err := AddCustomFunction(m, "pad", padSig()); err != nil {
		t.Fatalf("AddCustomFunction: %v", err)
	}
	got, ok := TryGetCustomFunction(m, "pad", MatchExact)
	if !ok || len(got) != 1 || !got[0].Signature.Equal(padSig()) || got[0].Name != "pad" {
		t.Fatalf("TryGetCustomFunction = %+v, %v", got, ok)
	}

	err := AddCustomFunction(m, "pad", padSig())
	if !errors.Is(err, ErrDuplicateOverload) {
		t.Fatalf("expected ErrDuplicateOverload, got %v", err)
	}
	if got, _ := TryGetCustomFunction(m, "pad", MatchExact); len(got) != 1 {
		t.Fatalf("failed add changed the registry: %d overloads", len(got))
	}
	if _, ok := TryGetCustomFunction(m, "PAD", MatchExact); ok {
		t.Fatal("exact lookup must not fold case")
	}
}

func TestBuiltinCollision(t *testing.T) {
	m := edm.NewModel("Test")
	length := funcsig.NewFunction(i32(), str())
	if err := AddCustomFunction(m, "length", length); !errors.Is(err, ErrBuiltinSignature) {
		t.Fatalf("expected ErrBuiltinSignature, got %v", err)
	}
	if _, ok := CustomFunctionsOf(m).Lookup("length"); ok {
		t.Fatal("rejected overload was stored")
	}
	// другая сигнатура под тем же именем допустима
	if err := AddCustomFunction(m, "length", funcsig.NewFunction(i32(), str(), i32())); err != nil {
		t.Fatalf("distinct overload of a built-in name: %v", err)
	}
}

func TestContractErrors(t *testing.T) {
	m := edm.NewModel("Test")
	if err := AddCustomFunction(m, "", padSig()); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := AddCustomFunction(m, "f", funcsig.WithReturnType{}); !errors.Is(err, ErrNilType) {
		t.Fatalf("expected ErrNilType, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("nil model must panic")
		}
	}()
	CustomFunctionsOf(nil)
}

func TestRemoveIsStructural(t *testing.T) {
	m := edm.NewModel("Test")
	short := funcsig.NewFunction(str(), str())
	for _, sig := range []funcsig.WithReturnType{padSig(), short} {
		if err := AddCustomFunction(m, "pad", sig); err != nil {
			t.Fatal(err)
		}
	}
	if !RemoveCustomFunction(m, "pad", padSig()) {
		t.Fatal("remove by an equal, freshly built signature must succeed")
	}
	if RemoveCustomFunction(m, "pad", padSig()) {
		t.Fatal("second remove must report false")
	}
	got, _ := TryGetCustomFunction(m, "pad", MatchExact)
	if len(got) != 1 || !got[0].Signature.Equal(short) {
		t.Fatalf("unexpected remaining overloads %+v", got)
	}
	if !RemoveCustomFunctions(m, "pad") || RemoveCustomFunctions(m, "pad") {
		t.Fatal("RemoveCustomFunctions must remove once")
	}
	if names := CustomFunctionsOf(m).Names(); len(names) != 0 {
		t.Fatalf("names left: %v", names)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	m := edm.NewModel("Test")
	if err := AddCustomFunction(m, "pad", padSig()); err != nil {
		t.Fatal(err)
	}
	if err := AddCustomFunction(m, "Pad", funcsig.NewFunction(str(), str())); err != nil {
		t.Fatal(err)
	}
	got, ok := TryGetCustomFunction(m, "PAD", MatchFold)
	if !ok || len(got) != 2 {
		t.Fatalf("expected 2 overloads, got %+v", got)
	}
	if got[0].Name != "Pad" || got[1].Name != "pad" {
		t.Fatalf("each overload must keep its own name: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	const n = 64
	m := edm.NewModel("Test")
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			args := make([]*edm.TypeRef, i+1)
			for j := range args {
				args[j] = str()
			}
			return AddCustomFunction(m, "pad", funcsig.NewFunction(str(), args...))
		})
		g.Go(func() error {
			// читатели видят только целые снимки
			got, _ := TryGetCustomFunction(m, "pad", MatchExact)
			for a := range got {
				for b := a + 1; b < len(got); b++ {
					if got[a].Signature.Equal(got[b].Signature) {
						return fmt.Errorf("duplicate overload in snapshot")
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	got, _ := TryGetCustomFunction(m, "pad", MatchExact)
	if len(got) != n {
		t.Fatalf("expected %d overloads, got %d", n, len(got))
	}
}

func TestConcurrentFirstUseCreatesOneState(t *testing.T) {
	m := edm.NewModel("Test")
	const n = 32
	seen := make([]*CustomFunctions, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			seen[i] = CustomFunctionsOf(m)
			return nil
		})
	}
	_ = g.Wait()
	for i := 1; i < n; i++ {
		if seen[i] != seen[0] {
			t.Fatalf("goroutine %d saw a different registry", i)
		}
	}
}

func TestModelsAreIsolated(t *testing.T) {
	a, b := edm.NewModel("A"), edm.NewModel("A")
	if err := AddCustomFunction(a, "pad", padSig()); err != nil {
		t.Fatal(err)
	}
	if _, ok := TryGetCustomFunction(b, "pad", MatchExact); ok {
		t.Fatal("registries are keyed by model identity")
	}
}

//go:noinline
func registerOnFreshModel(t *testing.T) weak.Pointer[edm.Model] {
	m := edm.NewModel("Transient")
	if err := AddCustomLiteralPrefix(m, "money", edm.Primitive(edm.KindDecimal, false)); err != nil {
		t.Fatal(err)
	}
	return weak.Make(m)
}

func TestStateDoesNotPinModel(t *testing.T) {
	key := registerOnFreshModel(t)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		runtime.GC()
		if _, ok := states.Load(key); !ok && key.Value() == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("model state outlived its model")
}

func TestLiteralPrefixes(t *testing.T) {
	m := edm.NewModel("Test")
	money := edm.Decimal(edm.MakeFacet(18), edm.MakeFacet(2), false)
	if err := AddCustomLiteralPrefix(m, "money", money); err != nil {
		t.Fatalf("AddCustomLiteralPrefix: %v", err)
	}
	if err := AddCustomLiteralPrefix(m, "money", money); !errors.Is(err, ErrDuplicatePrefix) {
		t.Fatalf("expected ErrDuplicatePrefix, got %v", err)
	}
	tests := []struct {
		prefix string
		want   error
	}{
		{"geography", ErrReservedPrefix},
		{"Geometry", ErrReservedPrefix},
		{"DURATION", ErrReservedPrefix},
		{"binary", ErrReservedPrefix},
		{"X", ErrReservedPrefix},
		{"x", ErrReservedPrefix},
		{"null", ErrReservedPrefix},
		{"True", ErrReservedPrefix},
		{"INF", ErrReservedPrefix},
		{"", ErrInvalidPrefix},
		{"1abc", ErrInvalidPrefix},
		{"a-b", ErrInvalidPrefix},
		{"a.b", ErrInvalidPrefix},
	}
	for _, tt := range tests {
		if err := AddCustomLiteralPrefix(m, tt.prefix, money); !errors.Is(err, tt.want) {
			t.Errorf("AddCustomLiteralPrefix(%q) = %v, want %v", tt.prefix, err, tt.want)
		}
	}
	if err := AddCustomLiteralPrefix(m, "ref", edm.Structured(&edm.StructuredType{Name: "Order", Entity: true}, true)); !errors.Is(err, ErrNotPrimitive) {
		t.Fatalf("expected ErrNotPrimitive, got %v", err)
	}

	reg := LiteralPrefixesOf(m)
	if got, ok := reg.TryGet("MONEY", MatchFold); !ok || got != money {
		t.Fatalf("fold lookup = %v, %v", got, ok)
	}
	if _, ok := reg.TryGet("MONEY", MatchExact); ok {
		t.Fatal("exact lookup must not fold case")
	}
	if len(reg.Snapshot()) != 1 {
		t.Fatalf("snapshot = %v", reg.Snapshot())
	}

	toks, err := lexer.Tokenize("Price eq money'1.25'", lexer.Options{Prefixes: reg})
	if err != nil {
		t.Fatal(err)
	}
	if toks[2].Kind != token.CustomTypeLiteral || toks[2].LiteralTypeRef() != money {
		t.Fatalf("lexer did not use the registry: %v", toks[2].Kind)
	}

	if !RemoveCustomLiteralPrefix(m, "money") || RemoveCustomLiteralPrefix(m, "money") {
		t.Fatal("RemoveCustomLiteralPrefix must remove once")
	}
}

func TestSnapshotUpdateNoChange(t *testing.T) {
	var s Snapshot[string, int]
	if s.Update(func(map[string]int) (map[string]int, bool) { return nil, false }) {
		t.Fatal("no-change update must report false")
	}
	if s.Load() != nil {
		t.Fatal("no-change update must not install a map")
	}
	s.Update(func(cur map[string]int) (map[string]int, bool) {
		return map[string]int{"a": len(cur) + 1}, true
	})
	if s.Load()["a"] != 1 {
		t.Fatalf("unexpected snapshot %v", s.Load())
	}
}
