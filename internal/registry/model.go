package registry

import (
	"runtime"
	"sync"
	"weak"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

// modelState is everything registered for one model. It must not point back
// at the model, or the model would never be collected.
type modelState struct {
	prefixes  LiteralPrefixes
	functions CustomFunctions
}

// states: weak.Pointer[edm.Model] -> *modelState.
var states sync.Map

// stateFor returns the state of m, creating it on first use. LoadOrStore
// decides the race between concurrent creators, so a model never ends up
// with two states.
func stateFor(m *edm.Model) *modelState {
	if m == nil {
		panic("registry: nil model")
	}
	key := weak.Make(m)
	if st, ok := states.Load(key); ok {
		return st.(*modelState)
	}
	st, loaded := states.LoadOrStore(key, &modelState{})
	if !loaded {
		runtime.AddCleanup(m, func(k weak.Pointer[edm.Model]) { states.Delete(k) }, key)
	}
	return st.(*modelState)
}

// LiteralPrefixesOf returns the literal prefix registry of m.
func LiteralPrefixesOf(m *edm.Model) *LiteralPrefixes {
	return &stateFor(m).prefixes
}

// CustomFunctionsOf returns the custom function registry of m.
func CustomFunctionsOf(m *edm.Model) *CustomFunctions {
	return &stateFor(m).functions
}

// AddCustomFunction registers sig under name for m. Errors wrap
// ErrBuiltinSignature, ErrDuplicateOverload, ErrEmptyName or ErrNilType.
func AddCustomFunction(m *edm.Model, name string, sig funcsig.WithReturnType) error {
	return CustomFunctionsOf(m).Add(name, sig)
}

// RemoveCustomFunction removes the overload of name structurally equal to sig.
func RemoveCustomFunction(m *edm.Model, name string, sig funcsig.WithReturnType) bool {
	return CustomFunctionsOf(m).Remove(name, sig)
}

// RemoveCustomFunctions removes every overload of name.
func RemoveCustomFunctions(m *edm.Model, name string) bool {
	return CustomFunctionsOf(m).RemoveAll(name)
}

// TryGetCustomFunction looks custom overloads up by name.
func TryGetCustomFunction(m *edm.Model, name string, match Match) ([]funcsig.NamedSignature, bool) {
	return CustomFunctionsOf(m).TryGet(name, match)
}

// AddCustomLiteralPrefix registers prefix for typ on m.
func AddCustomLiteralPrefix(m *edm.Model, prefix string, typ *edm.TypeRef) error {
	return LiteralPrefixesOf(m).Add(prefix, typ)
}

// RemoveCustomLiteralPrefix removes prefix from m.
func RemoveCustomLiteralPrefix(m *edm.Model, prefix string) bool {
	return LiteralPrefixesOf(m).Remove(prefix)
}
