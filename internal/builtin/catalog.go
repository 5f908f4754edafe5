// Package builtin holds the fixed catalog of built-in query functions. The
// catalog is built once on first use and never changes afterwards.
package builtin

import (
	"slices"
	"sort"
	"sync"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

type catalogMap = map[string][]funcsig.WithReturnType

var catalog = sync.OnceValue(build)

// Lookup returns the overloads of a built-in function; the name is matched
// exactly. The returned slice is shared, do not modify its elements.
func Lookup(name string) ([]funcsig.WithReturnType, bool) {
	sigs, ok := catalog()[name]
	return sigs, ok
}

// LookupFold returns the overloads of every built-in whose name matches
// under case folding, each paired with its catalog name.
func LookupFold(name string) []funcsig.NamedSignature {
	var out []funcsig.NamedSignature
	for _, n := range Names() {
		if !funcsig.EqualFold(n, name) {
			continue
		}
		for _, sig := range catalog()[n] {
			out = append(out, funcsig.NamedSignature{Name: n, Signature: sig})
		}
	}
	return out
}

// Contains reports whether sig is structurally equal to a built-in overload
// of name.
func Contains(name string, sig funcsig.WithReturnType) bool {
	sigs, ok := Lookup(name)
	return ok && funcsig.Contains(sigs, sig)
}

var sortedNames = sync.OnceValue(func() []string {
	names := make([]string, 0, len(catalog()))
	for n := range catalog() {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
})

// Names returns every built-in function name in sorted order.
func Names() []string {
	return slices.Clone(sortedNames())
}

func build() catalogMap {
	fns := make(catalogMap, 48)
	addStringFunctions(fns)
	addDateTimeFunctions(fns)
	addMathFunctions(fns)
	addSpatialFunctions(fns)
	for name, sigs := range fns {
		fns[name] = slices.Clip(sigs)
	}
	return fns
}

func prim(kind edm.PrimitiveKind, nullable bool) *edm.TypeRef {
	return edm.Primitive(kind, nullable)
}

// argPairs returns ret(kind) and ret(kind?) for every argument kind.
func argPairs(ret *edm.TypeRef, kinds ...edm.PrimitiveKind) []funcsig.WithReturnType {
	out := make([]funcsig.WithReturnType, 0, 2*len(kinds))
	for _, k := range kinds {
		out = append(out,
			funcsig.NewFunction(ret, prim(k, false)),
			funcsig.NewFunction(ret, prim(k, true)),
		)
	}
	return out
}

// sameTypePairs returns kind(kind) and kind(kind?) for every kind.
func sameTypePairs(kinds ...edm.PrimitiveKind) []funcsig.WithReturnType {
	out := make([]funcsig.WithReturnType, 0, 2*len(kinds))
	for _, k := range kinds {
		out = append(out, argPairs(prim(k, false), k)...)
	}
	return out
}

// permutations returns ret(head..., tail) for every nullable and
// non-nullable combination of the tail kinds.
func permutations(ret *edm.TypeRef, head []*edm.TypeRef, tail ...edm.PrimitiveKind) []funcsig.WithReturnType {
	n := len(tail)
	out := make([]funcsig.WithReturnType, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		args := append([]*edm.TypeRef(nil), head...)
		for i, k := range tail {
			args = append(args, prim(k, mask&(1<<i) != 0))
		}
		out = append(out, funcsig.NewFunction(ret, args...))
	}
	return out
}
