package promote

import (
	"errors"
	"fmt"
	"strings"

	"uriql/internal/builtin"
	"uriql/internal/diag"
	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/registry"
)

var (
	ErrUnknownFunction    = errors.New("unknown function")
	ErrNoMatchingOverload = errors.New("no function signature matches the arguments")
)

// ErrorCode maps resolution errors to diagnostic codes.
func ErrorCode(err error) diag.Code {
	switch {
	case errors.Is(err, ErrUnknownFunction):
		return diag.ResUnknownFunction
	case errors.Is(err, ErrNoMatchingOverload):
		return diag.ResNoMatch
	}
	return diag.ResInfo
}

// FindBestFunction picks the overload the arguments bind to. Arity must
// match, every argument must promote to its parameter, and the winner must
// not be dominated by another applicable overload. Unlike operators, ties
// are never broken by nullability.
func FindBestFunction(sigs []funcsig.WithReturnType, args []*edm.TypeRef) (funcsig.WithReturnType, bool) {
	i, ok := bestFunction(sigs, args)
	if !ok {
		return funcsig.WithReturnType{}, false
	}
	return sigs[i], true
}

func bestFunction(sigs []funcsig.WithReturnType, args []*edm.TypeRef) (int, bool) {
	cands := make([]funcsig.Signature, len(sigs))
	for i := range sigs {
		cands[i] = sigs[i].Signature
	}
	return selectBest(cands, args, false)
}

// FunctionCandidates collects the built-in and custom overloads of name
// registered against m. The model may be nil, leaving built-ins only.
func FunctionCandidates(m *edm.Model, name string, match registry.Match) []funcsig.NamedSignature {
	var out []funcsig.NamedSignature
	if match == registry.MatchFold {
		out = builtin.LookupFold(name)
	} else if sigs, ok := builtin.Lookup(name); ok {
		out = make([]funcsig.NamedSignature, 0, len(sigs))
		for _, sig := range sigs {
			out = append(out, funcsig.NamedSignature{Name: name, Signature: sig})
		}
	}
	if m != nil {
		if custom, ok := registry.TryGetCustomFunction(m, name, match); ok {
			out = append(out, custom...)
		}
	}
	return out
}

// ResolveFunction binds a call of name to a single overload.
func ResolveFunction(m *edm.Model, name string, args []*edm.TypeRef, match registry.Match) (funcsig.NamedSignature, error) {
	cands := FunctionCandidates(m, name, match)
	if len(cands) == 0 {
		return funcsig.NamedSignature{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	sigs := make([]funcsig.WithReturnType, len(cands))
	for i := range cands {
		sigs[i] = cands[i].Signature
	}
	i, ok := bestFunction(sigs, args)
	if !ok {
		return funcsig.NamedSignature{}, fmt.Errorf("%w: %s%s; candidates:\n%s",
			ErrNoMatchingOverload, name, argList(args), funcsig.DescribeNamed(cands))
	}
	return cands[i], nil
}

func argList(args []*edm.TypeRef) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
