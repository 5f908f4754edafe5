package driver

import (
	"fmt"
	"sort"

	"uriql/internal/builtin"
	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/promote"
	"uriql/internal/registry"
)

// BinaryResolution is a resolved binary operator application.
type BinaryResolution struct {
	Op          promote.BinaryOp
	Left, Right *edm.TypeRef
	Result      *edm.TypeRef
}

// UnaryResolution is a resolved unary operator application.
type UnaryResolution struct {
	Op      promote.UnaryOp
	Operand *edm.TypeRef
	Result  *edm.TypeRef
}

// ResolveBinary promotes the operands of op ("add", "eq", ...) given by
// type name.
func (s *Session) ResolveBinary(op, left, right string) (BinaryResolution, error) {
	bop, ok := promote.ParseBinaryOp(op)
	if !ok {
		return BinaryResolution{}, fmt.Errorf("unknown binary operator %q", op)
	}
	lt, err := s.ParseType(left)
	if err != nil {
		return BinaryResolution{}, err
	}
	rt, err := s.ParseType(right)
	if err != nil {
		return BinaryResolution{}, err
	}

	idx := s.begin("resolve")
	l, r, ok := promote.PromoteBinary(bop, lt, rt, nil)
	s.end(idx, bop.String())
	if !ok {
		return BinaryResolution{}, fmt.Errorf("%w: %s %s %s", promote.ErrNoMatchingOverload, lt, bop, rt)
	}
	return BinaryResolution{Op: bop, Left: l, Right: r, Result: promote.ResultType(bop, l, r)}, nil
}

// ResolveUnary promotes the operand of op ("negate" or "not").
func (s *Session) ResolveUnary(op, operand string) (UnaryResolution, error) {
	uop, ok := promote.ParseUnaryOp(op)
	if !ok {
		return UnaryResolution{}, fmt.Errorf("unknown unary operator %q", op)
	}
	t, err := s.ParseType(operand)
	if err != nil {
		return UnaryResolution{}, err
	}
	idx := s.begin("resolve")
	p, ok := promote.PromoteUnary(uop, t)
	s.end(idx, uop.String())
	if !ok {
		return UnaryResolution{}, fmt.Errorf("%w: %s %s", promote.ErrNoMatchingOverload, uop, t)
	}
	return UnaryResolution{Op: uop, Operand: p, Result: promote.ResultTypeUnary(uop, p)}, nil
}

// ResolveFunction binds a call of name with arguments given by type name.
func (s *Session) ResolveFunction(name string, args []string) (funcsig.NamedSignature, error) {
	types, err := s.ParseTypes(args)
	if err != nil {
		return funcsig.NamedSignature{}, err
	}
	idx := s.begin("resolve")
	sig, err := promote.ResolveFunction(s.Model, name, types, s.Match())
	s.end(idx, name)
	if err != nil {
		s.Log.Debug("function resolution failed", "name", name, "err", err)
	}
	return sig, err
}

// FunctionListing is the overloads registered under one name, built-in and
// custom ones listed separately.
type FunctionListing struct {
	Name   string
	Custom bool
	Sigs   []funcsig.WithReturnType
}

// Functions lists built-in and custom functions. A non-empty name narrows
// the list to the candidates a call of that name would consider.
func (s *Session) Functions(name string) []FunctionListing {
	var out []FunctionListing
	if name != "" {
		for _, n := range candidateNames(s, name) {
			if sigs, ok := builtin.Lookup(n); ok {
				out = append(out, FunctionListing{Name: n, Sigs: sigs})
			}
			if sigs, ok := registry.CustomFunctionsOf(s.Model).Lookup(n); ok {
				out = append(out, FunctionListing{Name: n, Custom: true, Sigs: sigs})
			}
		}
		return out
	}

	custom := registry.CustomFunctionsOf(s.Model)
	for _, n := range builtin.Names() {
		sigs, _ := builtin.Lookup(n)
		out = append(out, FunctionListing{Name: n, Sigs: sigs})
	}
	for _, n := range custom.Names() {
		sigs, _ := custom.Lookup(n)
		out = append(out, FunctionListing{Name: n, Custom: true, Sigs: sigs})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// candidateNames returns the distinct registered names a lookup of name
// matches, sorted.
func candidateNames(s *Session, name string) []string {
	seen := map[string]bool{}
	var names []string
	for _, c := range promote.FunctionCandidates(s.Model, name, s.Match()) {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}
