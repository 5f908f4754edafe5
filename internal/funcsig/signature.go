package funcsig

import (
	"fmt"
	"strings"

	"uriql/internal/edm"
)

// FacetFactory rebuilds an argument type with promoted precision and scale.
type FacetFactory func(precision, scale edm.Facet) *edm.TypeRef

// Signature is an immutable list of argument types. Factories, when
// present, run parallel to the arguments; a nil entry keeps the declared type.
type Signature struct {
	args      []*edm.TypeRef
	factories []FacetFactory
}

// New builds a signature without facet factories.
func New(args ...*edm.TypeRef) Signature {
	return NewWithFactories(args, nil)
}

// NewWithFactories builds a signature. factories must be nil or as long as
// args; nil argument types are not allowed.
func NewWithFactories(args []*edm.TypeRef, factories []FacetFactory) Signature {
	if factories != nil && len(factories) != len(args) {
		panic(fmt.Sprintf("funcsig: %d facet factories for %d arguments", len(factories), len(args)))
	}
	for i, a := range args {
		if a == nil {
			panic(fmt.Sprintf("funcsig: argument %d has no type", i))
		}
	}
	return Signature{
		args:      append([]*edm.TypeRef(nil), args...),
		factories: append([]FacetFactory(nil), factories...),
	}
}

func (s Signature) Arity() int { return len(s.args) }

// Args returns the argument types. Do not modify the returned slice.
func (s Signature) Args() []*edm.TypeRef { return s.args }

func (s Signature) Arg(i int) *edm.TypeRef { return s.args[i] }

// HasFactories reports whether the signature carries facet factories.
func (s Signature) HasFactories() bool { return len(s.factories) > 0 }

// Materialize returns argument i with the given facets applied through its
// factory, or the declared type when there is none.
func (s Signature) Materialize(i int, precision, scale edm.Facet) *edm.TypeRef {
	if i < len(s.factories) && s.factories[i] != nil {
		return s.factories[i](precision, scale)
	}
	return s.args[i]
}

// Equal compares argument types pairwise by structural equivalence.
func (s Signature) Equal(other Signature) bool {
	if len(s.args) != len(other.args) {
		return false
	}
	for i := range s.args {
		if !s.args[i].Equivalent(other.args[i]) {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// WithReturnType is a function overload: arguments plus the result type.
type WithReturnType struct {
	Signature
	Return *edm.TypeRef
}

// NewFunction builds an overload returning ret.
func NewFunction(ret *edm.TypeRef, args ...*edm.TypeRef) WithReturnType {
	if ret == nil {
		panic("funcsig: overload without return type")
	}
	return WithReturnType{Signature: New(args...), Return: ret}
}

// Equal reports structural equality of return and argument types.
func (w WithReturnType) Equal(other WithReturnType) bool {
	return w.Return.Equivalent(other.Return) && w.Signature.Equal(other.Signature)
}

func (w WithReturnType) String() string {
	return w.Signature.String() + " " + w.Return.String()
}

// Contains reports whether an overload structurally equal to sig is in sigs.
func Contains(sigs []WithReturnType, sig WithReturnType) bool {
	return Index(sigs, sig) >= 0
}

// Index returns the position of the first overload equal to sig, or -1.
func Index(sigs []WithReturnType, sig WithReturnType) int {
	for i := range sigs {
		if sigs[i].Equal(sig) {
			return i
		}
	}
	return -1
}
