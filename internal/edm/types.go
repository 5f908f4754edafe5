package edm

import "fmt"

// Type is a type definition: a primitive, an enum, or a structured type.
type Type interface {
	TypeKind() TypeKind
	FullName() string
}

// PrimitiveType is the definition of a primitive kind.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (PrimitiveType) TypeKind() TypeKind  { return TypeKindPrimitive }
func (p PrimitiveType) FullName() string { return p.Kind.FullName() }

// EnumMember is a named enum value.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumType is an enumeration defined in a model.
type EnumType struct {
	Namespace  string
	Name       string
	Underlying PrimitiveKind
	Flags      bool
	Members    []EnumMember
}

func (*EnumType) TypeKind() TypeKind { return TypeKindEnum }

func (e *EnumType) FullName() string { return qualify(e.Namespace, e.Name) }

// Member looks a member up by name.
func (e *EnumType) Member(name string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return EnumMember{}, false
}

// StructuredType is an entity or complex type with optional single inheritance.
type StructuredType struct {
	Namespace string
	Name      string
	Entity    bool
	Base      *StructuredType
}

func (s *StructuredType) TypeKind() TypeKind {
	if s.Entity {
		return TypeKindEntity
	}
	return TypeKindComplex
}

func (s *StructuredType) FullName() string { return qualify(s.Namespace, s.Name) }

// IsAssignableFrom reports whether a value of other can be used where s is
// expected, i.e. other is s or derives from it.
func (s *StructuredType) IsAssignableFrom(other *StructuredType) bool {
	for cur := other; cur != nil; cur = cur.Base {
		if sameStructured(s, cur) {
			return true
		}
	}
	return false
}

func sameStructured(a, b *StructuredType) bool {
	if a == b {
		return true
	}
	return a.Entity == b.Entity && a.FullName() == b.FullName()
}

// SameDefinition compares two definitions structurally: primitives by kind,
// named types by kind and qualified name.
func SameDefinition(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TypeKind() != b.TypeKind() {
		return false
	}
	if pa, ok := a.(PrimitiveType); ok {
		pb, _ := b.(PrimitiveType)
		return pa.Kind == pb.Kind
	}
	return a.FullName() == b.FullName()
}

func qualify(ns, name string) string {
	if ns == "" {
		return name
	}
	return fmt.Sprintf("%s.%s", ns, name)
}
