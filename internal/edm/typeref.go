package edm

import "strings"

// TypeRef is a reference to a type definition together with its facets.
// A nil *TypeRef stands for the type of the null literal or of an open
// (dynamic) property, whose type is only known at run time.
type TypeRef struct {
	Def       Type
	Nullable  bool
	Precision Facet
	Scale     Facet
}

// Primitive returns a reference to the primitive kind.
func Primitive(kind PrimitiveKind, nullable bool) *TypeRef {
	return &TypeRef{Def: PrimitiveType{Kind: kind}, Nullable: nullable}
}

// Decimal returns a decimal reference with precision and scale.
func Decimal(precision, scale Facet, nullable bool) *TypeRef {
	return &TypeRef{Def: PrimitiveType{Kind: KindDecimal}, Nullable: nullable, Precision: precision, Scale: scale}
}

// Temporal returns a DateTimeOffset, Duration or TimeOfDay reference with the
// fractional-seconds precision facet.
func Temporal(kind PrimitiveKind, precision Facet, nullable bool) *TypeRef {
	return &TypeRef{Def: PrimitiveType{Kind: kind}, Nullable: nullable, Precision: precision}
}

// Enum returns a reference to an enum definition.
func Enum(e *EnumType, nullable bool) *TypeRef {
	return &TypeRef{Def: e, Nullable: nullable}
}

// Structured returns a reference to an entity or complex definition.
func Structured(s *StructuredType, nullable bool) *TypeRef {
	return &TypeRef{Def: s, Nullable: nullable}
}

// PrimitiveKind returns the primitive kind or KindNone for non-primitive refs.
func (r *TypeRef) PrimitiveKind() PrimitiveKind {
	if r == nil {
		return KindNone
	}
	if p, ok := r.Def.(PrimitiveType); ok {
		return p.Kind
	}
	return KindNone
}

func (r *TypeRef) IsPrimitive() bool {
	return r != nil && r.Def != nil && r.Def.TypeKind() == TypeKindPrimitive
}

func (r *TypeRef) IsEnum() bool {
	return r != nil && r.Def != nil && r.Def.TypeKind() == TypeKindEnum
}

func (r *TypeRef) IsStructured() bool {
	if r == nil || r.Def == nil {
		return false
	}
	k := r.Def.TypeKind()
	return k == TypeKindEntity || k == TypeKindComplex
}

func (r *TypeRef) IsString() bool { return r.PrimitiveKind() == KindString }

func (r *TypeRef) IsSpatial() bool { return r.PrimitiveKind().IsSpatial() }

// IsValueType reports primitive value kinds and enums.
func (r *TypeRef) IsValueType() bool {
	return r.IsEnum() || r.PrimitiveKind().IsValueType()
}

// FullName returns the qualified name of the definition.
func (r *TypeRef) FullName() string {
	if r == nil || r.Def == nil {
		return "null"
	}
	return r.Def.FullName()
}

// StructuredDef returns the structured definition, or nil.
func (r *TypeRef) StructuredDef() *StructuredType {
	if r == nil {
		return nil
	}
	s, _ := r.Def.(*StructuredType)
	return s
}

// WithNullable returns a copy with the given nullability.
func (r *TypeRef) WithNullable(nullable bool) *TypeRef {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Nullable = nullable
	return &cp
}

// SameDefinition compares definitions, ignoring nullability and facets.
func (r *TypeRef) SameDefinition(other *TypeRef) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return SameDefinition(r.Def, other.Def)
}

// Equivalent compares definition, nullability and facets structurally.
func (r *TypeRef) Equivalent(other *TypeRef) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return r.Nullable == other.Nullable &&
		r.Precision == other.Precision &&
		r.Scale == other.Scale &&
		SameDefinition(r.Def, other.Def)
}

func (r *TypeRef) String() string {
	if r == nil {
		return "null"
	}
	var sb strings.Builder
	sb.WriteString(r.FullName())
	if r.Precision.IsSet() || r.Scale.IsSet() {
		sb.WriteByte('(')
		sb.WriteString(r.Precision.String())
		if r.PrimitiveKind() == KindDecimal {
			sb.WriteByte(',')
			sb.WriteString(r.Scale.String())
		}
		sb.WriteByte(')')
	}
	if r.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}
