package token

import (
	"uriql/internal/edm"
	"uriql/internal/source"
)

// Token represents a single classified span of a query expression.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// LiteralType is set only for CustomTypeLiteral.
	LiteralType *edm.TypeRef
}

// Pos returns the byte offset of the token in the source.
func (t Token) Pos() uint32 { return t.Span.Start }

// IsLiteral reports whether the token is a literal of any shape.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// Is reports whether the token has one of the kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// LiteralTypeRef returns the primitive type of a literal token: the
// registered type for custom literals, the kind-derived non-nullable type for
// built-in literals, and nil for null and unrecognised quoted literals.
func (t Token) LiteralTypeRef() *edm.TypeRef {
	if t.Kind == CustomTypeLiteral {
		return t.LiteralType
	}
	pk, ok := t.Kind.PrimitiveKind()
	if !ok {
		return nil
	}
	return edm.Primitive(pk, false)
}
