package edm

import (
	"fmt"
	"strconv"
	"strings"
)

// Model is a schema model instance. Its pointer identity scopes the
// extension registries; the model itself only keeps named type definitions.
// A Model is populated once and then read concurrently; AddType is not safe
// to call while other goroutines read the model.
type Model struct {
	Namespace string
	types     map[string]Type
}

// NewModel creates an empty model.
func NewModel(namespace string) *Model {
	return &Model{Namespace: namespace, types: make(map[string]Type)}
}

// AddType registers a named enum or structured definition.
func (m *Model) AddType(t Type) error {
	if t == nil || t.TypeKind() == TypeKindPrimitive {
		return fmt.Errorf("edm: only enum and structured types can be added")
	}
	name := t.FullName()
	if _, exists := m.types[name]; exists {
		return fmt.Errorf("edm: type %q already defined", name)
	}
	m.types[name] = t
	return nil
}

// FindType looks a named definition up by qualified or model-local name.
func (m *Model) FindType(name string) (Type, bool) {
	if t, ok := m.types[name]; ok {
		return t, true
	}
	if m.Namespace != "" {
		t, ok := m.types[m.Namespace+"."+name]
		return t, ok
	}
	return nil, false
}

// ParseTypeRef resolves names like "Edm.Int32", "Int32?", "Sales.Color" or
// "Edm.Decimal(18,2)". A trailing '?' marks the reference nullable.
func (m *Model) ParseTypeRef(text string) (*TypeRef, error) {
	text = strings.TrimSpace(text)
	nullable := strings.HasSuffix(text, "?")
	text = strings.TrimSuffix(text, "?")
	var facets []string
	if open := strings.IndexByte(text, '('); open >= 0 && strings.HasSuffix(text, ")") {
		facets = strings.Split(text[open+1:len(text)-1], ",")
		text = text[:open]
	}
	if kind, ok := ParsePrimitiveKind(text); ok {
		ref := Primitive(kind, nullable)
		if err := applyFacets(ref, facets); err != nil {
			return nil, fmt.Errorf("edm: %s: %w", text, err)
		}
		return ref, nil
	}
	if len(facets) > 0 {
		return nil, fmt.Errorf("edm: facets are only valid on primitive types: %q", text)
	}
	if m != nil {
		if t, ok := m.FindType(text); ok {
			return &TypeRef{Def: t, Nullable: nullable}, nil
		}
	}
	return nil, fmt.Errorf("edm: unknown type %q", text)
}

func applyFacets(ref *TypeRef, facets []string) error {
	if len(facets) == 0 {
		return nil
	}
	kind := ref.PrimitiveKind()
	if kind != KindDecimal && !kind.IsTemporal() {
		return fmt.Errorf("type does not accept facets")
	}
	if len(facets) > 2 || (len(facets) == 2 && kind != KindDecimal) {
		return fmt.Errorf("too many facets")
	}
	for i, raw := range facets {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "null" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid facet %q", raw)
		}
		v := int32(n)
		if i == 0 {
			ref.Precision = MakeFacet(v)
		} else {
			ref.Scale = MakeFacet(v)
		}
	}
	return nil
}
