package promote

import (
	"sync"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

type table = []funcsig.Signature

func prim(kind edm.PrimitiveKind, nullable bool) *edm.TypeRef {
	return edm.Primitive(kind, nullable)
}

// facetFactory rebuilds kind with promoted facets; nil for kinds without facets.
func facetFactory(kind edm.PrimitiveKind, nullable bool) funcsig.FacetFactory {
	switch {
	case kind == edm.KindDecimal:
		return func(p, s edm.Facet) *edm.TypeRef { return edm.Decimal(p, s, nullable) }
	case kind.IsTemporal():
		return func(p, _ edm.Facet) *edm.TypeRef { return edm.Temporal(kind, p, nullable) }
	}
	return nil
}

func hasFacets(kind edm.PrimitiveKind) bool {
	return kind == edm.KindDecimal || kind.IsTemporal()
}

// pair returns the non-nullable and the nullable form of a signature over
// the given kinds.
func pair(kinds ...edm.PrimitiveKind) table {
	out := make(table, 0, 2)
	for _, nullable := range []bool{false, true} {
		args := make([]*edm.TypeRef, len(kinds))
		var factories []funcsig.FacetFactory
		for i, k := range kinds {
			args[i] = prim(k, nullable)
			if hasFacets(k) {
				if factories == nil {
					factories = make([]funcsig.FacetFactory, len(kinds))
				}
				factories[i] = facetFactory(k, nullable)
			}
		}
		out = append(out, funcsig.NewWithFactories(args, factories))
	}
	return out
}

func pairs(kinds [][]edm.PrimitiveKind) table {
	var out table
	for _, ks := range kinds {
		out = append(out, pair(ks...)...)
	}
	return out
}

func same(kinds ...edm.PrimitiveKind) [][]edm.PrimitiveKind {
	out := make([][]edm.PrimitiveKind, len(kinds))
	for i, k := range kinds {
		out[i] = []edm.PrimitiveKind{k, k}
	}
	return out
}

var numericKinds = []edm.PrimitiveKind{
	edm.KindInt32, edm.KindInt64, edm.KindSingle, edm.KindDouble, edm.KindDecimal,
}

type tables struct {
	logical    table
	arithmetic table
	relational table
	addition   table
	subtract   table
	negation   table
	not        table
}

var operatorTables = sync.OnceValue(func() *tables {
	t := &tables{}
	t.logical = pair(edm.KindBoolean, edm.KindBoolean)
	t.arithmetic = pairs(same(numericKinds...))

	t.relational = append(t.arithmetic[:len(t.arithmetic):len(t.arithmetic)], pairs(same(
		edm.KindBoolean, edm.KindDateTimeOffset, edm.KindGuid, edm.KindString,
		edm.KindBinary, edm.KindDate, edm.KindTimeOfDay, edm.KindDuration,
	))...)

	t.addition = append(t.arithmetic[:len(t.arithmetic):len(t.arithmetic)], pairs([][]edm.PrimitiveKind{
		{edm.KindDateTimeOffset, edm.KindDuration},
		{edm.KindDuration, edm.KindDuration},
		{edm.KindDate, edm.KindDuration},
	})...)

	t.subtract = append(t.addition[:len(t.addition):len(t.addition)], pairs([][]edm.PrimitiveKind{
		{edm.KindDateTimeOffset, edm.KindDateTimeOffset},
		{edm.KindDate, edm.KindDate},
	})...)

	for _, k := range append(numericKinds[:len(numericKinds):len(numericKinds)], edm.KindDuration) {
		t.negation = append(t.negation, pair(k)...)
	}
	t.not = pair(edm.KindBoolean)
	return t
})

func binaryTable(op BinaryOp) table {
	t := operatorTables()
	switch op {
	case OpOr, OpAnd:
		return t.logical
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual:
		return t.relational
	case OpAdd:
		return t.addition
	case OpSubtract:
		return t.subtract
	case OpMultiply, OpDivide, OpModulo:
		return t.arithmetic
	}
	// has работает только для enum и разбирается до таблиц
	return nil
}

func unaryTable(op UnaryOp) table {
	t := operatorTables()
	switch op {
	case OpNegate:
		return t.negation
	case OpNot:
		return t.not
	}
	return nil
}
