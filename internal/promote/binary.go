package promote

import "uriql/internal/edm"

// FacetRules combines the precision and scale facets of two operands.
type FacetRules interface {
	PromotePrecision(left, right edm.Facet) edm.Facet
	PromoteScale(left, right edm.Facet) edm.Facet
}

// DefaultFacetRules keeps the larger facet; an unset side yields to the
// other.
type DefaultFacetRules struct{}

func (DefaultFacetRules) PromotePrecision(l, r edm.Facet) edm.Facet { return edm.MaxFacet(l, r) }
func (DefaultFacetRules) PromoteScale(l, r edm.Facet) edm.Facet     { return edm.MaxFacet(l, r) }

func facets(t *edm.TypeRef) (precision, scale edm.Facet) {
	if t == nil {
		return edm.Facet{}, edm.Facet{}
	}
	return t.Precision, t.Scale
}

// PromoteBinary returns the types both operands of op are converted to
// before evaluation. A nil operand is the null literal or an open property.
// ok is false when no signature of op accepts the operands.
func PromoteBinary(op BinaryOp, left, right *edm.TypeRef, rules FacetRules) (l, r *edm.TypeRef, ok bool) {
	if left == nil && right == nil {
		return nil, nil, true
	}
	if rules == nil {
		rules = DefaultFacetRules{}
	}

	if op.IsEquality() {
		if l, r, handled, ok := promoteStructuredEquality(left, right); handled {
			return l, r, ok
		}
		// null сравнивается с enum и spatial значениями напрямую
		if left == nil && (right.IsEnum() || right.IsSpatial()) {
			return right, right, true
		}
		if right == nil && (left.IsEnum() || left.IsSpatial()) {
			return left, left, true
		}
	}

	switch {
	case left.IsEnum() && right.IsEnum():
		if left.FullName() != right.FullName() {
			return nil, nil, false
		}
		return left, right, true
	case left.IsEnum() && right.IsString():
		return left, left, true
	case right.IsEnum() && left.IsString():
		return right, right, true
	}

	if (left != nil && !left.IsPrimitive()) || (right != nil && !right.IsPrimitive()) {
		return nil, nil, false
	}

	tbl := binaryTable(op)
	idx, found := selectBest(tbl, []*edm.TypeRef{left, right}, true)
	if !found {
		return nil, nil, false
	}
	lp, ls := facets(left)
	rp, rs := facets(right)
	p := rules.PromotePrecision(lp, rp)
	s := rules.PromoteScale(ls, rs)
	sig := tbl[idx]
	return sig.Materialize(0, p, s), sig.Materialize(1, p, s), true
}

// promoteStructuredEquality handles eq/ne when either side is an entity or
// complex type. handled is false when neither side is structured.
func promoteStructuredEquality(left, right *edm.TypeRef) (l, r *edm.TypeRef, handled, ok bool) {
	switch {
	case left.IsStructured():
		switch {
		case right == nil:
			return left, left, true, true
		case !right.IsStructured():
			return nil, nil, true, false
		case left.SameDefinition(right):
			if left.Nullable {
				return left, left, true, true
			}
			return right, right, true, true
		case CanConvert(left, right):
			return right, right, true, true
		case CanConvert(right, left):
			return left, left, true, true
		}
		return nil, nil, true, false
	case right.IsStructured():
		if left == nil {
			return right, right, true, true
		}
		return nil, nil, true, false
	}
	return nil, nil, false, false
}

// PromoteUnary returns the type the operand of op is converted to. A nil
// operand stays nil.
func PromoteUnary(op UnaryOp, operand *edm.TypeRef) (*edm.TypeRef, bool) {
	if operand == nil {
		return nil, true
	}
	if !operand.IsPrimitive() {
		return nil, false
	}
	tbl := unaryTable(op)
	idx, found := selectBest(tbl, []*edm.TypeRef{operand}, true)
	if !found {
		return nil, false
	}
	p, s := facets(operand)
	return tbl[idx].Materialize(0, p, s), true
}

// ResultType is the type of op applied to operands already promoted by
// PromoteBinary. Comparisons yield Boolean; the difference of two instants
// or two dates is a Duration; other operators keep the left type.
func ResultType(op BinaryOp, left, right *edm.TypeRef) *edm.TypeRef {
	nullable := left == nil || right == nil || left.Nullable || right.Nullable
	switch {
	case op.IsComparison():
		return edm.Primitive(edm.KindBoolean, nullable)
	case op == OpSubtract && left.SameDefinition(right):
		switch left.PrimitiveKind() {
		case edm.KindDateTimeOffset, edm.KindDate:
			return edm.Primitive(edm.KindDuration, nullable)
		}
	}
	if left == nil {
		return right
	}
	return left
}

// ResultTypeUnary is the type of a unary operator over its promoted operand.
func ResultTypeUnary(op UnaryOp, operand *edm.TypeRef) *edm.TypeRef {
	if op == OpNot {
		return edm.Primitive(edm.KindBoolean, operand == nil || operand.Nullable)
	}
	return operand
}
