package promote

import "uriql/internal/edm"

// CanPromote reports whether an operand of type source may be passed where
// target is expected. A nil source (null literal or open property) fits any
// nullable target.
func CanPromote(source, target *edm.TypeRef) bool {
	if target == nil {
		return false
	}
	if source == nil {
		return target.Nullable
	}
	return CanConvert(source, target)
}

// CanConvert reports an implicit conversion from source to target.
// Nullability is not an obstacle: a nullable value may flow into a
// non-nullable slot and vice versa.
func CanConvert(source, target *edm.TypeRef) bool {
	switch {
	case source == nil || target == nil:
		return false
	case source.Equivalent(target):
		return true
	case target.IsStructured():
		return source.IsStructured() && target.StructuredDef().IsAssignableFrom(source.StructuredDef())
	case source.IsEnum() || target.IsEnum():
		return source.SameDefinition(target)
	case source.IsPrimitive() && target.IsPrimitive():
		return canConvertPrimitive(source.PrimitiveKind(), target.PrimitiveKind())
	}
	return false
}

func canConvertPrimitive(src, dst edm.PrimitiveKind) bool {
	if src == dst {
		return true
	}
	switch src {
	case edm.KindSByte, edm.KindByte:
		return dst == edm.KindInt16 || numericAbove(edm.KindInt16, dst)
	case edm.KindInt16:
		return numericAbove(edm.KindInt16, dst)
	case edm.KindInt32, edm.KindInt64, edm.KindSingle, edm.KindDouble:
		return numericAbove(src, dst)
	case edm.KindDate:
		return dst == edm.KindDateTimeOffset
	}
	switch dst {
	case edm.KindGeography:
		return src.IsGeography()
	case edm.KindGeometry:
		return src.IsGeometry()
	}
	return false
}

// widening задаёт порядок Int16 < Int32 < Int64 < Single < Double < Decimal
var widening = map[edm.PrimitiveKind]int{
	edm.KindInt16:   1,
	edm.KindInt32:   2,
	edm.KindInt64:   3,
	edm.KindSingle:  4,
	edm.KindDouble:  5,
	edm.KindDecimal: 6,
}

func numericAbove(src, dst edm.PrimitiveKind) bool {
	s, ok1 := widening[src]
	d, ok2 := widening[dst]
	return ok1 && ok2 && d > s
}
