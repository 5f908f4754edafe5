package edm

import (
	"fmt"
	"strings"
)

// PrimitiveKind enumerates the primitive EDM types the query core knows about.
type PrimitiveKind uint8

const (
	KindNone PrimitiveKind = iota
	KindBinary
	KindBoolean
	KindByte
	KindDate
	KindDateTimeOffset
	KindDecimal
	KindDouble
	KindDuration
	KindGuid
	KindInt16
	KindInt32
	KindInt64
	KindSByte
	KindSingle
	KindStream
	KindString
	KindTimeOfDay
	KindGeography
	KindGeographyPoint
	KindGeographyLineString
	KindGeographyPolygon
	KindGeographyMultiPoint
	KindGeographyMultiLineString
	KindGeographyMultiPolygon
	KindGeographyCollection
	KindGeometry
	KindGeometryPoint
	KindGeometryLineString
	KindGeometryPolygon
	KindGeometryMultiPoint
	KindGeometryMultiLineString
	KindGeometryMultiPolygon
	KindGeometryCollection
)

var kindNames = [...]string{
	KindNone:                     "None",
	KindBinary:                   "Binary",
	KindBoolean:                  "Boolean",
	KindByte:                     "Byte",
	KindDate:                     "Date",
	KindDateTimeOffset:           "DateTimeOffset",
	KindDecimal:                  "Decimal",
	KindDouble:                   "Double",
	KindDuration:                 "Duration",
	KindGuid:                     "Guid",
	KindInt16:                    "Int16",
	KindInt32:                    "Int32",
	KindInt64:                    "Int64",
	KindSByte:                    "SByte",
	KindSingle:                   "Single",
	KindStream:                   "Stream",
	KindString:                   "String",
	KindTimeOfDay:                "TimeOfDay",
	KindGeography:                "Geography",
	KindGeographyPoint:           "GeographyPoint",
	KindGeographyLineString:      "GeographyLineString",
	KindGeographyPolygon:         "GeographyPolygon",
	KindGeographyMultiPoint:      "GeographyMultiPoint",
	KindGeographyMultiLineString: "GeographyMultiLineString",
	KindGeographyMultiPolygon:    "GeographyMultiPolygon",
	KindGeographyCollection:      "GeographyCollection",
	KindGeometry:                 "Geometry",
	KindGeometryPoint:            "GeometryPoint",
	KindGeometryLineString:       "GeometryLineString",
	KindGeometryPolygon:          "GeometryPolygon",
	KindGeometryMultiPoint:       "GeometryMultiPoint",
	KindGeometryMultiLineString:  "GeometryMultiLineString",
	KindGeometryMultiPolygon:     "GeometryMultiPolygon",
	KindGeometryCollection:       "GeometryCollection",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("PrimitiveKind(%d)", k)
}

// FullName returns the qualified "Edm." name.
func (k PrimitiveKind) FullName() string {
	return "Edm." + k.String()
}

// ParsePrimitiveKind accepts both "Edm.Int32" and "Int32".
func ParsePrimitiveKind(name string) (PrimitiveKind, bool) {
	name = strings.TrimPrefix(name, "Edm.")
	for k := KindBinary; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindNone, false
}

func (k PrimitiveKind) IsSignedIntegral() bool {
	switch k {
	case KindSByte, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

func (k PrimitiveKind) IsUnsignedIntegral() bool {
	return k == KindByte
}

func (k PrimitiveKind) IsSpatial() bool {
	return k >= KindGeography && k <= KindGeometryCollection
}

func (k PrimitiveKind) IsGeography() bool {
	return k >= KindGeography && k <= KindGeographyCollection
}

func (k PrimitiveKind) IsGeometry() bool {
	return k >= KindGeometry && k <= KindGeometryCollection
}

// IsTemporal reports kinds that carry a precision facet for fractional seconds.
func (k PrimitiveKind) IsTemporal() bool {
	switch k {
	case KindDateTimeOffset, KindDuration, KindTimeOfDay:
		return true
	}
	return false
}

// IsValueType reports kinds whose values are not references (everything but
// String, Binary, Stream and the spatial family).
func (k PrimitiveKind) IsValueType() bool {
	switch {
	case k == KindNone, k == KindString, k == KindBinary, k == KindStream, k.IsSpatial():
		return false
	}
	return true
}

// TypeKind classifies a type definition.
type TypeKind uint8

const (
	TypeKindNone TypeKind = iota
	TypeKindPrimitive
	TypeKindEnum
	TypeKindComplex
	TypeKindEntity
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindEnum:
		return "enum"
	case TypeKindComplex:
		return "complex"
	case TypeKindEntity:
		return "entity"
	default:
		return "none"
	}
}
