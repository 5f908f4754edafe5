package token

import (
	"fmt"

	"uriql/internal/edm"
)

// Kind represents the category of a query token.
type Kind uint8

const (
	// Unknown marks a token that could not be classified.
	Unknown Kind = iota
	// End marks the end of the expression.
	End

	// Identifier is a bare identifier such as a property or function name.
	Identifier
	// ParameterAlias is an @name reference (function-parameter mode only).
	ParameterAlias
	// BracketedExpression is a balanced {...} or [...] run, e.g. JSON.
	BracketedExpression

	OpenParen  // (
	CloseParen // )
	Comma      // ,
	Dot        // .
	Colon      // :
	Minus      // -
	Equal      // =
	Slash      // /
	Question   // ?
	Star       // *
	SemiColon  // ; (semicolon-delimited mode only)

	NullLiteral
	BooleanLiteral
	StringLiteral
	IntegerLiteral
	Int64Literal
	SingleLiteral
	DoubleLiteral
	DecimalLiteral
	GuidLiteral
	DateLiteral
	DateTimeOffsetLiteral
	TimeOfDayLiteral
	DurationLiteral
	BinaryLiteral
	GeographyLiteral
	GeometryLiteral
	// QuotedLiteral is identifier'...' with an unrecognised prefix.
	QuotedLiteral
	// CustomTypeLiteral is prefix'...' with a prefix registered on the model.
	CustomTypeLiteral
)

var kindNames = [...]string{
	Unknown:               "Unknown",
	End:                   "End",
	Identifier:            "Identifier",
	ParameterAlias:        "ParameterAlias",
	BracketedExpression:   "BracketedExpression",
	OpenParen:             "OpenParen",
	CloseParen:            "CloseParen",
	Comma:                 "Comma",
	Dot:                   "Dot",
	Colon:                 "Colon",
	Minus:                 "Minus",
	Equal:                 "Equal",
	Slash:                 "Slash",
	Question:              "Question",
	Star:                  "Star",
	SemiColon:             "SemiColon",
	NullLiteral:           "NullLiteral",
	BooleanLiteral:        "BooleanLiteral",
	StringLiteral:         "StringLiteral",
	IntegerLiteral:        "IntegerLiteral",
	Int64Literal:          "Int64Literal",
	SingleLiteral:         "SingleLiteral",
	DoubleLiteral:         "DoubleLiteral",
	DecimalLiteral:        "DecimalLiteral",
	GuidLiteral:           "GuidLiteral",
	DateLiteral:           "DateLiteral",
	DateTimeOffsetLiteral: "DateTimeOffsetLiteral",
	TimeOfDayLiteral:      "TimeOfDayLiteral",
	DurationLiteral:       "DurationLiteral",
	BinaryLiteral:         "BinaryLiteral",
	GeographyLiteral:      "GeographyLiteral",
	GeometryLiteral:       "GeometryLiteral",
	QuotedLiteral:         "QuotedLiteral",
	CustomTypeLiteral:     "CustomTypeLiteral",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsLiteral reports whether the kind is one of the literal shapes.
func (k Kind) IsLiteral() bool {
	return k >= NullLiteral && k <= CustomTypeLiteral
}

// IsNumeric reports the kinds a leading minus may be absorbed into.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntegerLiteral, Int64Literal, SingleLiteral, DoubleLiteral, DecimalLiteral:
		return true
	}
	return false
}

var literalPrimitive = map[Kind]edm.PrimitiveKind{
	BooleanLiteral:        edm.KindBoolean,
	StringLiteral:         edm.KindString,
	IntegerLiteral:        edm.KindInt32,
	Int64Literal:          edm.KindInt64,
	SingleLiteral:         edm.KindSingle,
	DoubleLiteral:         edm.KindDouble,
	DecimalLiteral:        edm.KindDecimal,
	GuidLiteral:           edm.KindGuid,
	DateLiteral:           edm.KindDate,
	DateTimeOffsetLiteral: edm.KindDateTimeOffset,
	TimeOfDayLiteral:      edm.KindTimeOfDay,
	DurationLiteral:       edm.KindDuration,
	BinaryLiteral:         edm.KindBinary,
	GeographyLiteral:      edm.KindGeography,
	GeometryLiteral:       edm.KindGeometry,
}

// PrimitiveKind maps built-in literal kinds to their primitive type.
// NullLiteral, QuotedLiteral and CustomTypeLiteral have no fixed kind.
func (k Kind) PrimitiveKind() (edm.PrimitiveKind, bool) {
	pk, ok := literalPrimitive[k]
	return pk, ok
}
