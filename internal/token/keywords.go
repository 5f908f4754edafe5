package token

import "strings"

const (
	KeywordNull  = "null"
	KeywordTrue  = "true"
	KeywordFalse = "false"
	KeywordINF   = "INF"
	KeywordNaN   = "NaN"
)

// Built-in literal prefixes that precede a quoted payload.
// Compared case-insensitively, except the legacy "X" binary prefix.
const (
	PrefixDuration  = "duration"
	PrefixBinary    = "binary"
	PrefixGeography = "geography"
	PrefixGeometry  = "geometry"
	PrefixHexBinary = "X"
)

// LookupKeyword classifies an identifier that is not followed by a quote.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	switch {
	case IsInfinityOrNaNDouble(ident):
		return DoubleLiteral, true
	case IsInfinityOrNaNSingle(ident):
		return SingleLiteral, true
	case ident == KeywordTrue || ident == KeywordFalse:
		return BooleanLiteral, true
	case ident == KeywordNull:
		return NullLiteral, true
	}
	return Unknown, false
}

// LookupQuotedPrefix classifies a built-in prefix followed by a quote.
// Anything unrecognised is a QuotedLiteral.
func LookupQuotedPrefix(prefix string) Kind {
	switch {
	case strings.EqualFold(prefix, PrefixDuration):
		return DurationLiteral
	case strings.EqualFold(prefix, PrefixBinary), prefix == PrefixHexBinary:
		return BinaryLiteral
	case strings.EqualFold(prefix, PrefixGeography):
		return GeographyLiteral
	case strings.EqualFold(prefix, PrefixGeometry):
		return GeometryLiteral
	}
	return QuotedLiteral
}

// IsReservedPrefix reports identifiers that can never be used as custom
// literal prefixes: the built-in prefixes and the literal keywords.
func IsReservedPrefix(prefix string) bool {
	if LookupQuotedPrefix(prefix) != QuotedLiteral || strings.EqualFold(prefix, PrefixHexBinary) {
		return true
	}
	for _, kw := range []string{KeywordNull, KeywordTrue, KeywordFalse, KeywordINF, KeywordNaN} {
		if strings.EqualFold(prefix, kw) {
			return true
		}
	}
	_, isKeyword := LookupKeyword(prefix)
	return isKeyword
}

// IsInfinityOrNaNDouble matches INF and NaN with an optional d/D suffix.
// INF may carry a leading '-'.
func IsInfinityOrNaNDouble(text string) bool {
	negative := strings.HasPrefix(text, "-")
	body := strings.TrimPrefix(text, "-")
	if len(body) == 4 && (body[3] == 'd' || body[3] == 'D') {
		body = body[:3]
	}
	switch body {
	case KeywordINF:
		return true
	case KeywordNaN:
		return !negative
	}
	return false
}

// IsInfinityOrNaNSingle matches INF and NaN with an f/F suffix.
func IsInfinityOrNaNSingle(text string) bool {
	negative := strings.HasPrefix(text, "-")
	body := strings.TrimPrefix(text, "-")
	if len(body) != 4 || (body[3] != 'f' && body[3] != 'F') {
		return false
	}
	switch body[:3] {
	case KeywordINF:
		return true
	case KeywordNaN:
		return !negative
	}
	return false
}
