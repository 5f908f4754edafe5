package literal

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"uriql/internal/edm"
	"uriql/internal/token"
)

// ErrInvalidLiteral is wrapped by every Value failure.
var ErrInvalidLiteral = errors.New("invalid literal")

const decimalMaxScale = 28

var (
	decimalMax, _, _ = apd.NewFromString("79228162514264337593543950335")

	decimalContext = apd.Context{
		Precision:   29,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
)

// Spatial is a geography or geometry literal. The well-known text is kept
// verbatim for an external spatial parser.
type Spatial struct {
	Geography bool
	SRID      int // 0 when the literal carries no SRID
	WKT       string
}

// Custom is the payload of a literal whose prefix is registered on the model.
type Custom struct {
	Prefix  string
	Type    *edm.TypeRef
	Payload string
}

// Quoted is identifier'payload' with a prefix that is neither built-in nor
// registered, e.g. a qualified enum member.
type Quoted struct {
	Prefix  string
	Payload string
}

// Value builds the Go value for a literal token:
//
//	NullLiteral           nil
//	BooleanLiteral        bool
//	IntegerLiteral        int32
//	Int64Literal          int64
//	SingleLiteral         float32
//	DoubleLiteral         float64
//	DecimalLiteral        *apd.Decimal
//	StringLiteral         string
//	GuidLiteral           uuid.UUID
//	DateLiteral           Date
//	DateTimeOffsetLiteral time.Time
//	TimeOfDayLiteral      TimeOfDay
//	DurationLiteral       time.Duration
//	BinaryLiteral         []byte
//	Geography/Geometry    Spatial
//	CustomTypeLiteral     Custom
//	QuotedLiteral         Quoted
func Value(tok token.Token) (any, error) {
	text := tok.Text
	switch tok.Kind {
	case token.NullLiteral:
		return nil, nil
	case token.BooleanLiteral:
		return text == token.KeywordTrue, nil
	case token.IntegerLiteral:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return int32(n), nil
	case token.Int64Literal:
		n, err := strconv.ParseInt(trimSuffix(text, 'l', 'L'), 10, 64)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return n, nil
	case token.SingleLiteral:
		f, err := parseFloat(trimSuffix(text, 'f', 'F'), 32)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return float32(f), nil
	case token.DoubleLiteral:
		f, err := parseFloat(trimSuffix(text, 'd', 'D'), 64)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return f, nil
	case token.DecimalLiteral:
		d, err := ParseDecimal(trimSuffix(text, 'm', 'M'))
		if err != nil {
			return nil, invalid(tok, err)
		}
		return d, nil
	case token.StringLiteral:
		return Unquote(text)
	case token.GuidLiteral:
		if u, ok := ParseGuid(text); ok {
			return u, nil
		}
	case token.DateLiteral:
		if d, ok := ParseDate(text); ok {
			return d, nil
		}
	case token.DateTimeOffsetLiteral:
		if t, ok := ParseDateTimeOffset(text); ok {
			return t, nil
		}
	case token.TimeOfDayLiteral:
		if t, ok := ParseTimeOfDay(text); ok {
			return t, nil
		}
	case token.DurationLiteral:
		_, payload, err := splitPrefixed(text)
		if err != nil {
			return nil, invalid(tok, err)
		}
		if d, ok := ParseDuration(payload); ok {
			return d, nil
		}
	case token.BinaryLiteral:
		b, err := parseBinary(text)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return b, nil
	case token.GeographyLiteral, token.GeometryLiteral:
		_, payload, err := splitPrefixed(text)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return parseSpatial(payload, tok.Kind == token.GeographyLiteral), nil
	case token.CustomTypeLiteral:
		prefix, payload, err := splitPrefixed(text)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return Custom{Prefix: prefix, Type: tok.LiteralType, Payload: payload}, nil
	case token.QuotedLiteral:
		prefix, payload, err := splitPrefixed(text)
		if err != nil {
			return nil, invalid(tok, err)
		}
		return Quoted{Prefix: prefix, Payload: payload}, nil
	default:
		return nil, fmt.Errorf("%w: %v is not a literal token", ErrInvalidLiteral, tok.Kind)
	}
	return nil, invalid(tok, nil)
}

// Unquote strips the surrounding quotes of a '...' run and collapses doubled
// quotes.
func Unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return "", fmt.Errorf("%w: %q is not quoted", ErrInvalidLiteral, text)
	}
	return strings.ReplaceAll(text[1:len(text)-1], "''", "'"), nil
}

// ParseDecimal parses decimal text as a 96-bit scaled decimal: at most 29
// significant digits, at most 28 fractional digits, magnitude bounded by
// decimalMax. Excess digits are rounded half to even.
func ParseDecimal(text string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, err
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%q is not a finite decimal", text)
	}
	var abs apd.Decimal
	abs.Abs(d)
	if abs.Cmp(decimalMax) > 0 {
		return nil, fmt.Errorf("%q is out of decimal range", text)
	}
	out := new(apd.Decimal)
	if _, err := decimalContext.Round(out, d); err != nil {
		return nil, err
	}
	if out.Exponent < -decimalMaxScale {
		if _, err := decimalContext.Quantize(out, out, -decimalMaxScale); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func splitPrefixed(text string) (prefix, payload string, err error) {
	i := strings.IndexByte(text, '\'')
	if i < 0 {
		return "", "", fmt.Errorf("missing quoted payload")
	}
	payload, err = Unquote(text[i:])
	return text[:i], payload, err
}

func parseBinary(text string) ([]byte, error) {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return hex.DecodeString(text[2:])
	}
	prefix, payload, err := splitPrefixed(text)
	if err != nil {
		return nil, err
	}
	if prefix == token.PrefixHexBinary {
		return hex.DecodeString(payload)
	}
	payload = strings.TrimRight(payload, "=")
	if b, err := base64.RawURLEncoding.DecodeString(payload); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(payload)
}

func parseSpatial(payload string, geography bool) Spatial {
	sp := Spatial{Geography: geography, WKT: payload}
	head, rest, found := strings.Cut(payload, ";")
	if !found || !strings.HasPrefix(strings.ToUpper(head), "SRID=") {
		return sp
	}
	if srid, err := strconv.Atoi(head[len("SRID="):]); err == nil {
		sp.SRID = srid
		sp.WKT = rest
	}
	return sp
}

func parseFloat(text string, bits int) (float64, error) {
	switch strings.TrimPrefix(text, "-") {
	case token.KeywordINF:
		if strings.HasPrefix(text, "-") {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case token.KeywordNaN:
		return math.NaN(), nil
	}
	return strconv.ParseFloat(text, bits)
}

func trimSuffix(text string, lower, upper byte) string {
	if n := len(text); n > 0 && (text[n-1] == lower || text[n-1] == upper) {
		return text[:n-1]
	}
	return text
}

func invalid(tok token.Token, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %v %q: %v", ErrInvalidLiteral, tok.Kind, tok.Text, cause)
	}
	return fmt.Errorf("%w: %v %q", ErrInvalidLiteral, tok.Kind, tok.Text)
}
