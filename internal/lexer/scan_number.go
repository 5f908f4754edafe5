package lexer

import (
	"strconv"
	"unicode"

	"uriql/internal/diag"
	"uriql/internal/literal"
	"uriql/internal/token"
)

// parseFromDigit scans a literal that starts with a digit. numStart is where
// the literal text begins (a leading '-' included), digitStart is the first
// digit; temporal and GUID trials start at digitStart.
func (lx *Lexer) parseFromDigit(numStart, digitStart Mark) (token.Kind, error) {
	c := &lx.cursor
	first := c.Bump()
	if first == '0' && (c.Peek() == 'x' || c.Peek() == 'X') {
		c.Bump()
		for isHex(c.Peek()) {
			c.Bump()
		}
		return token.BinaryLiteral, nil
	}
	for isDigit(c.Peek()) {
		c.Bump()
	}

	from := int(digitStart)
	switch ch := c.Peek(); {
	case ch == '-':
		if end, ok := lx.tryDate(from); ok {
			c.Seek(end)
			return token.DateLiteral, nil
		}
		if end, ok := lx.tryDateTimeOffset(from); ok {
			c.Seek(end)
			return token.DateTimeOffsetLiteral, nil
		}
		if end, ok := lx.tryGuid(from); ok {
			c.Seek(end)
			return token.GuidLiteral, nil
		}
	case ch == ':':
		if end, ok := lx.tryTimeOfDay(from); ok {
			c.Seek(end)
			return token.TimeOfDayLiteral, nil
		}
	default:
		// GUID может начинаться с цифр и продолжаться буквами
		if r, sz := c.PeekRune(); sz > 0 && unicode.IsLetter(r) {
			if end, ok := lx.tryGuid(from); ok {
				c.Seek(end)
				return token.GuidLiteral, nil
			}
		}
	}

	kind := token.IntegerLiteral
	if c.Peek() == '.' {
		kind = token.DoubleLiteral
		c.Bump()
		if err := lx.scanDigits(); err != nil {
			return kind, err
		}
	}
	if c.Peek() == 'e' || c.Peek() == 'E' {
		kind = token.DoubleLiteral
		c.Bump()
		if c.Peek() == '+' || c.Peek() == '-' {
			c.Bump()
		}
		if err := lx.scanDigits(); err != nil {
			return kind, err
		}
	}

	switch c.Peek() {
	case 'm', 'M':
		c.Bump()
		return token.DecimalLiteral, nil
	case 'd', 'D':
		c.Bump()
		return token.DoubleLiteral, nil
	case 'l', 'L':
		c.Bump()
		return token.Int64Literal, nil
	case 'f', 'F':
		c.Bump()
		return token.SingleLiteral, nil
	}

	text := c.TextFrom(numStart)
	guess, ok := bestGuess(text, kind)
	if !ok {
		return token.Unknown, lx.errorf(diag.LexInvalidNumeric, uint32(numStart), "invalid numeric string '%s'", text)
	}
	return guess, nil
}

// scanDigits consumes one or more decimal digits.
func (lx *Lexer) scanDigits() error {
	c := &lx.cursor
	if !isDigit(c.Peek()) {
		return lx.errorf(diag.LexDigitExpected, c.Off, "digit expected")
	}
	for isDigit(c.Peek()) {
		c.Bump()
	}
	return nil
}

// bestGuess classifies unsuffixed numeric text by the narrowest kind that
// keeps its value. Integer text tries Int32 then Int64. Fractional text is
// Single when the Single value equals the Double value, Double when the
// Double renders back to the same decimal, and Decimal otherwise.
func bestGuess(text string, kind token.Kind) (token.Kind, bool) {
	if kind == token.IntegerLiteral {
		if _, err := strconv.ParseInt(text, 10, 32); err == nil {
			return token.IntegerLiteral, true
		}
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			return token.Int64Literal, true
		}
	}

	f64, errDouble := strconv.ParseFloat(text, 64)
	f32, errSingle := strconv.ParseFloat(text, 32)
	dec, errDecimal := literal.ParseDecimal(text)
	canDouble, canSingle, canDecimal := errDouble == nil, errSingle == nil, errDecimal == nil

	if canSingle && canDouble && f32 == f64 {
		return token.SingleLiteral, true
	}
	if canDouble && canDecimal {
		// "R": кратчайшее точное представление double
		if r, err := literal.ParseDecimal(strconv.FormatFloat(f64, 'g', -1, 64)); err == nil {
			if r.Cmp(dec) != 0 {
				return token.DecimalLiteral, true
			}
			return token.DoubleLiteral, true
		}
		// "N29"
		if n, err := literal.ParseDecimal(strconv.FormatFloat(f64, 'f', 29, 64)); err == nil && n.Cmp(dec) != 0 {
			return token.DecimalLiteral, true
		}
		return token.DoubleLiteral, true
	}
	switch {
	case canDouble:
		return token.DoubleLiteral, true
	case canDecimal:
		return token.DecimalLiteral, true
	}
	return token.Unknown, false
}
