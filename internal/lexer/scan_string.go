package lexer

import (
	"strings"

	"uriql/internal/diag"
	"uriql/internal/source"
	"uriql/internal/token"
)

// scanQuoted consumes a '...' run starting at the cursor. Doubled quotes
// inside the run are escapes. Errors are reported at errPos.
func (lx *Lexer) scanQuoted(code diag.Code, errPos uint32) error {
	c := &lx.cursor
	c.Bump() // opening '
	for {
		if !lx.skipToQuote() {
			return lx.errorf(code, errPos, "unterminated literal")
		}
		if c.Peek() != '\'' {
			return nil
		}
		c.Bump() // '' это экранированная кавычка
	}
}

// skipToQuote moves past the next single quote. At end of text it leaves
// the cursor there and returns false.
func (lx *Lexer) skipToQuote() bool {
	c := &lx.cursor
	i := strings.IndexByte(lx.text[c.Off:], '\'')
	if i < 0 {
		c.Seek(len(lx.text))
		return false
	}
	c.Seek(int(c.Off) + i + 1)
	return true
}

// scanBracketed consumes a balanced {...} or [...] run, such as a JSON
// array or object. Quoted strings inside it are opaque.
func (lx *Lexer) scanBracketed(start Mark) error {
	c := &lx.cursor
	depth := 0
	for !c.EOF() {
		switch c.Bump() {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return nil
			}
		case '\'':
			if !lx.skipToQuote() {
				return lx.errorf(diag.LexUnbalancedBracket, uint32(start), "unbalanced bracket expression")
			}
		case '"':
			if !lx.skipDoubleQuoted() {
				return lx.errorf(diag.LexUnbalancedBracket, uint32(start), "unbalanced bracket expression")
			}
		}
	}
	return lx.errorf(diag.LexUnbalancedBracket, uint32(start), "unbalanced bracket expression")
}

// skipDoubleQuoted moves past a JSON string body; \" does not close it.
func (lx *Lexer) skipDoubleQuoted() bool {
	c := &lx.cursor
	for !c.EOF() {
		switch c.Bump() {
		case '\\':
			c.Bump()
		case '"':
			return true
		}
	}
	return false
}

// handleTypePrefixedLiterals reclassifies an identifier. Followed by a quote
// it is a literal prefix and the token grows to cover the quoted payload;
// otherwise it may be a keyword literal.
func (lx *Lexer) handleTypePrefixedLiterals(tok token.Token) (token.Token, error) {
	c := &lx.cursor
	if c.Peek() != '\'' {
		if kind, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = kind
		}
		return tok, nil
	}
	if tok.Text == token.KeywordNull {
		return tok, lx.errorf(diag.LexTypedNull, tok.Span.Start, "typed null literal '%s' is not supported", tok.Text)
	}

	if ref, ok := lx.lookupCustomPrefix(tok.Text); ok {
		tok.Kind = token.CustomTypeLiteral
		tok.LiteralType = ref
	} else {
		tok.Kind = token.LookupQuotedPrefix(tok.Text)
	}

	if err := lx.scanQuoted(diag.LexUnterminatedLiteral, tok.Span.Start); err != nil {
		return tok, err
	}
	tok.Span = source.Span{Start: tok.Span.Start, End: c.Off}
	tok.Text = tok.Span.Slice(lx.text)
	return tok, nil
}
