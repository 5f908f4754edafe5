package lexer

import (
	"strings"

	"uriql/internal/diag"
	"uriql/internal/edm"
	"uriql/internal/source"
	"uriql/internal/token"
)

func (lx *Lexer) lookupCustomPrefix(prefix string) (*edm.TypeRef, bool) {
	if lx.opts.Prefixes == nil {
		return nil, false
	}
	return lx.opts.Prefixes.LookupLiteralPrefix(prefix)
}

// ReadDottedIdentifier reads Identifier(.Identifier)* starting at the
// current token and leaves the lexer on the token after it. With acceptStar
// the last segment may be '*' when nothing but End or ',' follows it.
func (lx *Lexer) ReadDottedIdentifier(acceptStar bool) (string, error) {
	if err := lx.Validate(token.Identifier); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(lx.tok.Text)
	if _, err := lx.Next(); err != nil {
		return "", err
	}
	for lx.tok.Kind == token.Dot {
		seg, err := lx.Next()
		if err != nil {
			return "", err
		}
		switch seg.Kind {
		case token.Identifier, token.QuotedLiteral:
		case token.Star:
			next, err := lx.Peek()
			if !acceptStar || err != nil || !next.Is(token.End, token.Comma) {
				return "", lx.errorf(diag.LexSyntaxError, seg.Pos(), "syntax error: '*' must end the identifier")
			}
		default:
			return "", lx.errorf(diag.LexSyntaxError, seg.Pos(), "syntax error: identifier expected after '.', found %v", seg.Kind)
		}
		b.WriteByte('.')
		b.WriteString(seg.Text)
		if _, err := lx.Next(); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// ExpandIdentifierAsFunction widens the current identifier over a dotted
// chain such as geo.distance when the chain is directly followed by '('.
// Whitespace ends the chain. When there is no such chain the lexer is left
// untouched and false is returned.
func (lx *Lexer) ExpandIdentifierAsFunction() bool {
	if lx.tok.Kind != token.Identifier {
		return false
	}
	saved := lx.save()
	keep := lx.keepWhitespace
	lx.keepWhitespace = true
	lx.probing++
	defer func() {
		lx.keepWhitespace = keep
		lx.probing--
	}()

	start := lx.tok.Span.Start
	for {
		next, err := lx.Peek()
		if err != nil {
			break
		}
		if next.Kind == token.OpenParen {
			sp := source.Span{Start: start, End: lx.tok.Span.End}
			lx.tok = token.Token{Kind: token.Identifier, Span: sp, Text: sp.Slice(lx.text)}
			return true
		}
		if next.Kind != token.Dot {
			break
		}
		if _, err := lx.Next(); err != nil {
			break
		}
		if seg, err := lx.Next(); err != nil || seg.Kind != token.Identifier {
			break
		}
	}
	lx.restore(saved)
	return false
}

// AdvanceThroughBalancedParentheticalExpression returns the text of the
// parenthesised group that starts right at the cursor, parens included, and
// moves to the token after it.
func (lx *Lexer) AdvanceThroughBalancedParentheticalExpression() (string, error) {
	c := &lx.cursor
	if c.Peek() != '(' {
		return "", lx.errorf(diag.LexOpenParenExpected, c.Off, "'(' expected")
	}
	start := c.Mark()
	depth := 0
	for {
		if c.EOF() {
			return "", lx.errorf(diag.LexUnbalancedBracket, uint32(start), "unbalanced parenthetical expression")
		}
		b := c.Bump()
		if b == '\'' {
			if !lx.skipToQuote() {
				return "", lx.errorf(diag.LexUnterminatedString, uint32(start), "unterminated literal")
			}
			continue
		}
		if b == '(' {
			depth++
		} else if b == ')' {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	text := c.TextFrom(start)
	if _, err := lx.Next(); err != nil {
		return text, err
	}
	return text, nil
}

// AdvanceThroughExpandOption returns the raw text of one nested $expand
// option, stopping before a ';' or ')' at nesting depth zero, and moves to
// that delimiter token.
func (lx *Lexer) AdvanceThroughExpandOption() (string, error) {
	c := &lx.cursor
	start := c.Mark()
	depth := 0
scan:
	for {
		if c.EOF() {
			return "", lx.errorf(diag.LexUnbalancedBracket, uint32(start), "unbalanced expand option")
		}
		switch c.Peek() {
		case '\'':
			c.Bump()
			if !lx.skipToQuote() {
				return "", lx.errorf(diag.LexUnterminatedString, uint32(start), "unterminated literal")
			}
			continue
		case '(':
			depth++
		case ')':
			if depth == 0 {
				break scan
			}
			depth--
		case ';':
			if depth == 0 {
				break scan
			}
		}
		c.Bump()
	}
	text := c.TextFrom(start)
	if _, err := lx.Next(); err != nil {
		return text, err
	}
	return text, nil
}
