package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"uriql/internal/diag"
	"uriql/internal/source"
	"uriql/internal/token"
)

// Lexer splits one query expression into tokens. It keeps a single current
// token; Next advances, Peek looks one token ahead. A Lexer is not safe for
// concurrent use.
type Lexer struct {
	text   string
	cursor Cursor
	opts   Options
	tok    token.Token

	// keepWhitespace отключает пропуск пробелов, пока разворачиваем
	// голову вызова функции.
	keepWhitespace bool
	// probing > 0 while looking ahead; errors are returned, not reported.
	probing int
}

// state is everything needed to rewind the lexer.
type state struct {
	off Mark
	tok token.Token
}

func New(text string, opts Options) *Lexer {
	return &Lexer{
		text:   text,
		cursor: NewCursor(text),
		opts:   opts,
		tok:    token.Token{Kind: token.Unknown},
	}
}

// Tokenize lexes the whole text and returns every token before End.
func Tokenize(text string, opts Options) ([]token.Token, error) {
	lx := New(text, opts)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == token.End {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Text returns the expression being lexed.
func (lx *Lexer) Text() string { return lx.text }

// Current returns the token produced by the last Next.
func (lx *Lexer) Current() token.Token { return lx.tok }

// Pos returns the byte offset just past the current token.
func (lx *Lexer) Pos() uint32 { return lx.cursor.Off }

func (lx *Lexer) save() state {
	return state{off: lx.cursor.Mark(), tok: lx.tok}
}

func (lx *Lexer) restore(s state) {
	lx.cursor.Reset(s.off)
	lx.tok = s.tok
}

// Next advances to the next token and returns it. After End it keeps
// returning End. On failure the current token is Unknown and the error is a
// *diag.Error carrying the offending position and the whole text.
func (lx *Lexer) Next() (token.Token, error) {
	if !lx.keepWhitespace {
		lx.skipWhitespace()
	}
	start := lx.cursor.Mark()
	kind, err := lx.scan(start)
	tok := token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
	if err == nil && kind == token.Identifier {
		tok, err = lx.handleTypePrefixedLiterals(tok)
	}
	if err != nil {
		tok.Kind = token.Unknown
		tok.LiteralType = nil
	}
	lx.tok = tok
	return tok, err
}

// Peek returns the token after the current one and leaves the lexer as it
// was. Errors are handed back to the caller, never reported.
func (lx *Lexer) Peek() (token.Token, error) {
	saved := lx.save()
	lx.probing++
	tok, err := lx.Next()
	lx.probing--
	lx.restore(saved)
	return tok, err
}

// Validate fails with a syntax error unless the current token has kind.
func (lx *Lexer) Validate(kind token.Kind) error {
	if lx.tok.Kind != kind {
		return lx.errorf(diag.LexSyntaxError, lx.tok.Pos(), "syntax error: expected %v, found %v", kind, lx.tok.Kind)
	}
	return nil
}

func (lx *Lexer) scan(start Mark) (token.Kind, error) {
	c := &lx.cursor
	if c.EOF() {
		return token.End, nil
	}
	r, _ := c.PeekRune()
	switch r {
	case '(':
		c.Bump()
		return token.OpenParen, nil
	case ')':
		c.Bump()
		return token.CloseParen, nil
	case ',':
		c.Bump()
		return token.Comma, nil
	case '.':
		c.Bump()
		return token.Dot, nil
	case ':':
		c.Bump()
		return token.Colon, nil
	case '=':
		c.Bump()
		return token.Equal, nil
	case '/':
		c.Bump()
		return token.Slash, nil
	case '?':
		c.Bump()
		return token.Question, nil
	case '*':
		c.Bump()
		return token.Star, nil
	case '-':
		return lx.scanMinus(start)
	case '\'':
		return token.StringLiteral, lx.scanQuoted(diag.LexUnterminatedString, uint32(start))
	case '{', '[':
		return token.BracketedExpression, lx.scanBracketed(start)
	case ';':
		if lx.opts.SemicolonDelimited {
			c.Bump()
			return token.SemiColon, nil
		}
	case '@':
		if lx.opts.FunctionParameters {
			next, _ := utf8.DecodeRuneInString(lx.text[c.Off+1:])
			if token.IsIdentStart(next) {
				c.Bump()
				lx.scanIdentifier()
				return token.ParameterAlias, nil
			}
		}
	}

	switch {
	case unicode.IsSpace(r):
		// сюда попадаем только при keepWhitespace
		lx.skipWhitespace()
		return token.Unknown, nil
	case token.IsIdentStart(r):
		lx.scanIdentifier()
		if c.Peek() == '-' {
			if end, ok := lx.tryGuid(int(start)); ok {
				c.Seek(end)
				return token.GuidLiteral, nil
			}
		}
		return token.Identifier, nil
	case isDigit(c.Peek()):
		return lx.parseFromDigit(start, start)
	}

	c.BumpRune()
	return token.Unknown, lx.errorf(diag.LexInvalidCharacter, uint32(start), "invalid character '%c'", r)
}

// scanMinus decides between a signed literal and the Minus operator.
func (lx *Lexer) scanMinus(start Mark) (token.Kind, error) {
	c := &lx.cursor
	next := c.PeekAt(1)
	switch {
	case isDigit(next):
		c.Bump()
		kind, err := lx.parseFromDigit(start, c.Mark())
		if err != nil || kind.IsNumeric() {
			return kind, err
		}
		// -0x.., -2024-01-01 и т.п.: минус отдельным токеном
		c.Reset(start)
	case next == token.KeywordINF[0]:
		c.Bump()
		lx.scanIdentifier()
		text := c.TextFrom(start)
		if token.IsInfinityOrNaNDouble(text) {
			return token.DoubleLiteral, nil
		}
		if token.IsInfinityOrNaNSingle(text) {
			return token.SingleLiteral, nil
		}
		c.Reset(start)
	}
	c.Bump()
	return token.Minus, nil
}

func (lx *Lexer) scanIdentifier() {
	c := &lx.cursor
	c.BumpRune()
	for {
		r, sz := c.PeekRune()
		if sz == 0 || !token.IsIdentContinue(r) {
			return
		}
		c.Off += sz
	}
}

func (lx *Lexer) skipWhitespace() {
	c := &lx.cursor
	for {
		r, sz := c.PeekRune()
		if sz == 0 || !unicode.IsSpace(r) {
			return
		}
		c.Off += sz
	}
}

// errorf builds a positioned error and reports it unless the lexer is only
// looking ahead.
func (lx *Lexer) errorf(code diag.Code, pos uint32, format string, args ...any) error {
	err := &diag.Error{
		Code:   code,
		Pos:    pos,
		Source: lx.text,
		Msg:    fmt.Sprintf(format, args...),
	}
	if lx.opts.Reporter != nil && lx.probing == 0 {
		end := max(lx.cursor.Off, pos)
		lx.opts.Reporter.Report(code, diag.SevError, source.Span{Start: pos, End: end}, err.Msg, nil)
	}
	return err
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
