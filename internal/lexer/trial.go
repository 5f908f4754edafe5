package lexer

import "uriql/internal/literal"

// Trial parsers look at text[from:] without moving the cursor. On success
// they return the end offset of the literal.

// literalEnd finds where an unquoted literal run ends: at ',', ')',
// whitespace, ';' in semicolon mode, or the end of text.
func (lx *Lexer) literalEnd(from int) int {
	text := lx.text
	i := from
	for i < len(text) {
		switch text[i] {
		case ',', ')', ' ', '\t', '\r', '\n':
			return i
		case ';':
			if lx.opts.SemicolonDelimited {
				return i
			}
		}
		i++
	}
	return i
}

func (lx *Lexer) tryGuid(from int) (int, bool) {
	end := lx.literalEnd(from)
	_, ok := literal.ParseGuid(lx.text[from:end])
	return end, ok
}

func (lx *Lexer) tryDate(from int) (int, bool) {
	end := lx.literalEnd(from)
	_, ok := literal.ParseDate(lx.text[from:end])
	return end, ok
}

func (lx *Lexer) tryDateTimeOffset(from int) (int, bool) {
	end := lx.literalEnd(from)
	_, ok := literal.ParseDateTimeOffset(lx.text[from:end])
	return end, ok
}

func (lx *Lexer) tryTimeOfDay(from int) (int, bool) {
	end := lx.literalEnd(from)
	_, ok := literal.ParseTimeOfDay(lx.text[from:end])
	return end, ok
}
