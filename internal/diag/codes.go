package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexInvalidCharacter    Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedLiteral Code = 1003
	LexDigitExpected       Code = 1004
	LexUnbalancedBracket   Code = 1005
	LexInvalidNumeric      Code = 1006
	LexSyntaxError         Code = 1007
	LexTypedNull           Code = 1008
	LexOpenParenExpected   Code = 1009

	// Регистрация расширений
	RegInfo              Code = 2000
	RegBuiltinSignature  Code = 2001
	RegDuplicateOverload Code = 2002
	RegDuplicatePrefix   Code = 2003
	RegInvalidPrefix     Code = 2004
	RegReservedPrefix    Code = 2005
	RegInvalidArgument   Code = 2006

	// Разрешение перегрузок
	ResInfo            Code = 3000
	ResNoMatch         Code = 3001
	ResAmbiguous       Code = 3002
	ResUnknownFunction Code = 3003

	// Ввод-вывод / конфигурация
	IOLoadFileError Code = 4001
	ConfigError     Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexInvalidCharacter:    "Invalid character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedLiteral: "Unterminated typed literal",
	LexDigitExpected:       "Digit expected",
	LexUnbalancedBracket:   "Unbalanced bracket expression",
	LexInvalidNumeric:      "Invalid numeric string",
	LexSyntaxError:         "Syntax error",
	LexTypedNull:           "Typed null literals are not supported",
	LexOpenParenExpected:   "Open parenthesis expected",
	RegInfo:                "Registration information",
	RegBuiltinSignature:    "Signature collides with a built-in function",
	RegDuplicateOverload:   "Overload already registered",
	RegDuplicatePrefix:     "Literal prefix already registered",
	RegInvalidPrefix:       "Invalid literal prefix",
	RegReservedPrefix:      "Reserved literal prefix",
	RegInvalidArgument:     "Invalid registration argument",
	ResInfo:                "Resolution information",
	ResNoMatch:             "No applicable signature",
	ResAmbiguous:           "Ambiguous signature",
	ResUnknownFunction:     "Unknown function",
	IOLoadFileError:        "I/O error",
	ConfigError:            "Configuration error",
}

func (c Code) ID() string {
	switch {
	case c >= 4000:
		return fmt.Sprintf("CFG%04d", uint16(c))
	case c >= 3000:
		return fmt.Sprintf("RES%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("REG%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s] %s", c.ID(), c.Title())
}
