// Package token defines the lexical vocabulary of URI query expressions.
//
// A Token is an immutable value: its Text is a substring of the source
// expression (sharing its memory) except after identifier expansion, where
// the lexer re-slices the source over the widened span. Kind is a closed
// enumeration; Kind.IsLiteral drives literal value construction downstream.
package token
