package diag

import (
	"errors"
	"fmt"

	"uriql/internal/source"
)

// Error is a positioned failure inside an expression.
type Error struct {
	Code   Code
	Pos    uint32
	Source string
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d in '%s'", e.Msg, e.Pos, e.Source)
}

// Diagnostic converts the error into an error-severity diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	return NewError(e.Code, source.Span{Start: e.Pos, End: e.Pos}, e.Msg)
}

// CodeOf extracts the code of a wrapped *Error, or UnknownCode.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}
