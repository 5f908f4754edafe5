package registry

import (
	"errors"

	"uriql/internal/diag"
)

var (
	ErrBuiltinSignature  = errors.New("signature matches a built-in overload")
	ErrDuplicateOverload = errors.New("custom overload already registered")
	ErrDuplicatePrefix   = errors.New("literal prefix already registered")
	ErrInvalidPrefix     = errors.New("literal prefix is not an identifier")
	ErrReservedPrefix    = errors.New("literal prefix is reserved")
	ErrEmptyName         = errors.New("function name is empty")
	ErrNilType           = errors.New("type is missing")
	ErrNotPrimitive      = errors.New("literal prefix type is not primitive")
)

// ErrorCode maps registration errors to diagnostic codes.
func ErrorCode(err error) diag.Code {
	switch {
	case errors.Is(err, ErrBuiltinSignature):
		return diag.RegBuiltinSignature
	case errors.Is(err, ErrDuplicateOverload):
		return diag.RegDuplicateOverload
	case errors.Is(err, ErrDuplicatePrefix):
		return diag.RegDuplicatePrefix
	case errors.Is(err, ErrInvalidPrefix), errors.Is(err, ErrNotPrimitive):
		return diag.RegInvalidPrefix
	case errors.Is(err, ErrReservedPrefix):
		return diag.RegReservedPrefix
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrNilType):
		return diag.RegInvalidArgument
	}
	return diag.RegInfo
}
