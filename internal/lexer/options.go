package lexer

import (
	"uriql/internal/diag"
	"uriql/internal/edm"
)

// PrefixResolver maps a custom literal prefix to its primitive type.
// registry.LiteralPrefixes satisfies it.
type PrefixResolver interface {
	LookupLiteralPrefix(prefix string) (*edm.TypeRef, bool)
}

type Options struct {
	// SemicolonDelimited lexes ';' as SemiColon instead of rejecting it.
	SemicolonDelimited bool
	// FunctionParameters lexes @name as ParameterAlias.
	FunctionParameters bool
	// Prefixes resolves custom literal prefixes; may be nil.
	Prefixes PrefixResolver
	Reporter diag.Reporter // может быть nil, тогда ошибки только возвращаются
}
