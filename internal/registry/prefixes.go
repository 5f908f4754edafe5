package registry

import (
	"fmt"
	"maps"
	"slices"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/token"
)

// Match selects how names are compared on lookup.
type Match uint8

const (
	MatchExact Match = iota
	MatchFold
)

// LiteralPrefixes maps custom literal prefixes to primitive types.
// The zero value is an empty registry.
type LiteralPrefixes struct {
	snap Snapshot[string, *edm.TypeRef]
}

// Add registers prefix for typ. The prefix must be an identifier that is not
// a built-in prefix or literal keyword in any letter case.
func (p *LiteralPrefixes) Add(prefix string, typ *edm.TypeRef) error {
	switch {
	case !token.IsIdentifier(prefix):
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	case token.IsReservedPrefix(prefix):
		return fmt.Errorf("%w: %q", ErrReservedPrefix, prefix)
	case typ == nil:
		return fmt.Errorf("%w: prefix %q", ErrNilType, prefix)
	case !typ.IsPrimitive():
		return fmt.Errorf("%w: %q maps to %s", ErrNotPrimitive, prefix, typ)
	}
	var err error
	p.snap.Update(func(cur map[string]*edm.TypeRef) (map[string]*edm.TypeRef, bool) {
		err = nil
		if _, exists := cur[prefix]; exists {
			err = fmt.Errorf("%w: %q", ErrDuplicatePrefix, prefix)
			return nil, false
		}
		next := make(map[string]*edm.TypeRef, len(cur)+1)
		maps.Copy(next, cur)
		next[prefix] = typ
		return next, true
	})
	return err
}

// Remove drops prefix and reports whether it was registered.
func (p *LiteralPrefixes) Remove(prefix string) bool {
	return p.snap.Update(func(cur map[string]*edm.TypeRef) (map[string]*edm.TypeRef, bool) {
		if _, exists := cur[prefix]; !exists {
			return nil, false
		}
		next := maps.Clone(cur)
		delete(next, prefix)
		return next, true
	})
}

// TryGet looks a prefix up. With MatchFold the first registered prefix in
// sorted order that matches under case folding wins.
func (p *LiteralPrefixes) TryGet(prefix string, match Match) (*edm.TypeRef, bool) {
	cur := p.snap.Load()
	if typ, ok := cur[prefix]; ok || match == MatchExact {
		return typ, ok
	}
	for _, k := range slices.Sorted(maps.Keys(cur)) {
		if funcsig.EqualFold(k, prefix) {
			return cur[k], true
		}
	}
	return nil, false
}

// LookupLiteralPrefix is the exact lookup the lexer uses.
func (p *LiteralPrefixes) LookupLiteralPrefix(prefix string) (*edm.TypeRef, bool) {
	return p.TryGet(prefix, MatchExact)
}

// Snapshot returns a copy of the current mapping.
func (p *LiteralPrefixes) Snapshot() map[string]*edm.TypeRef {
	return maps.Clone(p.snap.Load())
}

func (p *LiteralPrefixes) Len() int { return len(p.snap.Load()) }
