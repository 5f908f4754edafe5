package registry

import (
	"fmt"
	"maps"
	"slices"

	"uriql/internal/builtin"
	"uriql/internal/funcsig"
)

type overloads = map[string][]funcsig.WithReturnType

// CustomFunctions maps function names to user overloads.
// The zero value is an empty registry.
type CustomFunctions struct {
	snap Snapshot[string, []funcsig.WithReturnType]
}

// Add registers sig under name. It fails without changing anything when
// sig equals a built-in overload of name or an overload already registered.
func (f *CustomFunctions) Add(name string, sig funcsig.WithReturnType) error {
	if name == "" {
		return ErrEmptyName
	}
	if sig.Return == nil {
		return fmt.Errorf("%w: return type of %s", ErrNilType, name)
	}
	if builtin.Contains(name, sig) {
		return fmt.Errorf("%w: %s", ErrBuiltinSignature, funcsig.Render(name, sig))
	}
	var err error
	f.snap.Update(func(cur overloads) (overloads, bool) {
		err = nil
		existing := cur[name]
		if funcsig.Contains(existing, sig) {
			err = fmt.Errorf("%w: %s", ErrDuplicateOverload, funcsig.Render(name, sig))
			return nil, false
		}
		next := make(overloads, len(cur)+1)
		maps.Copy(next, cur)
		next[name] = append(slices.Clone(existing), sig)
		return next, true
	})
	return err
}

// Remove drops the overload of name structurally equal to sig.
func (f *CustomFunctions) Remove(name string, sig funcsig.WithReturnType) bool {
	return f.snap.Update(func(cur overloads) (overloads, bool) {
		existing := cur[name]
		i := funcsig.Index(existing, sig)
		if i < 0 {
			return nil, false
		}
		next := maps.Clone(cur)
		if rest := slices.Delete(slices.Clone(existing), i, i+1); len(rest) > 0 {
			next[name] = rest
		} else {
			delete(next, name)
		}
		return next, true
	})
}

// RemoveAll drops every overload of name.
func (f *CustomFunctions) RemoveAll(name string) bool {
	return f.snap.Update(func(cur overloads) (overloads, bool) {
		if _, exists := cur[name]; !exists {
			return nil, false
		}
		next := maps.Clone(cur)
		delete(next, name)
		return next, true
	})
}

// TryGet returns the overloads registered under name. MatchExact returns
// only that name; MatchFold returns every name equal under case folding,
// sorted by name, each overload paired with its own name.
func (f *CustomFunctions) TryGet(name string, match Match) ([]funcsig.NamedSignature, bool) {
	cur := f.snap.Load()
	var out []funcsig.NamedSignature
	if match == MatchExact {
		for _, sig := range cur[name] {
			out = append(out, funcsig.NamedSignature{Name: name, Signature: sig})
		}
		return out, len(out) > 0
	}
	for _, n := range slices.Sorted(maps.Keys(cur)) {
		if !funcsig.EqualFold(n, name) {
			continue
		}
		for _, sig := range cur[n] {
			out = append(out, funcsig.NamedSignature{Name: n, Signature: sig})
		}
	}
	return out, len(out) > 0
}

// Lookup returns the overloads of exactly name. Do not modify the result.
func (f *CustomFunctions) Lookup(name string) ([]funcsig.WithReturnType, bool) {
	sigs, ok := f.snap.Load()[name]
	return sigs, ok
}

// Names returns the registered names in sorted order.
func (f *CustomFunctions) Names() []string {
	return slices.Sorted(maps.Keys(f.snap.Load()))
}

// Snapshot returns a copy of the current mapping.
func (f *CustomFunctions) Snapshot() map[string][]funcsig.WithReturnType {
	return maps.Clone(f.snap.Load())
}
