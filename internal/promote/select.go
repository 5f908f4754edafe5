package promote

import (
	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

// compareConversions ranks converting source to a against converting it to
// b: positive when a is better, negative when b is, zero for no preference.
func compareConversions(source, a, b *edm.TypeRef) int {
	if a.Equivalent(b) {
		return 0
	}
	if source.Equivalent(a) {
		return 1
	}
	if source.Equivalent(b) {
		return -1
	}

	// the narrower target wins
	aToB, bToA := CanConvert(a, b), CanConvert(b, a)
	if aToB && !bToA {
		return 1
	}
	if bToA && !aToB {
		return -1
	}

	nullable := source == nil || source.Nullable
	if a.Nullable == nullable && b.Nullable != nullable {
		return 1
	}
	if b.Nullable == nullable && a.Nullable != nullable {
		return -1
	}

	ka, kb := a.PrimitiveKind(), b.PrimitiveKind()
	switch {
	case ka.IsSignedIntegral() && kb.IsUnsignedIntegral():
		return 1
	case kb.IsSignedIntegral() && ka.IsUnsignedIntegral():
		return -1
	case ka != edm.KindDecimal && kb == edm.KindDecimal:
		return 1
	case kb != edm.KindDecimal && ka == edm.KindDecimal:
		return -1
	case ka == edm.KindDateTimeOffset && kb == edm.KindDate:
		return 1
	case kb == edm.KindDateTimeOffset && ka == edm.KindDate:
		return -1
	}
	return 0
}

// isBetterThan reports that a is at least as good as b for every typed
// argument and strictly better for one. Untyped arguments do not vote.
func isBetterThan(args []*edm.TypeRef, a, b funcsig.Signature) bool {
	better := false
	for i, src := range args {
		if src == nil {
			continue
		}
		switch c := compareConversions(src, a.Arg(i), b.Arg(i)); {
		case c < 0:
			return false
		case c > 0:
			better = true
		}
	}
	return better
}

func isApplicable(sig funcsig.Signature, args []*edm.TypeRef) bool {
	if sig.Arity() != len(args) {
		return false
	}
	for i, a := range args {
		if !CanPromote(a, sig.Arg(i)) {
			return false
		}
	}
	return true
}

// selectBest returns the index of the single best applicable candidate.
// With liftNullable two survivors that differ only in nullability resolve to
// the nullable one.
func selectBest(cands []funcsig.Signature, args []*edm.TypeRef, liftNullable bool) (int, bool) {
	var applicable []int
	for i := range cands {
		if isApplicable(cands[i], args) {
			applicable = append(applicable, i)
		}
	}
	if len(applicable) == 1 {
		return applicable[0], true
	}

	var best []int
	for _, i := range applicable {
		dominated := false
		for _, j := range applicable {
			if i != j && isBetterThan(args, cands[j], cands[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			best = append(best, i)
		}
	}

	switch {
	case len(best) == 1:
		return best[0], true
	case len(best) == 2 && liftNullable:
		a, b := cands[best[0]], cands[best[1]]
		for k := range args {
			if !a.Arg(k).SameDefinition(b.Arg(k)) {
				return -1, false
			}
		}
		switch {
		case allNullable(a):
			return best[0], true
		case allNullable(b):
			return best[1], true
		}
	}
	return -1, false
}

func allNullable(sig funcsig.Signature) bool {
	for _, a := range sig.Args() {
		if !a.Nullable {
			return false
		}
	}
	return true
}
