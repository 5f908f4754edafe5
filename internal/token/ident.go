package token

import "unicode"

// IsIdentStart reports runes that may begin an identifier: letters, '_',
// '$', and letter numbers.
func IsIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// IsIdentContinue adds marks, decimal digits, connector punctuation and
// format characters to IsIdentStart.
func IsIdentContinue(r rune) bool {
	return IsIdentStart(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Cf)
}

// IsIdentifier reports whether s is entirely one identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentStart(r) {
				return false
			}
			continue
		}
		if !IsIdentContinue(r) {
			return false
		}
	}
	return true
}
