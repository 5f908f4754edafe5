package funcsig

import (
	"strings"

	"golang.org/x/text/cases"
)

// NamedSignature pairs an overload with the name it was registered under;
// returned by case-insensitive lookups.
type NamedSignature struct {
	Name      string
	Signature WithReturnType
}

// Fold returns the Unicode case-folded form of a function name.
func Fold(name string) string {
	// Caser хранит состояние, поэтому новый на каждый вызов
	return cases.Fold().String(name)
}

// EqualFold compares names under Unicode case folding.
func EqualFold(a, b string) bool {
	return a == b || Fold(a) == Fold(b)
}

// Render formats one overload as name(args) ret.
func Render(name string, sig WithReturnType) string {
	return name + sig.String()
}

// Describe lists every overload of name, one per line, for resolution
// failure messages.
func Describe(name string, sigs []WithReturnType) string {
	var sb strings.Builder
	for i, sig := range sigs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		sb.WriteString(Render(name, sig))
	}
	return sb.String()
}

// DescribeNamed is Describe for candidates that may carry different names.
func DescribeNamed(sigs []NamedSignature) string {
	lines := make([]string, len(sigs))
	for i, s := range sigs {
		lines[i] = "  " + Render(s.Name, s.Signature)
	}
	return strings.Join(lines, "\n")
}
