package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"uriql/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a token
// stream lexed from text:
// 1) every span is non-empty and within text bounds
// 2) token.Text is exactly the text covered by its span
// 3) spans are strictly ordered and never overlap
// 4) only whitespace lies between consecutive tokens
func CheckTokenInvariants(text string, toks []token.Token) error {
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v): empty span %v", i, tok.Kind, sp)
		}
		if sp.End > lenText {
			return fmt.Errorf("token %d (%v): span end beyond text: %d > %d", i, tok.Kind, sp.End, lenText)
		}
		if got := sp.Slice(text); got != tok.Text {
			return fmt.Errorf("token %d (%v): text %q does not match span text %q", i, tok.Kind, tok.Text, got)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%v): span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		for _, r := range text[prevEnd:sp.Start] {
			if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
				return fmt.Errorf("token %d (%v): unexpected %q before span %v", i, tok.Kind, r, sp)
			}
		}
		prevEnd = sp.End
	}
	return nil
}
