package lexer_test

import (
	"testing"

	"uriql/internal/diag"
	"uriql/internal/lexer"
	"uriql/internal/token"
)

func start(t *testing.T, text string, opts lexer.Options) *lexer.Lexer {
	t.Helper()
	lx := lexer.New(text, opts)
	if _, err := lx.Next(); err != nil {
		t.Fatalf("Next(%q): %v", text, err)
	}
	return lx
}

func TestReadDottedIdentifier(t *testing.T) {
	tests := []struct {
		text       string
		acceptStar bool
		want       string
		wantErr    bool
		after      token.Kind
	}{
		{text: "NS.Sub.Type rest", want: "NS.Sub.Type", after: token.Identifier},
		{text: "Name", want: "Name", after: token.End},
		{text: "NS.*", acceptStar: true, want: "NS.*", after: token.End},
		{text: "NS.*,b", acceptStar: true, want: "NS.*", after: token.Comma},
		{text: "NS.*", wantErr: true},
		{text: "NS.*.x", acceptStar: true, wantErr: true},
		{text: "NS.(", wantErr: true},
		{text: "'x'.y", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lx := start(t, tt.text, lexer.Options{})
			got, err := lx.ReadDottedIdentifier(tt.acceptStar)
			if tt.wantErr {
				if diag.CodeOf(err) != diag.LexSyntaxError {
					t.Fatalf("expected syntax error, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if lx.Current().Kind != tt.after {
				t.Fatalf("lexer stopped on %v, want %v", lx.Current().Kind, tt.after)
			}
		})
	}
}

func TestExpandIdentifierAsFunction(t *testing.T) {
	tests := []struct {
		text     string
		expanded bool
		want     string
		next     token.Kind
	}{
		{"geo.distance(a,b)", true, "geo.distance", token.OpenParen},
		{"NS.Fn.Sub(1)", true, "NS.Fn.Sub", token.OpenParen},
		{"substring(Name,1)", true, "substring", token.OpenParen},
		{"geo.distance (a)", false, "geo", token.Dot},
		{"Address.City eq 'x'", false, "Address", token.Dot},
		{"NS. Fn()", false, "NS", token.Dot},
		{"Name", false, "Name", token.End},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lx := start(t, tt.text, lexer.Options{})
			if got := lx.ExpandIdentifierAsFunction(); got != tt.expanded {
				t.Fatalf("ExpandIdentifierAsFunction() = %v, want %v", got, tt.expanded)
			}
			cur := lx.Current()
			if cur.Kind != token.Identifier || cur.Text != tt.want {
				t.Fatalf("current = %v %q, want Identifier %q", cur.Kind, cur.Text, tt.want)
			}
			if cur.Span.Start != 0 || int(cur.Span.End) != len(tt.want) {
				t.Fatalf("unexpected span %v", cur.Span)
			}
			next, err := lx.Next()
			if err != nil || next.Kind != tt.next {
				t.Fatalf("next = %v (%v), want %v", next.Kind, err, tt.next)
			}
		})
	}

	lx := start(t, "'x'", lexer.Options{})
	if lx.ExpandIdentifierAsFunction() {
		t.Fatal("literals never expand")
	}
}

func TestAdvanceThroughBalancedParentheticalExpression(t *testing.T) {
	lx := start(t, "any(x: x/Tag eq ')(') and b", lexer.Options{})
	got, err := lx.AdvanceThroughBalancedParentheticalExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "(x: x/Tag eq ')(')"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if cur := lx.Current(); cur.Kind != token.Identifier || cur.Text != "and" {
		t.Fatalf("lexer stopped on %v %q", cur.Kind, cur.Text)
	}

	lx = start(t, "any x", lexer.Options{})
	if _, err := lx.AdvanceThroughBalancedParentheticalExpression(); diag.CodeOf(err) != diag.LexOpenParenExpected {
		t.Fatalf("expected open paren error, got %v", err)
	}
	lx = start(t, "any((x)", lexer.Options{})
	if _, err := lx.AdvanceThroughBalancedParentheticalExpression(); diag.CodeOf(err) != diag.LexUnbalancedBracket {
		t.Fatalf("expected unbalanced error, got %v", err)
	}
}

func TestAdvanceThroughExpandOption(t *testing.T) {
	opts := lexer.Options{SemicolonDelimited: true}
	lx := lexer.New("$filter=a eq 'x;y' and f(b);$top=1)", opts)
	got, err := lx.AdvanceThroughExpandOption()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "$filter=a eq 'x;y' and f(b)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if lx.Current().Kind != token.SemiColon {
		t.Fatalf("expected SemiColon, got %v", lx.Current().Kind)
	}
	got, err = lx.AdvanceThroughExpandOption()
	if err != nil || got != "$top=1" || lx.Current().Kind != token.CloseParen {
		t.Fatalf("second option: %q, %v, %v", got, err, lx.Current().Kind)
	}

	lx = lexer.New("$top=1", opts)
	if _, err := lx.AdvanceThroughExpandOption(); diag.CodeOf(err) != diag.LexUnbalancedBracket {
		t.Fatalf("expected unbalanced error, got %v", err)
	}
}
