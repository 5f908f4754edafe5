package diagfmt

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"uriql/internal/literal"
	"uriql/internal/source"
	"uriql/internal/token"
)

// TokenOutput is the serialized form of a token.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Type  string      `json:"type,omitempty"`
	Value string      `json:"value,omitempty"`
	Error string      `json:"value_error,omitempty"`
}

// ExpressionOutput groups the tokens of one expression.
type ExpressionOutput struct {
	Expression string        `json:"expression"`
	Tokens     []TokenOutput `json:"tokens"`
	Error      string        `json:"error,omitempty"`
}

// BuildTokenOutput converts tokens; literal values are rendered through
// literal.Value.
func BuildTokenOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		if t := tok.LiteralTypeRef(); t != nil {
			o.Type = t.String()
		}
		if tok.IsLiteral() {
			v, err := literal.Value(tok)
			if err != nil {
				o.Error = err.Error()
			} else {
				o.Value = formatValue(v)
			}
		}
		out = append(out, o)
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return "0x" + hex.EncodeToString(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%+v", v)
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	rows := BuildTokenOutput(tokens)
	kindWidth := 0
	for _, r := range rows {
		kindWidth = max(kindWidth, len(r.Kind))
	}
	for i, r := range rows {
		text := fmt.Sprintf("%q", r.Text)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "...")
		}
		if _, err := fmt.Fprintf(w, "%3d: %s %s at %s", i+1,
			pal.kind.Sprint(runewidth.FillRight(r.Kind, kindWidth)), text, r.Span); err != nil {
			return err
		}
		if r.Type != "" {
			if _, err := fmt.Fprintf(w, " %s", pal.dim.Sprint(r.Type)); err != nil {
				return err
			}
		}
		if r.Error != "" {
			if _, err := fmt.Fprintf(w, " %s", pal.err.Sprint(r.Error)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит выражения и их токены в JSON формате
func FormatTokensJSON(w io.Writer, exprs []ExpressionOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exprs)
}

// FormatTokensMsgpack пишет те же данные в msgpack, ключи как в JSON
func FormatTokensMsgpack(w io.Writer, exprs []ExpressionOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(exprs)
}

// DecodeTokensMsgpack reads what FormatTokensMsgpack wrote.
func DecodeTokensMsgpack(r io.Reader) ([]ExpressionOutput, error) {
	var out []ExpressionOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
