package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"uriql/internal/diag"
	"uriql/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <SEV> <CODE>: <Message> at <start>
// затем выражение с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, text string, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if _, err := fmt.Fprintf(w, "%s %s: %s at %d\n",
			pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message, d.Primary.Start); err != nil {
			return err
		}
		if err := writeSnippet(w, pal, text, d.Primary, opts.Width); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("= note:"), n.Msg); err != nil {
				return err
			}
			if n.Span != d.Primary {
				if err := writeSnippet(w, pal, text, n.Span, opts.Width); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeSnippet prints the expression and a caret line under span. Columns
// are display cells, so wide runes keep the caret aligned.
func writeSnippet(w io.Writer, pal palette, text string, span source.Span, width int) error {
	if text == "" || int(span.Start) > len(text) {
		return nil
	}
	end := min(int(span.End), len(text))
	line := text
	if width > 0 {
		line = runewidth.Truncate(text, width, "...")
	}
	col := runewidth.StringWidth(text[:span.Start])
	under := max(1, runewidth.StringWidth(text[span.Start:end]))
	if width > 0 && col >= width {
		// позиция за обрезкой, показываем только строку
		_, err := fmt.Fprintf(w, "  %s %s\n", pal.dim.Sprint("|"), line)
		return err
	}
	marker := "^" + strings.Repeat("~", under-1)
	_, err := fmt.Fprintf(w, "  %s %s\n  %s %s%s\n",
		pal.dim.Sprint("|"), line, pal.dim.Sprint("|"), strings.Repeat(" ", col), pal.caret.Sprint(marker))
	return err
}
