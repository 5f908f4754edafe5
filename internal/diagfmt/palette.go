package diagfmt

import (
	"github.com/fatih/color"

	"uriql/internal/diag"
)

type palette struct {
	err, warn, info *color.Color
	code, kind      *color.Color
	caret, note     *color.Color
	dim             *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		code:  color.New(color.Bold),
		kind:  color.New(color.FgGreen),
		caret: color.New(color.FgRed, color.Bold),
		note:  color.New(color.FgBlue),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.kind, p.caret, p.note, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}
