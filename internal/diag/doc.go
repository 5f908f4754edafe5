// Package diag holds positioned findings produced while tokenizing
// expressions and loading models.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string id
// (LEX1002, REG2003, ...), a short message, the primary byte span inside the
// expression and optional notes pointing at related spans.
//
// The lexer fails with *Error, which always keeps the whole expression text
// so that its message stands alone; Bag.AddError turns it back into a
// Diagnostic. Producers that keep going after a problem report through a
// Reporter instead, usually a BagReporter.
//
// Nothing here writes output; see internal/diagfmt.
package diag
