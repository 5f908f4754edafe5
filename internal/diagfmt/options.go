package diagfmt

// PrettyOpts configures pretty-printing of diagnostics and tokens.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Width     int // ширина обрезки выражения в колонках, 0 - без ограничений
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}
