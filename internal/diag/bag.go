package diag

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"fortio.org/safecast"

	"uriql/internal/source"
)

// Bag collects diagnostics up to a fixed limit.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics; non-positive or
// oversized limits mean the largest one.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint16](max)
	if err != nil || limit == 0 {
		limit = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 16)),
		max:   limit,
	}
}

// Add добавляет диагностику; false, если лимит исчерпан.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// AddError records err: *Error values keep their code and position, anything
// else is filed under fallback.
func (b *Bag) AddError(err error, fallback Code) bool {
	if err == nil {
		return false
	}
	var de *Error
	if errors.As(err, &de) {
		return b.Add(de.Diagnostic())
	}
	return b.Add(Diagnostic{Severity: SevError, Code: fallback, Message: err.Error()})
}

// Count returns how many diagnostics are at least as severe as sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity.AtLeast(sev) {
			n++
		}
	}
	return n
}

func (b *Bag) HasErrors() bool   { return b.Count(SevError) > 0 }
func (b *Bag) HasWarnings() bool { return b.Count(SevWarning) > 0 }

func (b *Bag) Len() int { return len(b.items) }

// Items returns the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders by span, then severity (worst first), then code, so output is
// stable across runs.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic for each code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
