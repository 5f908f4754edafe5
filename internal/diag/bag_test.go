package diag

import (
	"errors"
	"fmt"
	"testing"

	"uriql/internal/source"
)

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(LexInvalidNumeric, source.Span{Start: 5, End: 8}, "b"))
	b.Add(New(SevWarning, LexInfo, source.Span{Start: 1, End: 2}, "w"))
	b.Add(NewError(LexSyntaxError, source.Span{Start: 1, End: 2}, "e"))
	b.Add(NewError(LexInvalidNumeric, source.Span{Start: 5, End: 8}, "dup"))

	b.Sort()
	items := b.Items()
	if items[0].Code != LexSyntaxError || items[1].Code != LexInfo {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("expected 3 items after dedup, got %d", b.Len())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected errors and warnings")
	}
	if got := b.Count(SevError); got != 2 {
		t.Fatalf("Count(SevError) = %d, want 2", got)
	}
	if got := b.Count(SevInfo); got != 3 {
		t.Fatalf("Count(SevInfo) = %d, want 3", got)
	}
}

func TestBagDefaultLimit(t *testing.T) {
	for _, max := range []int{0, -3, 1 << 20} {
		if got := NewBag(max).max; got != 0xFFFF {
			t.Errorf("NewBag(%d) limit = %d, want 65535", max, got)
		}
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(1)
	if !b.Add(NewError(LexSyntaxError, source.Span{}, "one")) {
		t.Fatal("first add must succeed")
	}
	if b.Add(NewError(LexSyntaxError, source.Span{}, "two")) {
		t.Fatal("second add must be rejected")
	}
}

func TestErrorMessageAndCode(t *testing.T) {
	err := &Error{Code: LexDigitExpected, Pos: 3, Source: "12.x", Msg: "digit expected"}
	if got, want := err.Error(), "digit expected at position 3 in '12.x'"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	wrapped := fmt.Errorf("tokenize: %w", err)
	if CodeOf(wrapped) != LexDigitExpected {
		t.Fatalf("CodeOf lost the code")
	}
	if CodeOf(errors.New("plain")) != UnknownCode {
		t.Fatalf("plain errors have no code")
	}

	b := NewBag(4)
	b.AddError(wrapped, ConfigError)
	b.AddError(errors.New("plain"), ConfigError)
	if b.Items()[0].Primary.Start != 3 || b.Items()[1].Code != ConfigError {
		t.Fatalf("unexpected bag contents: %+v", b.Items())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexSyntaxError, "LEX1007"},
		{RegDuplicatePrefix, "REG2003"},
		{ResNoMatch, "RES3001"},
		{ConfigError, "CFG4002"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
