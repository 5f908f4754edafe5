package source

import "testing"

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{Start: 2, End: 4}, Span{Start: 6, End: 9}, Span{Start: 2, End: 9}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 3, End: 4}, Span{Start: 0, End: 10}},
		{"reverse order", Span{Start: 6, End: 9}, Span{Start: 1, End: 2}, Span{Start: 1, End: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Slice(t *testing.T) {
	text := "Name eq 'x'"
	if got := MakeSpan(8, 11).Slice(text); got != "'x'" {
		t.Fatalf("Slice = %q", got)
	}
	if got := MakeSpan(8, 40).Slice(text); got != "" {
		t.Fatalf("out of range slice = %q, want empty", got)
	}
	sp := MakeSpan(3, 3)
	if !sp.Empty() || sp.Len() != 0 {
		t.Fatalf("expected empty span, got %v", sp)
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	if !outer.Contains(Span{Start: 2, End: 10}) {
		t.Fatal("expected containment")
	}
	if outer.Contains(Span{Start: 2, End: 11}) {
		t.Fatal("unexpected containment")
	}
}
