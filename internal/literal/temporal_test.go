package literal

import (
	"testing"
	"time"
)

func TestParseGuid(t *testing.T) {
	if _, ok := ParseGuid("38cf68c2-4010-4ccc-8922-868217f03ddc"); !ok {
		t.Fatal("expected valid guid")
	}
	bad := []string{
		"38cf68c24010-4ccc-8922-868217f03ddc-",
		"{38cf68c2-4010-4ccc-8922-868217f03ddc}",
		"38cf68c2-4010-4ccc-8922-868217f03ddz",
		"urn:uuid:38cf68c2-4010-4ccc-8922-868217f03ddc",
		"38cf68c24010",
	}
	for _, s := range bad {
		if _, ok := ParseGuid(s); ok {
			t.Errorf("ParseGuid(%q) should fail", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2012-09-11")
	if !ok || d != (Date{Year: 2012, Month: time.September, Day: 11}) {
		t.Fatalf("ParseDate = %v, %v", d, ok)
	}
	for _, s := range []string{"2012-9-11", "2012-13-01", "2012-09-11T00:00Z", "20120911"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestParseDateTimeOffset(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2012-09-11T00:09:00Z", time.Date(2012, 9, 11, 0, 9, 0, 0, time.UTC)},
		{"2012-09-11T00:09Z", time.Date(2012, 9, 11, 0, 9, 0, 0, time.UTC)},
		{"2012-09-11T00:09:00.25+02:00", time.Date(2012, 9, 11, 0, 9, 0, 250000000, time.FixedZone("", 2*3600))},
	}
	for _, tt := range tests {
		got, ok := ParseDateTimeOffset(tt.in)
		if !ok || !got.Equal(tt.want) {
			t.Errorf("ParseDateTimeOffset(%q) = %v, %v", tt.in, got, ok)
		}
	}
	if _, ok := ParseDateTimeOffset("2012-09-11"); ok {
		t.Error("a bare date is not a DateTimeOffset")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, ok := ParseTimeOfDay("13:20:00.5")
	if !ok || got != (TimeOfDay{Hour: 13, Minute: 20, Nanosecond: 500000000}) {
		t.Fatalf("ParseTimeOfDay = %v, %v", got, ok)
	}
	if got.String() != "13:20:00.5" {
		t.Fatalf("String() = %q", got.String())
	}
	if _, ok := ParseTimeOfDay("07:05"); !ok {
		t.Fatal("hh:mm is a valid time of day")
	}
	if _, ok := ParseTimeOfDay("24:00:00"); ok {
		t.Fatal("24:00 is out of range")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"P1D", 24 * time.Hour, true},
		{"PT1H30M", 90 * time.Minute, true},
		{"P1DT2H3M4.5S", 26*time.Hour + 3*time.Minute + 4500*time.Millisecond, true},
		{"-PT10S", -10 * time.Second, true},
		{"P", 0, false},
		{"PT", 0, false},
		{"PT1S2M", 0, false},
		{"P1.5D", 0, false},
		{"1D", 0, false},
		{"P1Y", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDuration(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDuration(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
