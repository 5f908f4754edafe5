package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar date without time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a wall-clock time without date or zone.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
		s += "." + frac
	}
	return s
}

var dateTimeOffsetLayouts = []string{
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00", // дробные секунды парсер принимает сам
}

// ParseGuid accepts only the hyphenated 8-4-4-4-12 hexadecimal form.
func ParseGuid(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return uuid.Nil, false
			}
		default:
			if !isHex(s[i]) {
				return uuid.Nil, false
			}
		}
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// ParseDate accepts yyyy-mm-dd.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
}

// ParseDateTimeOffset accepts yyyy-mm-ddThh:mm[:ss[.fffffffff]](Z|±hh:mm).
func ParseDateTimeOffset(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02T15:04Z") {
		return time.Time{}, false
	}
	for _, layout := range dateTimeOffsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeOfDay accepts hh:mm[:ss[.fffffffff]].
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}, true
	}
	return TimeOfDay{}, false
}

// ParseDuration accepts the ISO 8601 day-time form [-]P[nD][T[nH][nM][n[.n]S]].
func ParseDuration(s string) (time.Duration, bool) {
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if !strings.HasPrefix(s, "P") || len(s) < 2 {
		return 0, false
	}
	s = s[1:]
	units, next := "D", 0
	inTime := false
	components := 0
	var total float64
	for s != "" {
		if s[0] == 'T' {
			if inTime || len(s) == 1 {
				return 0, false
			}
			inTime = true
			units, next = "HMS", 0
			s = s[1:]
			continue
		}
		i := 0
		for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
			i++
		}
		if i == 0 || i == len(s) {
			return 0, false
		}
		k := strings.IndexByte(units[next:], s[i])
		if k < 0 {
			return 0, false
		}
		next += k + 1
		if strings.Contains(s[:i], ".") && s[i] != 'S' {
			return 0, false
		}
		n, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, false
		}
		total += n * float64(durationUnit(s[i], inTime))
		components++
		s = s[i+1:]
	}
	if components == 0 || total > math.MaxInt64 {
		return 0, false
	}
	d := time.Duration(total)
	if negative {
		d = -d
	}
	return d, true
}

func durationUnit(b byte, inTime bool) time.Duration {
	switch {
	case !inTime:
		return 24 * time.Hour
	case b == 'H':
		return time.Hour
	case b == 'M':
		return time.Minute
	default:
		return time.Second
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
