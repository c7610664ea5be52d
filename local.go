package datetime

import (
	"fmt"
	"time"

	"github.com/viant/datetime/layout"
)

type (
	// LocalDateTime represents date-time without zone or offset
	LocalDateTime struct {
		Year       int
		Month      time.Month
		Day        int
		Hour       int
		Minute     int
		Second     int
		Nanosecond int
	}

	// LocalDate represents calendar date without time of day
	LocalDate struct {
		Year  int
		Month time.Month
		Day   int
	}
)

// NewLocalDateTime creates a local date-time, out of range values are normalised as in time.Date
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second, nanosecond int) LocalDateTime {
	return LocalDateTimeOf(time.Date(year, month, day, hour, minute, second, nanosecond, time.UTC))
}

// LocalDateTimeOf returns wall clock fields of ts
func LocalDateTimeOf(ts time.Time) LocalDateTime {
	return LocalDateTime{
		Year:       ts.Year(),
		Month:      ts.Month(),
		Day:        ts.Day(),
		Hour:       ts.Hour(),
		Minute:     ts.Minute(),
		Second:     ts.Second(),
		Nanosecond: ts.Nanosecond(),
	}
}

// In returns an instant reading l in loc
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Nanosecond, loc)
}

// Date returns date part
func (l LocalDateTime) Date() LocalDate {
	return LocalDate{Year: l.Year, Month: l.Month, Day: l.Day}
}

// IsZero returns true for zero value
func (l LocalDateTime) IsZero() bool {
	return l == LocalDateTime{}
}

// Equal returns true if both values have the same fields
func (l LocalDateTime) Equal(o LocalDateTime) bool {
	return l == o
}

// Before reports whether l is before o
func (l LocalDateTime) Before(o LocalDateTime) bool {
	return l.In(time.UTC).Before(o.In(time.UTC))
}

// String returns ISO local date-time representation, empty for zero value
func (l LocalDateTime) String() string {
	if l.IsZero() {
		return ""
	}
	return l.In(time.UTC).Format(layout.ISOLocalDateTimeLayout + fractionLayout(l.Nanosecond))
}

// MarshalText implements encoding.TextMarshaler
func (l LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepts ISO local date-time, empty text yields zero value
func (l *LocalDateTime) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = LocalDateTime{}
		return nil
	}
	ts, err := time.ParseInLocation(layout.ISOLocalDateTimeLayout, string(text), time.UTC)
	if err != nil {
		return fmt.Errorf("invalid local date-time %q: %w", text, err)
	}
	*l = LocalDateTimeOf(ts)
	return nil
}

// LocalDateOf returns calendar date of ts
func LocalDateOf(ts time.Time) LocalDate {
	return LocalDate{Year: ts.Year(), Month: ts.Month(), Day: ts.Day()}
}

// AtStartOfDay returns date-time at midnight
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{Year: d.Year, Month: d.Month, Day: d.Day}
}

func (d LocalDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout.ISOLocalDateLayout)
}

// fractionLayout returns fraction of second layout in groups of three digits, empty for whole seconds
func fractionLayout(nanosecond int) string {
	switch {
	case nanosecond == 0:
		return ""
	case nanosecond%int(time.Millisecond) == 0:
		return ".000"
	case nanosecond%int(time.Microsecond) == 0:
		return ".000000"
	}
	return ".000000000"
}
