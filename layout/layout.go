package layout

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoClock is returned when date-time interpretation is requested from a date only layout
var ErrNoClock = errors.New("layout has no time of day elements")

type (
	// Specifier represents a date/date-time format used to interpret text
	Specifier interface {
		// Name returns specifier name
		Name() string
		// ParseDateTime interprets text as a full date-time, returned fields are UTC expressed
		ParseDateTime(text string) (time.Time, error)
		// ParseDate interprets text as a calendar date, returned value is UTC midnight of that date
		ParseDate(text string) (time.Time, error)
	}

	// Layout represents go time layout based specifier
	Layout struct {
		name   string
		layout string
		clock  bool
		hourAt int
	}
)

// Name returns layout name
func (l *Layout) Name() string {
	return l.name
}

// Layout returns go time layout
func (l *Layout) Layout() string {
	return l.layout
}

// HasClock returns true if layout has time of day elements
func (l *Layout) HasClock() bool {
	return l.clock
}

// ParseDateTime parses text as date-time, an input offset is normalised to UTC
func (l *Layout) ParseDateTime(text string) (time.Time, error) {
	if !l.clock {
		return time.Time{}, fmt.Errorf("%s: %w", l.name, ErrNoClock)
	}
	ts, err := l.parse(text)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

// ParseDate parses text as calendar date
func (l *Layout) ParseDate(text string) (time.Time, error) {
	ts, err := l.parse(text)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (l *Layout) parse(text string) (time.Time, error) {
	if l.hourAt >= 0 && !twoDigits(text, l.hourAt) {
		return time.Time{}, fmt.Errorf("%s: expected two digit hour in %q", l.name, text)
	}
	return time.ParseInLocation(l.layout, text, time.UTC)
}

func twoDigits(text string, at int) bool {
	if len(text) < at+2 {
		return false
	}
	return isDigit(text[at]) && isDigit(text[at+1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Layout) String() string {
	return l.name + "(" + l.layout + ")"
}

// NewLayout creates a specifier for go time layout
func NewLayout(name, layout string) *Layout {
	if name == "" {
		name = layout
	}
	return &Layout{name: name, layout: layout, clock: hasClock(layout), hourAt: -1}
}

// newISOLayout creates fixed width layout, go hour element accepts a single digit, thus hour width is checked
func newISOLayout(name, layout string) *Layout {
	ret := NewLayout(name, layout)
	ret.hourAt = strings.Index(layout, "15")
	return ret
}

// NewPattern creates a specifier for java.time or ISO 2022-07-15 style date pattern
func NewPattern(pattern string) *Layout {
	return NewLayout(pattern, PatternToTimeLayout(pattern))
}
