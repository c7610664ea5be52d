package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

type lenient struct{}

func (l lenient) Name() string {
	return lenientKeyword
}

func (l lenient) ParseDateTime(text string) (time.Time, error) {
	if !strings.Contains(text, ":") {
		return time.Time{}, fmt.Errorf("%s: %w", lenientKeyword, ErrNoClock)
	}
	return l.parse(text)
}

func (l lenient) parse(text string) (time.Time, error) {
	ts, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

func (l lenient) ParseDate(text string) (time.Time, error) {
	ts, err := l.parse(text)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Lenient returns a format detecting specifier, it accepts most common date shapes thus should be listed last
func Lenient() Specifier {
	return lenient{}
}
