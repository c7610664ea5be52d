package datetime

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/datetime/layout"
)

const isoInstantLayout = "2006-01-02T15:04:05"

// Converter converts between text and LocalDateTime, it is immutable and safe for concurrent use
type Converter struct {
	zoneConversion bool
	specifiers     []layout.Specifier
	location       func() *time.Location
	logger         zerolog.Logger
}

// ZoneConversion returns true if local<->UTC conversion is enabled
func (c *Converter) ZoneConversion() bool {
	return c.zoneConversion
}

// Specifiers returns a copy of format specifiers in precedence order
func (c *Converter) Specifiers() []layout.Specifier {
	return append([]layout.Specifier{}, c.specifiers...)
}

// ToISOString formats value as UTC instant
func (c *Converter) ToISOString(value *LocalDateTime) (string, error) {
	if value == nil {
		return "", fmt.Errorf("failed to format date-time: %w", ErrNilValue)
	}
	utc := c.toUTC(*value)
	return utc.In(time.UTC).Format(isoInstantLayout + fractionLayout(utc.Nanosecond) + "Z"), nil
}

// ParseDate parses text with the first matching specifier, false is returned when none matched
func (c *Converter) ParseDate(text string) (LocalDateTime, bool) {
	for _, specifier := range c.specifiers {
		if ts, err := specifier.ParseDateTime(text); err == nil {
			return c.fromUTC(LocalDateTimeOf(ts)), true
		}
		if ts, err := specifier.ParseDate(text); err == nil {
			return LocalDateOf(ts).AtStartOfDay(), true
		}
	}
	c.logger.Debug().Str("text", text).Int("specifiers", len(c.specifiers)).Msg("no date format matched")
	return LocalDateTime{}, false
}

// Parse parses string or *string value, nil value is reported as ErrNilValue
func (c *Converter) Parse(value interface{}) (LocalDateTime, bool, error) {
	switch actual := value.(type) {
	case nil:
		return LocalDateTime{}, false, fmt.Errorf("failed to parse date: %w", ErrNilValue)
	case string:
		ret, ok := c.ParseDate(actual)
		return ret, ok, nil
	case *string:
		if actual == nil {
			return LocalDateTime{}, false, fmt.Errorf("failed to parse date: %w", ErrNilValue)
		}
		ret, ok := c.ParseDate(*actual)
		return ret, ok, nil
	}
	return LocalDateTime{}, false, fmt.Errorf("failed to parse date from %T: %w", value, ErrUnsupportedType)
}

// Extend returns converter with the same settings where specifiers precede already configured ones
func (c *Converter) Extend(specifiers ...layout.Specifier) *Converter {
	if len(specifiers) == 0 {
		return c
	}
	ret := *c
	ret.specifiers = make([]layout.Specifier, 0, len(specifiers)+len(c.specifiers))
	ret.specifiers = append(ret.specifiers, specifiers...)
	ret.specifiers = append(ret.specifiers, c.specifiers...)
	return &ret
}

func (c *Converter) convert(value LocalDateTime, from, to *time.Location) LocalDateTime {
	if !c.zoneConversion {
		return value
	}
	return LocalDateTimeOf(atZone(value, from).In(to))
}

// atZone returns instant of value in loc, for wall clock repeated at offset transition the earlier offset is used
func atZone(value LocalDateTime, loc *time.Location) time.Time {
	ts := value.In(loc)
	start, _ := ts.ZoneBounds()
	if start.IsZero() {
		return ts
	}
	_, offset := ts.Zone()
	_, prevOffset := start.Add(-time.Nanosecond).Zone()
	if prevOffset <= offset {
		return ts
	}
	earlier := ts.Add(time.Duration(offset-prevOffset) * time.Second)
	if earlier.Before(start) && LocalDateTimeOf(earlier.In(loc)) == value {
		return earlier
	}
	return ts
}

func (c *Converter) fromUTC(value LocalDateTime) LocalDateTime {
	return c.convert(value, time.UTC, c.location())
}

func (c *Converter) toUTC(value LocalDateTime) LocalDateTime {
	return c.convert(value, c.location(), time.UTC)
}

// New creates a converter, zoneConversion can not be changed afterwards
func New(zoneConversion bool, opts ...Option) *Converter {
	ret := &Converter{
		zoneConversion: zoneConversion,
		specifiers:     layout.Defaults(),
		location:       systemLocation,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
