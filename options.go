package datetime

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/datetime/layout"
)

// Option represents converter option
type Option func(c *Converter)

// WithSpecifiers sets ordered format specifiers, earlier listed take precedence
func WithSpecifiers(specifiers ...layout.Specifier) Option {
	return func(c *Converter) {
		c.specifiers = append([]layout.Specifier{}, specifiers...)
	}
}

// WithLocation sets local zone accessor, it is called on every conversion
func WithLocation(location func() *time.Location) Option {
	return func(c *Converter) {
		if location != nil {
			c.location = location
		}
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

func systemLocation() *time.Location {
	return time.Local
}
