// Package scalar adapts datetime.Converter to schema scalar coercion rules.
package scalar

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/viant/datetime"
)

const (
	// DefaultName default scalar name
	DefaultName        = "LocalDateTime"
	defaultDescription = "Local date-time serialized as UTC instant, e.g. 2020-01-15T10:30:00Z"
)

// Scalar represents local date-time scalar
type Scalar struct {
	Name        string
	Description string
	converter   *datetime.Converter
}

// Converter returns underlying converter
func (s *Scalar) Converter() *datetime.Converter {
	return s.converter
}

// Serialize converts output value into UTC instant text
func (s *Scalar) Serialize(value interface{}) (string, error) {
	switch actual := value.(type) {
	case datetime.LocalDateTime:
		return s.format(&actual)
	case *datetime.LocalDateTime:
		return s.format(actual)
	case time.Time:
		local := datetime.LocalDateTimeOf(actual)
		return s.format(&local)
	case *time.Time:
		if actual == nil {
			return s.format(nil)
		}
		local := datetime.LocalDateTimeOf(*actual)
		return s.format(&local)
	case string:
		local, err := s.ParseValue(actual)
		if err != nil {
			return "", err
		}
		return s.format(&local)
	case nil:
		return s.format(nil)
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s can not be serialized from %T", s.Name, value))
}

// ParseValue converts input value into local date-time
func (s *Scalar) ParseValue(value interface{}) (datetime.LocalDateTime, error) {
	local, ok, err := s.converter.Parse(value)
	if err != nil {
		return datetime.LocalDateTime{}, s.coercionError(err)
	}
	if !ok {
		return datetime.LocalDateTime{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid %s value: %v", s.Name, describe(value)))
	}
	return local, nil
}

// ParseLiteral converts string literal into local date-time
func (s *Scalar) ParseLiteral(literal string) (datetime.LocalDateTime, error) {
	return s.ParseValue(literal)
}

func (s *Scalar) format(value *datetime.LocalDateTime) (string, error) {
	text, err := s.converter.ToISOString(value)
	if err != nil {
		return "", s.coercionError(err)
	}
	return text, nil
}

func (s *Scalar) coercionError(err error) error {
	if errors.Is(err, datetime.ErrNilValue) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s contract violation", s.Name)).
			WithCause(err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid %s value", s.Name)).
		WithCause(err)
}

func describe(value interface{}) interface{} {
	if text, ok := value.(*string); ok && text != nil {
		return *text
	}
	return value
}

// New creates a scalar
func New(converter *datetime.Converter, opts ...Option) *Scalar {
	ret := &Scalar{Name: DefaultName, Description: defaultDescription, converter: converter}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Option represents scalar option
type Option func(s *Scalar)

// WithName sets scalar name
func WithName(name string) Option {
	return func(s *Scalar) {
		s.Name = name
	}
}

// WithDescription sets scalar description
func WithDescription(description string) Option {
	return func(s *Scalar) {
		s.Description = description
	}
}
