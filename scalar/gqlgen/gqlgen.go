// Package gqlgen provides github.com/99designs/gqlgen marshalers for local date-time scalar.
//
// Bind generated model functions to a Codec, e.g.:
//
//	var codec = gqlgen.New(scalar.New(datetime.New(true)))
//
//	func MarshalLocalDateTime(v datetime.LocalDateTime) graphql.Marshaler { return codec.Marshal(v) }
//	func UnmarshalLocalDateTime(v interface{}) (datetime.LocalDateTime, error) { return codec.Unmarshal(v) }
package gqlgen

import (
	"github.com/99designs/gqlgen/graphql"
	"github.com/viant/datetime"
	"github.com/viant/datetime/scalar"
)

// Codec marshals local date-time values
type Codec struct {
	scalar *scalar.Scalar
}

// Marshal returns marshaler writing UTC instant, unformattable value is written as null
func (c *Codec) Marshal(value datetime.LocalDateTime) graphql.Marshaler {
	text, err := c.scalar.Serialize(value)
	if err != nil {
		return graphql.Null
	}
	return graphql.MarshalString(text)
}

// MarshalPtr returns marshaler for optional value
func (c *Codec) MarshalPtr(value *datetime.LocalDateTime) graphql.Marshaler {
	if value == nil {
		return graphql.Null
	}
	return c.Marshal(*value)
}

// Unmarshal parses input value
func (c *Codec) Unmarshal(value interface{}) (datetime.LocalDateTime, error) {
	return c.scalar.ParseValue(value)
}

// New creates a codec
func New(aScalar *scalar.Scalar) *Codec {
	return &Codec{scalar: aScalar}
}
