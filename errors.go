package datetime

import "errors"

var (
	// ErrNilValue is returned when nil value is passed, it signals caller contract violation
	ErrNilValue = errors.New("value was nil")
	// ErrUnsupportedType is returned when value is neither string nor *string
	ErrUnsupportedType = errors.New("unsupported value type")
)
