package layout

import (
	"fmt"
	"strings"
)

const (
	// ISOInstantLayout date-time with mandatory offset or Z
	ISOInstantLayout = "2006-01-02T15:04:05Z07:00"
	// ISOInstantMinutesLayout date-time without seconds with mandatory offset or Z
	ISOInstantMinutesLayout = "2006-01-02T15:04Z07:00"
	// ISOLocalDateTimeLayout date-time without offset
	ISOLocalDateTimeLayout = "2006-01-02T15:04:05"
	// ISOLocalDateTimeMinutesLayout date-time without seconds and offset
	ISOLocalDateTimeMinutesLayout = "2006-01-02T15:04"
	// ISOLocalDateLayout calendar date
	ISOLocalDateLayout = "2006-01-02"
)

const (
	defaultKeyword = "default"
	lenientKeyword = "lenient"
)

var (
	ISOInstant              = newISOLayout("ISOInstant", ISOInstantLayout)
	ISOInstantMinutes       = newISOLayout("ISOInstantMinutes", ISOInstantMinutesLayout)
	ISOLocalDateTime        = newISOLayout("ISOLocalDateTime", ISOLocalDateTimeLayout)
	ISOLocalDateTimeMinutes = newISOLayout("ISOLocalDateTimeMinutes", ISOLocalDateTimeMinutesLayout)
	ISOLocalDate            = newISOLayout("ISOLocalDate", ISOLocalDateLayout)
)

// Defaults returns default specifiers in precedence order
func Defaults() []Specifier {
	return []Specifier{ISOInstant, ISOInstantMinutes, ISOLocalDateTime, ISOLocalDateTimeMinutes, ISOLocalDate}
}

// Parse builds ordered specifiers from configured formats,
// 'default' expands to Defaults, 'lenient' to Lenient, 'layout:' prefix takes verbatim go layout, other values are treated as date pattern
func Parse(formats []string) ([]Specifier, error) {
	var result []Specifier
	for i, format := range formats {
		format = strings.TrimSpace(format)
		switch {
		case format == "":
			return nil, fmt.Errorf("format[%d] was empty", i)
		case strings.EqualFold(format, defaultKeyword):
			result = append(result, Defaults()...)
		case strings.EqualFold(format, lenientKeyword):
			result = append(result, Lenient())
		case strings.HasPrefix(format, "layout:"):
			result = append(result, NewLayout("", strings.TrimPrefix(format, "layout:")))
		default:
			result = append(result, NewPattern(format))
		}
	}
	return result, nil
}
