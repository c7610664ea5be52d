// Package datetime converts between loosely formatted date/time text and a zone-less local date-time value.
//
// A Converter parses text against an ordered list of format specifiers (see layout package), the first
// specifier interpreting the text either as a date-time or as a bare date wins. Formatting always produces
// a strict UTC instant, e.g. 2020-01-15T10:30:00Z.
//
// When zone conversion is enabled, local values are treated as expressed in the local zone, and converted
// to UTC on formatting, and from UTC on date-time parsing. Bare dates are never zone converted.
package datetime
