package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTime_String(t *testing.T) {
	var testCases = []struct {
		description string
		value       LocalDateTime
		expect      string
	}{
		{description: "whole seconds", value: NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 0), expect: "2020-01-15T10:30:00"},
		{description: "millis", value: NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 5000000), expect: "2020-01-15T10:30:00.005"},
		{description: "nanos", value: NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 7), expect: "2020-01-15T10:30:00.000000007"},
		{description: "normalised", value: NewLocalDateTime(2020, time.January, 32, 0, 0, 0, 0), expect: "2020-02-01T00:00:00"},
		{description: "zero value", value: LocalDateTime{}, expect: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.value.String(), testCase.description)
	}
}

func TestLocalDateTime_Text(t *testing.T) {
	value := NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 250000000)
	text, err := value.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2020-01-15T10:30:00.250", string(text))

	var actual LocalDateTime
	require.NoError(t, actual.UnmarshalText(text))
	assert.Equal(t, value, actual)
	assert.NotNil(t, actual.UnmarshalText([]byte("2020-01-15T10:30:00Z")))

	text, err = LocalDateTime{}.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)
	require.NoError(t, actual.UnmarshalText(text))
	assert.True(t, actual.IsZero())
}

func TestLocalDateTime_In(t *testing.T) {
	value := NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 0)
	ts := value.In(utcPlus2)
	assert.Equal(t, time.Date(2020, time.January, 15, 8, 30, 0, 0, time.UTC), ts.UTC())
	assert.Equal(t, value, LocalDateTimeOf(ts))
	assert.True(t, NewLocalDateTime(2020, time.January, 15, 0, 0, 0, 0).Before(value))
}

func TestLocalDate(t *testing.T) {
	date := NewLocalDateTime(2020, time.January, 15, 10, 30, 0, 0).Date()
	assert.Equal(t, LocalDate{Year: 2020, Month: time.January, Day: 15}, date)
	assert.Equal(t, "2020-01-15", date.String())
	assert.Equal(t, NewLocalDateTime(2020, time.January, 15, 0, 0, 0, 0), date.AtStartOfDay())
	assert.True(t, LocalDateTime{}.IsZero())
}
