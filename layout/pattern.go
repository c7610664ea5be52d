package layout

import (
	"strings"

	ftime "github.com/viant/tagly/format/time"
)

var javaPatternToTimeLayoutReplacer = strings.NewReplacer(
	"'T'", "T",
	"''", "'",
	"yyyy", "2006",
	"uuuu", "2006",
	"yy", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"dd", "02",
	"d", "2",
	"EEEE", "Monday",
	"EEE", "Mon",
	"HH", "15",
	"hh", "03",
	"h", "3",
	"mm", "04",
	"m", "4",
	"ss", "05",
	"s", "5",
	".SSSSSSSSS", ".000000000",
	".SSSSSS", ".000000",
	".SSS", ".000",
	"a", "PM",
	"XXX", "Z07:00",
	"XX", "Z0700",
	"X", "Z07",
	"xxx", "-07:00",
	"xx", "-0700",
	"Z", "-0700",
	"z", "MST",
)

// PatternToTimeLayout converts date pattern to go time layout.
// Patterns using 'yyyy', 'uuuu' or 'HH' are treated as java.time style, other as ISO 2022-07-15 date format.
func PatternToTimeLayout(pattern string) string {
	if isJavaPattern(pattern) {
		return javaPatternToTimeLayoutReplacer.Replace(pattern)
	}
	return ftime.DateFormatToTimeLayout(pattern)
}

func isJavaPattern(pattern string) bool {
	return strings.Contains(pattern, "yyyy") ||
		strings.Contains(pattern, "uuuu") ||
		strings.Contains(pattern, "HH") ||
		strings.Contains(pattern, "'T'")
}

// hasClock returns true if layout carries any time of day element
func hasClock(layout string) bool {
	for i := 0; i < len(layout); i++ {
		switch layout[i] {
		case '1':
			if strings.HasPrefix(layout[i:], "15") {
				return true
			}
		case '0':
			if strings.HasPrefix(layout[i:], "03") || strings.HasPrefix(layout[i:], "04") || strings.HasPrefix(layout[i:], "05") {
				return true
			}
		case '3':
			if strings.HasPrefix(layout[i:], "3:") {
				return true
			}
		case 'P', 'p':
			if strings.HasPrefix(layout[i:], "PM") || strings.HasPrefix(layout[i:], "pm") {
				return true
			}
		}
	}
	return false
}
