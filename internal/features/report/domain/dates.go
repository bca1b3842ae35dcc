package domain

import (
	"regexp"
	"strings"
)

// datePattern finds the first YYYY-M-D or YYYY/M/D shaped group in a string.
var datePattern = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)

// NormalizeDate reformats the first date-shaped group in s as DD-MM-YYYY,
// zero-padding month and day. Strings without such a group pass through
// unchanged. This is a best-effort reformat, not a calendar parser:
// out-of-range month or day values are padded and reordered, not rejected.
func NormalizeDate(value string) string {
	s := strings.TrimSpace(value)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}

	yyyy, mm, dd := m[1], m[2], m[3]
	return zeroPad(dd) + "-" + zeroPad(mm) + "-" + yyyy
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
