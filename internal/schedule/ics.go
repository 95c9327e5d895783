package schedule

import (
	"strings"
	"time"
)

// DefaultTitle is the placeholder title for bookings whose ICS block has no
// usable SUMMARY field.
const DefaultTitle = "LEXI Booking"

// compactTimeLayout is the fixed timestamp format used by DTSTART/DTEND
// values, e.g. 20250301T090000.
const compactTimeLayout = "20060102T150405"

// icsBlock is the embedded semi-structured text block of one booking record.
//
// Fields are located by marker and read to the next line terminator. Each
// extraction is independent: a missing or malformed field degrades to its
// zero value and never affects the other fields of the record.
type icsBlock string

// field returns the value of a plain "TAG:" field, trimmed.
// Returns "" if the marker is absent or the value is empty after trimming.
func (b icsBlock) field(tag string) string {
	marker := tag + ":"
	_, rest, ok := strings.Cut(string(b), marker)
	if !ok {
		return ""
	}
	return strings.TrimSpace(firstLine(rest))
}

// zonedTime returns the value of a zone-qualified "TAG;TZID=<zone>:" field
// parsed as a compact timestamp localised to loc. The second return is false
// when the marker is absent or the value does not parse.
func (b icsBlock) zonedTime(tag string, loc *time.Location) (time.Time, bool) {
	marker := tag + ";TZID=" + loc.String() + ":"
	_, rest, ok := strings.Cut(string(b), marker)
	if !ok {
		return time.Time{}, false
	}

	raw := strings.TrimSpace(firstLine(rest))
	ts, err := time.ParseInLocation(compactTimeLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// firstLine cuts s at the first CR or LF.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
