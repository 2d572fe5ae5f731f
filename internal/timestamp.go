package internal

import "time"

// TimestampLayout is a fixed-width ISO-8601 layout. The width matters:
// records are ordered by comparing timestamp strings, and RFC3339Nano trims
// trailing zeros, which breaks lexicographic ordering across precisions.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar-date encoding used by item dates. Lexicographic
// comparison of these strings matches chronological order.
const DateLayout = "2006-01-02"

// NowTimestamp returns the current time as a sortable ISO-8601 UTC string.
func NowTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}
