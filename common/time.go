package common

import "time"

// Timestamp renders t as an ISO-8601 UTC timestamp with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
