package utils

import "time"

const layoutDateTime = "2006-01-02 15:04:05"

// FormatDateTime formats a timestamp for ticket display.
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}
