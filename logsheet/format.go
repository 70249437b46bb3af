package logsheet

import (
	"fmt"
	"time"
)

// dateLayouts are the datetime shapes accepted from upstream planners, tried
// in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a planner-supplied date or datetime string.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClock renders a minute of day as a 12-hour clock label, e.g. "6:00 AM".
func FormatClock(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	hour12 := (hours+11)%12 + 1
	return fmt.Sprintf("%d:%02d %s", hour12, mins, suffix)
}

// FormatHours renders a duration in minutes as a compact label like "7h 30m".
func FormatHours(minutes int) string {
	if minutes == 0 {
		return "0h"
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", hours, mins)
}

// WindowLabel renders an event's time window, e.g. "6:00 AM - 10:00 AM".
func WindowLabel(startMinutes, endMinutes int) string {
	return FormatClock(startMinutes) + " - " + FormatClock(endMinutes)
}

// FormatDateLabel renders a human-readable day label like "Wed, Jan 10".
// Unparseable or missing dates fall back to "Day <n>" (1-based).
func FormatDateLabel(dateValue string, index int) string {
	if dateValue == "" {
		return fmt.Sprintf("Day %d", index+1)
	}
	t, ok := ParseDate(dateValue)
	if !ok {
		return fmt.Sprintf("Day %d", index+1)
	}
	return t.Format("Mon, Jan 2")
}
