package dateutil

import (
	"time"
)

// DateLayout is the layout used for calendar dates in output and config
const DateLayout = "2006-01-02"

// Date builds a UTC calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a UTC date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// TruncateDay drops the time-of-day component
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMonth moves to the same day of the following month. The day is clamped
// to 28 so every month has a valid date.
func NextMonth(d time.Time) time.Time {
	year, month := d.Year(), d.Month()+1
	if month > time.December {
		month = time.January
		year++
	}
	day := d.Day()
	if day > 28 {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// DateRange returns every calendar day from start to end inclusive. An end
// before start yields an empty slice.
func DateRange(start, end time.Time) []time.Time {
	start, end = TruncateDay(start), TruncateDay(end)
	if end.Before(start) {
		return nil
	}
	days := DaysBetween(start, end) + 1
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// DaysBetween returns the whole days from start to end
func DaysBetween(start, end time.Time) int {
	return int(TruncateDay(end).Sub(TruncateDay(start)).Hours() / 24)
}

// IsWeekend reports whether the date falls on Saturday or Sunday
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BeginningOfMonth returns the first day of the month for a given date
func BeginningOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// ClockTime renders minutes past midnight as HH:MM:SS
func ClockTime(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return time.Date(2000, 1, 1, 0, minutes, 0, 0, time.UTC).Format("15:04:05")
}
