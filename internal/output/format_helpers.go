package output

import (
	"strconv"
	"time"
)

// FormatDuration rounds a duration to milliseconds for display.
func FormatDuration(d time.Duration) string { return d.Round(time.Millisecond).String() }

// FormatRows renders a row count with thousands separators.
func FormatRows(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

func intToString(i int) string { return strconv.Itoa(i) }
