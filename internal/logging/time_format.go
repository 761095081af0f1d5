package logging

import "time"

// Records from today only carry the clock; older ones get the date too.
const consoleTimeLayout = "15:04:05.000"

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	local := ts.Local()
	if now := time.Now(); local.Year() != now.Year() || local.YearDay() != now.YearDay() {
		return local.Format(time.DateOnly + " " + consoleTimeLayout)
	}
	return local.Format(consoleTimeLayout)
}
