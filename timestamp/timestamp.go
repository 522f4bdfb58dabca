// Package timestamp formats date/times for log file names and run stamps
// e.g. 2023_03_01_09h00min00s.
package timestamp

import (
	"fmt"
	"time"
)

// DefaultSeparator separates the year, month, day and hour.
const DefaultSeparator = "_"

// Format returns the local date/time as YEAR SEP MONTH SEP DAY SEP HHhMMminSSs.
func Format(instant time.Time, separator string) string {
	t := instant.Local()

	return fmt.Sprintf("%d%s%02d%s%02d%s%02dh%02dmin%02ds",
		t.Year(),
		separator,
		int(t.Month()),
		separator,
		t.Day(),
		separator,
		t.Hour(),
		t.Minute(),
		t.Second())
}

// Now formats the current time with the default separator.
func Now() string {
	return Format(time.Now(), DefaultSeparator)
}
