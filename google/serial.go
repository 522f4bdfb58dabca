package google

import (
	"math"
	"time"
)

// fromSerial converts a spreadsheet serial date (days since 1899-12-30, with the time
// of day as the fraction) to a time in the spreadsheet time zone. Rounded to the
// millisecond.
func fromSerial(serial float64, location *time.Location) time.Time {
	days := math.Floor(serial)
	ms := math.Round((serial - days) * 86400 * 1000)

	return time.Date(1899, time.December, 30+int(days), 0, 0, 0, int(ms)*int(time.Millisecond), location)
}
