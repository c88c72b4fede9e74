package attendance

import (
	"math"
	"time"
)

// WorkedHours converts a check-in/check-out pair into hours rounded to two
// decimal places. Callers guarantee checkOut is not before checkIn.
func WorkedHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}
