package zone

import (
	"strconv"
	"time"
)

// FormatOffset renders a signed hour count. Zero and positive values carry a
// leading '+'; negative values carry only the minus sign.
func FormatOffset(hours int) string {
	if hours >= 0 {
		return "+" + strconv.Itoa(hours)
	}
	return strconv.Itoa(hours)
}

// FormatClockFace renders t as "H:mm" in t's own location: 24-hour clock,
// hour without a leading zero, minutes padded to two digits.
func FormatClockFace(t time.Time) string {
	minute := t.Minute()
	face := strconv.Itoa(t.Hour()) + ":"
	if minute < 10 {
		face += "0"
	}
	return face + strconv.Itoa(minute)
}
