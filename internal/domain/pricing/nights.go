package pricing

import (
	"math"
	"strings"
	"time"
)

// Date layouts accepted from booking-flow callers. Suppliers send plain
// calendar dates; some upstream forms still carry a full timestamp.
var stayDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Nights returns the billable night count for a stay.
//
// A missing or unparsable date, an inverted range, or a same-day pair all
// yield 1: a stay is never priced at zero or negative nights, and bad input
// must not propagate a zero multiplier into a price display. Otherwise the
// result is the absolute whole-day difference, rounded up.
func Nights(checkIn, checkOut string) int {
	in, okIn := parseStayDate(checkIn)
	out, okOut := parseStayDate(checkOut)
	if !okIn || !okOut {
		return 1
	}

	days := math.Ceil(math.Abs(out.Sub(in).Hours() / 24))
	if days < 1 {
		return 1
	}
	return int(days)
}

func parseStayDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stayDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
