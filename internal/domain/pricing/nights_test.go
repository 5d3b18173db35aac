//go:build unit

package pricing_test

import (
	"testing"

	"stayquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "one night", checkIn: "2024-05-10", checkOut: "2024-05-11", want: 1},
		{name: "week-long stay", checkIn: "2024-05-10", checkOut: "2024-05-17", want: 7},
		{name: "same day returns one", checkIn: "2024-05-10", checkOut: "2024-05-10", want: 1},
		{name: "inverted range uses absolute difference", checkIn: "2024-05-14", checkOut: "2024-05-10", want: 4},
		{name: "month boundary", checkIn: "2024-01-30", checkOut: "2024-02-02", want: 3},
		{name: "leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", want: 2},
		{name: "missing check-in", checkIn: "", checkOut: "2024-05-11", want: 1},
		{name: "missing check-out", checkIn: "2024-05-10", checkOut: "", want: 1},
		{name: "both missing", checkIn: "", checkOut: "", want: 1},
		{name: "garbage check-in", checkIn: "not-a-date", checkOut: "2024-05-11", want: 1},
		{name: "garbage check-out", checkIn: "2024-05-10", checkOut: "soon", want: 1},
		{name: "rfc3339 timestamps", checkIn: "2024-05-10T15:00:00Z", checkOut: "2024-05-12T11:00:00Z", want: 2},
		{name: "partial day rounds up", checkIn: "2024-05-10T20:00:00Z", checkOut: "2024-05-12T08:00:00Z", want: 2},
		{name: "surrounding whitespace tolerated", checkIn: " 2024-05-10 ", checkOut: " 2024-05-12 ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsNeverBelowOne(t *testing.T) {
	// Whatever the inputs, the result must be a usable price multiplier.
	inputs := [][2]string{
		{"", ""},
		{"2024-05-10", "2024-05-10"},
		{"2024-05-10", "2024-05-09"},
		{"??", "!!"},
	}
	for _, pair := range inputs {
		assert.GreaterOrEqual(t, pricing.Nights(pair[0], pair[1]), 1)
	}
}
