// Package pricing computes guest-facing booking totals from normalized room
// rates. Everything in this package is a pure function of its inputs: no I/O,
// no clock, no shared state. Malformed input never produces an error here;
// the upstream adapter coerces values to safe defaults before they arrive.
package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxItem is one itemized tax or fee line belonging to a single RoomRate.
// IncludedAtBooking is true only when the supplier explicitly marked the
// item as charged during the booking transaction. Anything ambiguous is
// classified as payable at the property, never silently added to the
// online total.
type TaxItem struct {
	Name              string
	Amount            decimal.Decimal
	IncludedAtBooking bool
}

// RoomRate is one bookable room-rate line item.
//
// Price covers the entire stay for one unit of this room. It is NOT a
// nightly rate; multiplying it by nights is a bug. Only Count (room-unit
// multiplicity) scales it.
type RoomRate struct {
	MatchHash string
	RoomName  string
	Price     decimal.Decimal
	Currency  string
	Count     int
	Taxes     []TaxItem
}

// EffectiveCount resolves the number of units being purchased, defaulting
// to one when the upstream payload omits or zeroes the count.
func (r RoomRate) EffectiveCount() int {
	if r.Count < 1 {
		return 1
	}
	return r.Count
}

// StayRange holds the check-in/check-out dates as they arrived from the
// caller. Either value may be empty or unparsable; Nights handles both.
type StayRange struct {
	CheckIn  string
	CheckOut string
}

// Breakdown is the result of a quote computation.
//
// Nights is informational only: it never multiplies into Subtotal because
// rate prices are stay-total. TaxesDueAtHotel is reported for display and
// is excluded from TotalPayableNow. IsEstimatedTax marks the flat-rate
// fallback applied when no rate carried any tax data, so callers can label
// the figure as an estimate rather than a computed value.
type Breakdown struct {
	Nights          int
	RoomCount       int
	Subtotal        decimal.Decimal
	TaxesAtBooking  decimal.Decimal
	TaxesDueAtHotel decimal.Decimal
	TotalPayableNow decimal.Decimal
	IsEstimatedTax  bool
	Currency        string
}
