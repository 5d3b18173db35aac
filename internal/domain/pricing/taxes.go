package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxSplit partitions one rate's tax lines by where the guest pays them.
type TaxSplit struct {
	PaidAtBooking []TaxItem
	DueAtHotel    []TaxItem
}

// ClassifyTaxes partitions a rate's taxes into paid-at-booking and
// due-at-hotel groups. An item lands in PaidAtBooking only when the
// supplier explicitly flagged it as included; the absence of a signal means
// due-at-hotel.
func ClassifyTaxes(rate RoomRate) TaxSplit {
	var split TaxSplit
	for _, tax := range rate.Taxes {
		if tax.IncludedAtBooking {
			split.PaidAtBooking = append(split.PaidAtBooking, tax)
		} else {
			split.DueAtHotel = append(split.DueAtHotel, tax)
		}
	}
	return split
}

// SumTaxes totals the amounts of a tax group. An empty or nil group sums to
// zero. No currency conversion happens here: items within one rate's list
// share an effective currency by upstream contract.
func SumTaxes(items []TaxItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	return sum
}
