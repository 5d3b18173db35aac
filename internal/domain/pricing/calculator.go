package pricing

import (
	"github.com/shopspring/decimal"
)

// DefaultFallbackTaxRate is the flat estimate applied when no rate in a
// quote carries itemized tax data. Suppliers sometimes omit tax breakdowns
// entirely; showing a flat estimate understates the total less than showing
// zero. Tunable via configuration, see Calculator.
var DefaultFallbackTaxRate = decimal.NewFromFloat(0.14)

// Calculator aggregates room-rate selections into a Breakdown. The zero
// value is not usable; construct with NewCalculator or NewCalculatorWithRate.
type Calculator struct {
	fallbackTaxRate decimal.Decimal
}

func NewCalculator() *Calculator {
	return &Calculator{fallbackTaxRate: DefaultFallbackTaxRate}
}

// NewCalculatorWithRate overrides the fallback tax rate, e.g. from config
// for regional tuning. Negative rates are clamped to zero.
func NewCalculatorWithRate(rate decimal.Decimal) *Calculator {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	return &Calculator{fallbackTaxRate: rate}
}

func (c *Calculator) FallbackTaxRate() decimal.Decimal {
	return c.fallbackTaxRate
}

// Quote computes the booking total for a multi-room selection. Each rate's
// own count is its multiplicity.
//
// Subtotal is sum(price * count); nights never enters the multiplication
// because prices are stay-total. Taxes explicitly included at booking are
// scaled by the same count and added to the payable-now total; taxes due at
// hotel are accumulated separately for display. The flat fallback estimate
// applies only when every rate in the selection lacks tax data.
//
// Currency is taken from the first rate. Mixed-currency selections are not
// converted or rejected; single-currency input is an upstream data-quality
// assumption.
func (c *Calculator) Quote(rates []RoomRate, stay StayRange) Breakdown {
	subtotal := decimal.Zero
	taxesAtBooking := decimal.Zero
	taxesDueAtHotel := decimal.Zero
	roomCount := 0
	currency := ""
	hasTaxData := false

	for _, rate := range rates {
		count := rate.EffectiveCount()
		mult := decimal.NewFromInt(int64(count))

		subtotal = subtotal.Add(rate.Price.Mul(mult))
		roomCount += count

		if currency == "" {
			currency = rate.Currency
		}
		if len(rate.Taxes) > 0 {
			hasTaxData = true
		}

		split := ClassifyTaxes(rate)
		taxesAtBooking = taxesAtBooking.Add(SumTaxes(split.PaidAtBooking).Mul(mult))
		taxesDueAtHotel = taxesDueAtHotel.Add(SumTaxes(split.DueAtHotel).Mul(mult))
	}

	estimated := false
	if !hasTaxData {
		taxesAtBooking = subtotal.Mul(c.fallbackTaxRate)
		taxesDueAtHotel = decimal.Zero
		estimated = true
	}

	return Breakdown{
		Nights:          Nights(stay.CheckIn, stay.CheckOut),
		RoomCount:       roomCount,
		Subtotal:        subtotal,
		TaxesAtBooking:  taxesAtBooking,
		TaxesDueAtHotel: taxesDueAtHotel,
		TotalPayableNow: subtotal.Add(taxesAtBooking),
		IsEstimatedTax:  estimated,
		Currency:        currency,
	}
}

// QuoteSingle is the single-rate form used by older booking flows that pass
// the room count separately. The rate's own Count is ignored; the effective
// multiplicity is max(roomCount, 1).
func (c *Calculator) QuoteSingle(rate RoomRate, roomCount int, stay StayRange) Breakdown {
	if roomCount < 1 {
		roomCount = 1
	}
	rate.Count = roomCount
	return c.Quote([]RoomRate{rate}, stay)
}
