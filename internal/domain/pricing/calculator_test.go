//go:build unit

package pricing_test

import (
	"testing"

	"stayquote/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestQuoteSingleRateWithIncludedTax(t *testing.T) {
	calc := pricing.NewCalculator()

	rate := pricing.RoomRate{
		MatchHash: "r1",
		RoomName:  "Deluxe Double",
		Price:     dec(500),
		Currency:  "SAR",
		Count:     2,
		Taxes: []pricing.TaxItem{
			{Name: "VAT", Amount: dec(40), IncludedAtBooking: true},
		},
	}

	bd := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{CheckIn: "2024-05-10", CheckOut: "2024-05-12"})

	assert.True(t, bd.Subtotal.Equal(dec(1000)), "subtotal: %s", bd.Subtotal)
	assert.True(t, bd.TaxesAtBooking.Equal(dec(80)), "taxesAtBooking: %s", bd.TaxesAtBooking)
	assert.True(t, bd.TotalPayableNow.Equal(dec(1080)), "totalPayableNow: %s", bd.TotalPayableNow)
	assert.True(t, bd.TaxesDueAtHotel.IsZero())
	assert.False(t, bd.IsEstimatedTax)
	assert.Equal(t, "SAR", bd.Currency)
	assert.Equal(t, 2, bd.RoomCount)
	assert.Equal(t, 2, bd.Nights)
}

func TestQuoteFallbackTaxWhenNoTaxData(t *testing.T) {
	calc := pricing.NewCalculator()

	rate := pricing.RoomRate{Price: dec(500), Currency: "SAR"}

	bd := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{})

	assert.True(t, bd.IsEstimatedTax, "flat estimate must be labeled, not passed off as computed")
	assert.True(t, bd.TaxesAtBooking.Equal(dec(70)), "taxesAtBooking: %s", bd.TaxesAtBooking)
	assert.True(t, bd.TotalPayableNow.Equal(dec(570)), "totalPayableNow: %s", bd.TotalPayableNow)
	assert.True(t, bd.TaxesDueAtHotel.IsZero())
}

func TestQuoteMultiRateMixedTaxData(t *testing.T) {
	calc := pricing.NewCalculator()

	rates := []pricing.RoomRate{
		{
			Price:    dec(300),
			Currency: "SAR",
			Count:    1,
			Taxes: []pricing.TaxItem{
				{Name: "VAT", Amount: dec(20), IncludedAtBooking: true},
				{Name: "City tax", Amount: dec(10)},
			},
		},
		{Price: dec(200), Currency: "SAR", Count: 2, Taxes: []pricing.TaxItem{}},
	}

	bd := calc.Quote(rates, pricing.StayRange{})

	assert.True(t, bd.Subtotal.Equal(dec(700)), "subtotal: %s", bd.Subtotal)
	// The second rate has no taxes but the fallback does not trigger:
	// it applies only when every rate lacks tax data.
	assert.True(t, bd.TaxesAtBooking.Equal(dec(20)), "taxesAtBooking: %s", bd.TaxesAtBooking)
	assert.True(t, bd.TaxesDueAtHotel.Equal(dec(10)), "taxesDueAtHotel: %s", bd.TaxesDueAtHotel)
	assert.True(t, bd.TotalPayableNow.Equal(dec(720)), "totalPayableNow: %s", bd.TotalPayableNow)
	assert.False(t, bd.IsEstimatedTax)
	assert.Equal(t, 3, bd.RoomCount)
}

func TestQuoteDueAtHotelExcludedFromPayableNow(t *testing.T) {
	calc := pricing.NewCalculator()

	rate := pricing.RoomRate{
		Price:    dec(100),
		Currency: "USD",
		Taxes: []pricing.TaxItem{
			{Name: "Resort fee", Amount: dec(35)},
		},
	}

	bd := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{})

	assert.True(t, bd.TaxesAtBooking.IsZero())
	assert.True(t, bd.TaxesDueAtHotel.Equal(dec(35)))
	assert.True(t, bd.TotalPayableNow.Equal(dec(100)))
	assert.False(t, bd.IsEstimatedTax, "rate carries tax data, no estimate")
}

func TestQuoteDueAtHotelScalesWithCount(t *testing.T) {
	calc := pricing.NewCalculator()

	rate := pricing.RoomRate{
		Price:    dec(150),
		Currency: "EUR",
		Count:    3,
		Taxes: []pricing.TaxItem{
			{Name: "City tax", Amount: dec(4)},
			{Name: "VAT", Amount: dec(15), IncludedAtBooking: true},
		},
	}

	bd := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{})

	assert.True(t, bd.Subtotal.Equal(dec(450)))
	assert.True(t, bd.TaxesAtBooking.Equal(dec(45)))
	assert.True(t, bd.TaxesDueAtHotel.Equal(dec(12)))
}

func TestQuoteSingle(t *testing.T) {
	calc := pricing.NewCalculator()
	stay := pricing.StayRange{CheckIn: "2024-05-10", CheckOut: "2024-05-13"}

	t.Run("fallback room count overrides rate count", func(t *testing.T) {
		rate := pricing.RoomRate{Price: dec(250), Currency: "SAR", Count: 5}
		bd := calc.QuoteSingle(rate, 2, stay)

		assert.True(t, bd.Subtotal.Equal(dec(500)), "subtotal: %s", bd.Subtotal)
		assert.Equal(t, 2, bd.RoomCount)
		assert.Equal(t, 3, bd.Nights)
	})

	t.Run("non-positive room count defaults to one", func(t *testing.T) {
		rate := pricing.RoomRate{Price: dec(250), Currency: "SAR"}
		for _, n := range []int{0, -3} {
			bd := calc.QuoteSingle(rate, n, stay)
			assert.True(t, bd.Subtotal.Equal(dec(250)))
			assert.Equal(t, 1, bd.RoomCount)
		}
	})
}

func TestQuoteDefaultsCountToOne(t *testing.T) {
	calc := pricing.NewCalculator()

	bd := calc.Quote([]pricing.RoomRate{{Price: dec(90), Currency: "GBP"}}, pricing.StayRange{})

	assert.True(t, bd.Subtotal.Equal(dec(90)))
	assert.Equal(t, 1, bd.RoomCount)
}

func TestQuoteConfigurableFallbackRate(t *testing.T) {
	calc := pricing.NewCalculatorWithRate(dec(0.05))

	bd := calc.Quote([]pricing.RoomRate{{Price: dec(200), Currency: "AED"}}, pricing.StayRange{})

	assert.True(t, bd.IsEstimatedTax)
	assert.True(t, bd.TaxesAtBooking.Equal(dec(10)), "taxesAtBooking: %s", bd.TaxesAtBooking)
	assert.True(t, bd.TotalPayableNow.Equal(dec(210)))
}

func TestQuoteCurrencyFromFirstRate(t *testing.T) {
	calc := pricing.NewCalculator()

	rates := []pricing.RoomRate{
		{Price: dec(100), Currency: "SAR"},
		{Price: dec(100), Currency: "USD"},
	}

	bd := calc.Quote(rates, pricing.StayRange{})
	assert.Equal(t, "SAR", bd.Currency)
}

func TestQuoteSubtotalNeverMultipliedByNights(t *testing.T) {
	calc := pricing.NewCalculator()
	rate := pricing.RoomRate{Price: dec(500), Currency: "SAR", Count: 1}

	short := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{CheckIn: "2024-05-10", CheckOut: "2024-05-11"})
	long := calc.Quote([]pricing.RoomRate{rate}, pricing.StayRange{CheckIn: "2024-05-10", CheckOut: "2024-05-20"})

	require.Equal(t, 1, short.Nights)
	require.Equal(t, 10, long.Nights)
	assert.True(t, short.Subtotal.Equal(long.Subtotal), "price is stay-total, nights are display-only")
	assert.True(t, short.TotalPayableNow.Equal(long.TotalPayableNow))
}

func TestQuoteIdempotent(t *testing.T) {
	calc := pricing.NewCalculator()

	rates := []pricing.RoomRate{
		{
			Price:    dec(320.50),
			Currency: "SAR",
			Count:    2,
			Taxes: []pricing.TaxItem{
				{Name: "VAT", Amount: dec(48.08), IncludedAtBooking: true},
				{Name: "Municipality fee", Amount: dec(8)},
			},
		},
		{Price: dec(180), Currency: "SAR"},
	}
	stay := pricing.StayRange{CheckIn: "2024-05-10", CheckOut: "2024-05-14"}

	first := calc.Quote(rates, stay)
	second := calc.Quote(rates, stay)

	if diff := cmp.Diff(first, second, cmp.Comparer(decimal.Decimal.Equal)); diff != "" {
		t.Errorf("repeated quote differs (-first +second):\n%s", diff)
	}
}

func TestQuoteEmptySelection(t *testing.T) {
	calc := pricing.NewCalculator()

	bd := calc.Quote(nil, pricing.StayRange{})

	assert.Equal(t, 0, bd.RoomCount)
	assert.True(t, bd.Subtotal.IsZero())
	assert.True(t, bd.TotalPayableNow.IsZero())
	assert.Equal(t, 1, bd.Nights)
}
