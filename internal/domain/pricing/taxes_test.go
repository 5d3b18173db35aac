//go:build unit

package pricing_test

import (
	"testing"

	"stayquote/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTaxes(t *testing.T) {
	rate := pricing.RoomRate{
		Taxes: []pricing.TaxItem{
			{Name: "VAT", Amount: decimal.NewFromInt(40), IncludedAtBooking: true},
			{Name: "City tax", Amount: decimal.NewFromInt(10)},
			{Name: "Service fee", Amount: decimal.NewFromInt(5), IncludedAtBooking: true},
			{Name: "Resort fee", Amount: decimal.NewFromInt(25)},
		},
	}

	split := pricing.ClassifyTaxes(rate)

	assert.Len(t, split.PaidAtBooking, 2)
	assert.Len(t, split.DueAtHotel, 2)
	assert.Equal(t, "VAT", split.PaidAtBooking[0].Name)
	assert.Equal(t, "Service fee", split.PaidAtBooking[1].Name)
	assert.Equal(t, "City tax", split.DueAtHotel[0].Name)
	assert.Equal(t, "Resort fee", split.DueAtHotel[1].Name)
}

func TestClassifyTaxesUnflaggedDefaultsToDueAtHotel(t *testing.T) {
	// No explicit "included" signal means the guest pays at the property.
	rate := pricing.RoomRate{
		Taxes: []pricing.TaxItem{
			{Name: "Unlabeled levy", Amount: decimal.NewFromInt(12)},
		},
	}

	split := pricing.ClassifyTaxes(rate)

	assert.Empty(t, split.PaidAtBooking)
	assert.Len(t, split.DueAtHotel, 1)
}

func TestClassifyTaxesEmptyRate(t *testing.T) {
	split := pricing.ClassifyTaxes(pricing.RoomRate{})
	assert.Empty(t, split.PaidAtBooking)
	assert.Empty(t, split.DueAtHotel)
}

func TestSumTaxes(t *testing.T) {
	t.Run("empty sequence sums to zero", func(t *testing.T) {
		assert.True(t, pricing.SumTaxes(nil).IsZero())
		assert.True(t, pricing.SumTaxes([]pricing.TaxItem{}).IsZero())
	})

	t.Run("sums amounts", func(t *testing.T) {
		items := []pricing.TaxItem{
			{Amount: decimal.NewFromFloat(12.50)},
			{Amount: decimal.NewFromFloat(7.25)},
			{Amount: decimal.NewFromInt(30)},
		}
		assert.True(t, pricing.SumTaxes(items).Equal(decimal.NewFromFloat(49.75)))
	})

	t.Run("zero-value amounts are harmless", func(t *testing.T) {
		// Malformed upstream amounts arrive here coerced to the decimal
		// zero value; the sum must stay a plain number.
		items := []pricing.TaxItem{
			{Amount: decimal.Decimal{}},
			{Amount: decimal.NewFromInt(8)},
		}
		assert.True(t, pricing.SumTaxes(items).Equal(decimal.NewFromInt(8)))
	})
}
