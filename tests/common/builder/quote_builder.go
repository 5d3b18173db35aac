//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	reqdto "stayquote/internal/handler/dto/request"
	"stayquote/internal/infra/supplier"
	"stayquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteBuilder struct {
	SessionID uuid.UUID
	RoomName  string
	Price     string
	Currency  string
	Count     int
	TaxAmount string
	Included  bool
	CheckIn   string
	CheckOut  string
	CreatedAt time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		SessionID: uuid.New(),
		RoomName:  "Deluxe Double",
		Price:     "500",
		Currency:  "SAR",
		Count:     1,
		TaxAmount: "40",
		Included:  true,
		CheckIn:   "2024-05-10",
		CheckOut:  "2024-05-12",
		CreatedAt: time.Now(),
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildRatePayload() supplier.RatePayload {
	included := b.Included
	return supplier.RatePayload{
		MatchHash: uuid.NewString(),
		RoomName:  b.RoomName,
		Price:     json.RawMessage(`"` + b.Price + `"`),
		Currency:  b.Currency,
		Count:     json.RawMessage(intRaw(b.Count)),
		Taxes: []supplier.TaxPayload{
			{
				Name:     "VAT",
				Amount:   json.RawMessage(`"` + b.TaxAmount + `"`),
				Included: &included,
			},
		},
	}
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	return reqdto.CreateQuoteRequest{
		Rates:    []supplier.RatePayload{b.BuildRatePayload()},
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

func (b *QuoteBuilder) BuildView() *queries.QuoteView {
	price := decimal.RequireFromString(b.Price)
	tax := decimal.RequireFromString(b.TaxAmount)
	mult := decimal.NewFromInt(int64(b.Count))

	subtotal := price.Mul(mult)
	taxesAtBooking := tax.Mul(mult)

	return &queries.QuoteView{
		ID:              uuid.New(),
		SessionID:       b.SessionID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          2,
		RoomCount:       b.Count,
		Subtotal:        subtotal,
		TaxesAtBooking:  taxesAtBooking,
		TaxesDueAtHotel: decimal.Zero,
		TotalPayableNow: subtotal.Add(taxesAtBooking),
		IsEstimatedTax:  false,
		Currency:        b.Currency,
		CreatedAt:       b.CreatedAt,
	}
}

func intRaw(n int) string {
	return decimal.NewFromInt(int64(n)).String()
}
