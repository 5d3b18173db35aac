package response

import (
	"log/slog"
	"time"

	"stayquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID              uuid.UUID       `json:"id"`
	SessionID       uuid.UUID       `json:"sessionId"`
	CheckIn         string          `json:"checkIn,omitempty"`
	CheckOut        string          `json:"checkOut,omitempty"`
	Nights          int             `json:"nights"`
	RoomCount       int             `json:"roomCount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxesAtBooking  decimal.Decimal `json:"taxesAtBooking"`
	TaxesDueAtHotel decimal.Decimal `json:"taxesDueAtHotel"`
	TotalPayableNow decimal.Decimal `json:"totalPayableNow"`
	IsEstimatedTax  bool            `json:"isEstimatedTax"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		// Field sets match by construction; a failure here is a code bug.
		slog.Error("failed to map quote view to response", "error", err.Error())
	}
	return &resp
}

func FromQuoteList(views []*queries.QuoteView) []*QuoteResponse {
	items := make([]*QuoteResponse, 0, len(views))
	for _, view := range views {
		items = append(items, FromQuoteView(view))
	}
	return items
}

type GuestSessionResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
