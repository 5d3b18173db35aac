package request

import (
	"stayquote/internal/infra/supplier"
	"stayquote/internal/usecase/commands"
)

// CreateQuoteRequest accepts both booking-flow forms. The multi-room form
// sends rates, each with its own count; the older single-rate form sends
// rate plus room_count. Dates are optional on purpose: the calculator
// defaults unusable ranges to one night rather than rejecting the request.
type CreateQuoteRequest struct {
	Rates     []supplier.RatePayload `json:"rates,omitempty"`
	Rate      *supplier.RatePayload  `json:"rate,omitempty"`
	RoomCount int                    `json:"room_count,omitempty"`
	CheckIn   string                 `json:"check_in,omitempty"`
	CheckOut  string                 `json:"check_out,omitempty"`
}

func (r CreateQuoteRequest) ToInput() commands.CreateQuoteInput {
	return commands.CreateQuoteInput{
		Rates:     r.Rates,
		Rate:      r.Rate,
		RoomCount: r.RoomCount,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
	}
}

func (r CreateQuoteRequest) HasRates() bool {
	return r.Rate != nil || len(r.Rates) > 0
}
