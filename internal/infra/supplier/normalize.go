// Package supplier normalizes heterogeneous hotel-supplier payload shapes
// into the canonical pricing model. Field-name synonyms and loose typing are
// resolved here, at the boundary, so the calculator stays free of that
// branching.
package supplier

import (
	"encoding/json"

	"stayquote/internal/domain/pricing"
	"stayquote/internal/pkg/numconv"
)

// RatePayload mirrors the upstream rate shape. Suppliers disagree on where
// the tax list lives (taxes, tax_data.taxes, total_taxes) and send amounts
// and counts as numbers or quoted strings, so the numeric fields stay raw
// until coercion.
type RatePayload struct {
	MatchHash  string          `json:"match_hash"`
	RoomName   string          `json:"room_name"`
	Price      json.RawMessage `json:"price"`
	Currency   string          `json:"currency"`
	Count      json.RawMessage `json:"count"`
	Taxes      []TaxPayload    `json:"taxes"`
	TaxData    *TaxData        `json:"tax_data"`
	TotalTaxes []TaxPayload    `json:"total_taxes"`
}

type TaxData struct {
	Taxes []TaxPayload `json:"taxes"`
}

// TaxPayload carries the two synonymous inclusion flags. If either one says
// "included", the tax is paid at booking; absence of both means due at
// hotel.
type TaxPayload struct {
	Name               string          `json:"name"`
	Amount             json.RawMessage `json:"amount"`
	Currency           string          `json:"currency"`
	Included           *bool           `json:"included"`
	IncludedBySupplier *bool           `json:"included_by_supplier"`
}

func (t TaxPayload) includedAtBooking() bool {
	if t.Included != nil && *t.Included {
		return true
	}
	if t.IncludedBySupplier != nil && *t.IncludedBySupplier {
		return true
	}
	return false
}

// taxList picks the first populated tax container. The three locations are
// alternative spellings of the same data, never complementary lists.
func (p RatePayload) taxList() []TaxPayload {
	if len(p.Taxes) > 0 {
		return p.Taxes
	}
	if p.TaxData != nil && len(p.TaxData.Taxes) > 0 {
		return p.TaxData.Taxes
	}
	return p.TotalTaxes
}

// Normalize converts one upstream rate into the canonical model. Missing or
// malformed amounts become zero, a missing count becomes one.
func Normalize(p RatePayload) pricing.RoomRate {
	raw := p.taxList()
	taxes := make([]pricing.TaxItem, 0, len(raw))
	for _, t := range raw {
		taxes = append(taxes, pricing.TaxItem{
			Name:              t.Name,
			Amount:            numconv.Decimal(t.Amount),
			IncludedAtBooking: t.includedAtBooking(),
		})
	}

	return pricing.RoomRate{
		MatchHash: p.MatchHash,
		RoomName:  p.RoomName,
		Price:     numconv.Decimal(p.Price),
		Currency:  p.Currency,
		Count:     numconv.Int(p.Count, 1),
		Taxes:     taxes,
	}
}

func NormalizeAll(payloads []RatePayload) []pricing.RoomRate {
	rates := make([]pricing.RoomRate, 0, len(payloads))
	for _, p := range payloads {
		rates = append(rates, Normalize(p))
	}
	return rates
}
