package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stayquote/internal/domain/pricing"
	"stayquote/internal/infra/supplier"
	"stayquote/internal/pkg/clock"
	"stayquote/internal/pkg/errs"
	"stayquote/internal/usecase/queries"

	"github.com/google/uuid"
)

// QuoteRecord is the audit row persisted for every issued quote. RatesJSON
// keeps the raw supplier payload so a disputed price can be replayed later.
type QuoteRecord struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Stay      pricing.StayRange
	Breakdown pricing.Breakdown
	RatesJSON []byte
	CreatedAt time.Time
}

type QuoteRepository interface {
	Create(ctx context.Context, rec *QuoteRecord) error
}

// CreateQuoteInput accepts both request forms: the multi-room array form
// where each rate carries its own count, and the legacy single-rate form
// where the room count travels separately. Rate wins when both are set.
type CreateQuoteInput struct {
	Rates     []supplier.RatePayload
	Rate      *supplier.RatePayload
	RoomCount int
	CheckIn   string
	CheckOut  string
}

type QuoteCommands interface {
	CreateQuote(ctx context.Context, input CreateQuoteInput, sessionID uuid.UUID) (*queries.QuoteView, error)
}

type quoteCommandsImpl struct {
	repo       QuoteRepository
	cache      queries.QuoteCache
	calculator *pricing.Calculator
	clock      clock.Clock
}

func NewQuoteCommands(
	repo QuoteRepository,
	cache queries.QuoteCache,
	calculator *pricing.Calculator,
	clock clock.Clock,
) QuoteCommands {
	return &quoteCommandsImpl{
		repo:       repo,
		cache:      cache,
		calculator: calculator,
		clock:      clock,
	}
}

func (c *quoteCommandsImpl) CreateQuote(
	ctx context.Context,
	input CreateQuoteInput,
	sessionID uuid.UUID,
) (*queries.QuoteView, error) {
	if input.Rate == nil && len(input.Rates) == 0 {
		return nil, errs.ErrNoRates
	}

	stay := pricing.StayRange{CheckIn: input.CheckIn, CheckOut: input.CheckOut}

	var breakdown pricing.Breakdown
	var ratesJSON []byte
	if input.Rate != nil {
		breakdown = c.calculator.QuoteSingle(supplier.Normalize(*input.Rate), input.RoomCount, stay)
		ratesJSON = marshalRates([]supplier.RatePayload{*input.Rate})
	} else {
		breakdown = c.calculator.Quote(supplier.NormalizeAll(input.Rates), stay)
		ratesJSON = marshalRates(input.Rates)
	}

	rec := &QuoteRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		Stay:      stay,
		Breakdown: breakdown,
		RatesJSON: ratesJSON,
		CreatedAt: c.clock.Now(),
	}

	if err := c.repo.Create(ctx, rec); err != nil {
		slog.Error("quote persist failed", "quote_id", rec.ID, "error", err.Error())
		return nil, errs.ErrDatabaseOperationFailed
	}

	view := toQuoteView(rec)
	if err := c.cache.Set(ctx, view); err != nil {
		slog.Warn("quote cache prime failed", "quote_id", rec.ID, "error", err.Error())
	}

	return view, nil
}

func marshalRates(rates []supplier.RatePayload) []byte {
	b, err := json.Marshal(rates)
	if err != nil {
		// The payload was decoded from JSON a moment ago; re-encoding it
		// cannot realistically fail, and the snapshot is best-effort.
		return nil
	}
	return b
}

func toQuoteView(rec *QuoteRecord) *queries.QuoteView {
	return &queries.QuoteView{
		ID:              rec.ID,
		SessionID:       rec.SessionID,
		CheckIn:         rec.Stay.CheckIn,
		CheckOut:        rec.Stay.CheckOut,
		Nights:          rec.Breakdown.Nights,
		RoomCount:       rec.Breakdown.RoomCount,
		Subtotal:        rec.Breakdown.Subtotal,
		TaxesAtBooking:  rec.Breakdown.TaxesAtBooking,
		TaxesDueAtHotel: rec.Breakdown.TaxesDueAtHotel,
		TotalPayableNow: rec.Breakdown.TotalPayableNow,
		IsEstimatedTax:  rec.Breakdown.IsEstimatedTax,
		Currency:        rec.Breakdown.Currency,
		CreatedAt:       rec.CreatedAt,
	}
}
