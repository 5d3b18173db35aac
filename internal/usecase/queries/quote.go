package queries

import (
	"context"
	"log/slog"
	"time"

	"stayquote/internal/infra"
	"stayquote/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteView is the read model returned to callers. Amounts are decimals so
// the display layer decides formatting; nothing here is rounded.
type QuoteView struct {
	ID              uuid.UUID       `json:"id"`
	SessionID       uuid.UUID       `json:"session_id"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Nights          int             `json:"nights"`
	RoomCount       int             `json:"room_count"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxesAtBooking  decimal.Decimal `json:"taxes_at_booking"`
	TaxesDueAtHotel decimal.Decimal `json:"taxes_due_at_hotel"`
	TotalPayableNow decimal.Decimal `json:"total_payable_now"`
	IsEstimatedTax  bool            `json:"is_estimated_tax"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"created_at"`
}

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	FindBySessionFirstPage(ctx context.Context, sessionID uuid.UUID, limit int32) ([]*QuoteView, error)
	FindBySessionKeyset(ctx context.Context, sessionID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteView, error)
}

// QuoteCache is the TTL key-value collaborator in front of the read store.
// Get returns (nil, nil) on a miss.
type QuoteCache interface {
	Get(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	Set(ctx context.Context, view *QuoteView) error
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, cursor *Cursor, limit int) ([]*QuoteView, *Cursor, error)
}

type quoteQueriesImpl struct {
	store QuoteReadStore
	cache QuoteCache
}

func NewQuoteQueries(store QuoteReadStore, cache QuoteCache) QuoteQueries {
	return &quoteQueriesImpl{
		store: store,
		cache: cache,
	}
}

func (q *quoteQueriesImpl) GetQuote(ctx context.Context, id uuid.UUID) (*QuoteView, error) {
	view, err := q.cache.Get(ctx, id)
	if err != nil {
		// A broken cache must not take the read path down.
		slog.Warn("quote cache read failed", "quote_id", id, "error", err.Error())
	}
	if view != nil {
		return view, nil
	}

	view, err = q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		slog.Error("quote lookup failed", "quote_id", id, "error", err.Error())
		return nil, errs.ErrDatabaseOperationFailed
	}

	if cacheErr := q.cache.Set(ctx, view); cacheErr != nil {
		slog.Warn("quote cache prime failed", "quote_id", id, "error", cacheErr.Error())
	}

	return view, nil
}

// ListBySession pages through a session's quote history newest-first using
// keyset pagination. Lists are not cached; the history view is rare compared
// to single-quote reads.
func (q *quoteQueriesImpl) ListBySession(ctx context.Context, sessionID uuid.UUID, cursor *Cursor, limit int) ([]*QuoteView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*QuoteView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindBySessionFirstPage(ctx, sessionID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.ErrInvalidCursor
		}
		rows, err = q.store.FindBySessionKeyset(ctx, sessionID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		slog.Error("quote list failed", "session_id", sessionID, "error", err.Error())
		return nil, nil, errs.ErrDatabaseOperationFailed
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
