package repository

import (
	"context"
	"errors"
	"time"

	"stayquote/internal/infra"
	"stayquote/internal/pkg/numconv"
	"stayquote/internal/usecase/commands"
	"stayquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertQuoteSQL = `
INSERT INTO quotes (
	id, session_id, check_in, check_out, nights, room_count,
	subtotal, taxes_at_booking, taxes_due_at_hotel, total_payable_now,
	is_estimated_tax, currency, rates, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const selectQuoteColumns = `
	id, session_id, check_in, check_out, nights, room_count,
	subtotal::text, taxes_at_booking::text, taxes_due_at_hotel::text,
	total_payable_now::text, is_estimated_tax, currency, created_at`

const selectQuoteSQL = `
SELECT` + selectQuoteColumns + `
FROM quotes
WHERE id = $1`

const selectQuotesBySessionFirstPageSQL = `
SELECT` + selectQuoteColumns + `
FROM quotes
WHERE session_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

const selectQuotesBySessionKeysetSQL = `
SELECT` + selectQuoteColumns + `
FROM quotes
WHERE session_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

// QuoteRepository persists issued quotes for audit and serves the read-side
// lookups. Monetary columns are numeric in the database and travel as text
// on the wire to keep decimal precision intact.
type QuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, rec *commands.QuoteRecord) error {
	_, err := r.db.Exec(ctx, insertQuoteSQL,
		rec.ID,
		rec.SessionID,
		rec.Stay.CheckIn,
		rec.Stay.CheckOut,
		rec.Breakdown.Nights,
		rec.Breakdown.RoomCount,
		rec.Breakdown.Subtotal.String(),
		rec.Breakdown.TaxesAtBooking.String(),
		rec.Breakdown.TaxesDueAtHotel.String(),
		rec.Breakdown.TotalPayableNow.String(),
		rec.Breakdown.IsEstimatedTax,
		rec.Breakdown.Currency,
		rec.RatesJSON,
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("quote already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	view, err := scanQuoteView(r.db.QueryRow(ctx, selectQuoteSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}
	return view, nil
}

func (r *QuoteRepository) FindBySessionFirstPage(ctx context.Context, sessionID uuid.UUID, limit int32) ([]*queries.QuoteView, error) {
	rows, err := r.db.Query(ctx, selectQuotesBySessionFirstPageSQL, sessionID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes by session", err)
	}
	return collectQuoteViews(rows)
}

func (r *QuoteRepository) FindBySessionKeyset(ctx context.Context, sessionID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.QuoteView, error) {
	rows, err := r.db.Query(ctx, selectQuotesBySessionKeysetSQL, sessionID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes by session", err)
	}
	return collectQuoteViews(rows)
}

func collectQuoteViews(rows pgx.Rows) ([]*queries.QuoteView, error) {
	defer rows.Close()

	views := make([]*queries.QuoteView, 0)
	for rows.Next() {
		view, err := scanQuoteView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quote rows", err)
	}
	return views, nil
}

func scanQuoteView(row pgx.Row) (*queries.QuoteView, error) {
	var (
		view            queries.QuoteView
		subtotal        string
		taxesAtBooking  string
		taxesDueAtHotel string
		totalPayableNow string
	)

	err := row.Scan(
		&view.ID,
		&view.SessionID,
		&view.CheckIn,
		&view.CheckOut,
		&view.Nights,
		&view.RoomCount,
		&subtotal,
		&taxesAtBooking,
		&taxesDueAtHotel,
		&totalPayableNow,
		&view.IsEstimatedTax,
		&view.Currency,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Subtotal = numconv.Decimal(subtotal)
	view.TaxesAtBooking = numconv.Decimal(taxesAtBooking)
	view.TaxesDueAtHotel = numconv.Decimal(taxesDueAtHotel)
	view.TotalPayableNow = numconv.Decimal(totalPayableNow)

	return &view, nil
}
