package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const quoteColumns = `id, pharmacy_id, prescription_id, items, delivery_fee::text, estimated_delivery, notes,
status, accepted_at, rejected_at, completed_at, created_at, updated_at`

const uniqueViolation = "23505"

// QuoteRepository persists Quote entities in PostgreSQL. The (prescription_id, pharmacy_id)
// unique constraint backs ErrDuplicateQuote.
type QuoteRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("marshal items: %w", err)
	}

	const query = `INSERT INTO quotes (id, pharmacy_id, prescription_id, items, delivery_fee, estimated_delivery,
notes, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)`

	_, err = r.pool.Exec(ctx, query,
		q.ID, q.PharmacyID, q.PrescriptionID, items, q.DeliveryFee.String(), q.EstimatedDelivery,
		q.Notes, string(q.Status), q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Quote{}, interfaces.ErrDuplicateQuote
		}
		return entities.Quote{}, fmt.Errorf("insert quote: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	q, err := scanQuote(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) ListByPrescription(ctx context.Context, prescriptionID string) ([]entities.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE prescription_id = $1 ORDER BY created_at`
	return r.list(ctx, query, prescriptionID)
}

func (r *QuoteRepository) ListByPharmacy(ctx context.Context, pharmacyID string) ([]entities.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE pharmacy_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, pharmacyID)
}

func (r *QuoteRepository) Decide(ctx context.Context, quoteID string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("begin decision: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q, err := decide(ctx, tx, quoteID, status, at)
	if err != nil || q.ID == "" {
		return entities.Quote{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Quote{}, fmt.Errorf("commit decision: %w", err)
	}
	return q, nil
}

// execQuerier is the part of pgx.Tx the decision statements need.
type execQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// decide runs the conditional status update and, on accept, closes the prescription.
// A zero Quote means a condition failed and the transaction must not be committed.
func decide(ctx context.Context, db execQuerier, quoteID string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	stamp := "rejected_at"
	if status == entities.QuoteStatusAccepted {
		stamp = "accepted_at"
	}
	update := `UPDATE quotes SET status = $2, ` + stamp + ` = $3, updated_at = $3
WHERE id = $1 AND status = 'pending'
RETURNING ` + quoteColumns

	q, err := scanQuote(db.QueryRow(ctx, update, quoteID, string(status), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("update quote: %w", err)
	}

	if status == entities.QuoteStatusAccepted {
		tag, err := db.Exec(ctx, `UPDATE prescriptions SET status = 'completed', updated_at = $2
WHERE id = $1 AND status = 'pending'`, q.PrescriptionID, at)
		if err != nil {
			return entities.Quote{}, fmt.Errorf("complete prescription: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.Quote{}, nil
		}
	}
	return q, nil
}

func (r *QuoteRepository) Complete(ctx context.Context, quoteID string, at time.Time) (entities.Quote, error) {
	const query = `UPDATE quotes SET status = 'completed', completed_at = $2, updated_at = $2
WHERE id = $1 AND status = 'accepted'
RETURNING ` + quoteColumns

	q, err := scanQuote(r.pool.QueryRow(ctx, query, quoteID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("complete quote: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) list(ctx context.Context, query string, arg any) ([]entities.Quote, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanQuote(row pgx.Row) (entities.Quote, error) {
	var (
		q      entities.Quote
		items  []byte
		fee    string
		status string
	)
	err := row.Scan(&q.ID, &q.PharmacyID, &q.PrescriptionID, &items, &fee, &q.EstimatedDelivery, &q.Notes,
		&status, &q.AcceptedAt, &q.RejectedAt, &q.CompletedAt, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Items, err = decodeItems(items); err != nil {
		return entities.Quote{}, err
	}
	if q.DeliveryFee, err = decimal.NewFromString(fee); err != nil {
		return entities.Quote{}, fmt.Errorf("parse delivery fee: %w", err)
	}
	q.Status = entities.QuoteStatus(status)
	return q, nil
}

// decodeItems relies on LineItem's JSON decoding to coerce rows written with the legacy
// "amount" key.
func decodeItems(raw []byte) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0)
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
