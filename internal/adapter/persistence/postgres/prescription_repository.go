package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const prescriptionColumns = `id, patient_id, note, delivery_address, contact_phone, preferred_date,
preferred_time_slot, files, status, created_at, updated_at`

// PrescriptionRepository persists Prescription entities in PostgreSQL.
type PrescriptionRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPrescriptionRepository = (*PrescriptionRepository)(nil)

func NewPrescriptionRepository(pool *pgxpool.Pool) *PrescriptionRepository {
	return &PrescriptionRepository{pool: pool}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p entities.Prescription) (entities.Prescription, error) {
	files, err := json.Marshal(p.Files)
	if err != nil {
		return entities.Prescription{}, fmt.Errorf("marshal files: %w", err)
	}

	const query = `INSERT INTO prescriptions (` + prescriptionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.pool.Exec(ctx, query,
		p.ID, p.PatientID, p.Note, p.DeliveryAddress, p.ContactPhone, p.PreferredDate,
		p.PreferredTimeSlot, files, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return entities.Prescription{}, fmt.Errorf("insert prescription: %w", err)
	}
	return p, nil
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id string) (entities.Prescription, error) {
	const query = `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE id = $1`

	p, err := scanPrescription(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Prescription{}, nil
		}
		return entities.Prescription{}, fmt.Errorf("get prescription: %w", err)
	}
	return p, nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]entities.Prescription, error) {
	const query = `SELECT ` + prescriptionColumns + ` FROM prescriptions
WHERE patient_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, patientID)
}

func (r *PrescriptionRepository) ListByStatus(ctx context.Context, status entities.PrescriptionStatus) ([]entities.Prescription, error) {
	const query = `SELECT ` + prescriptionColumns + ` FROM prescriptions
WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, string(status))
}

func (r *PrescriptionRepository) list(ctx context.Context, query string, arg any) ([]entities.Prescription, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPrescription(row pgx.Row) (entities.Prescription, error) {
	var (
		p      entities.Prescription
		files  []byte
		status string
	)
	err := row.Scan(&p.ID, &p.PatientID, &p.Note, &p.DeliveryAddress, &p.ContactPhone, &p.PreferredDate,
		&p.PreferredTimeSlot, &files, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return entities.Prescription{}, err
	}
	if len(files) > 0 {
		if err := json.Unmarshal(files, &p.Files); err != nil {
			return entities.Prescription{}, fmt.Errorf("unmarshal files: %w", err)
		}
	}
	p.Status = entities.PrescriptionStatus(status)
	return p, nil
}
