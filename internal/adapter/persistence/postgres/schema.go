package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is idempotent and safe to run on every deploy.
const Schema = `
CREATE TABLE IF NOT EXISTS prescriptions (
    id                  TEXT PRIMARY KEY,
    patient_id          TEXT NOT NULL,
    note                TEXT NOT NULL DEFAULT '',
    delivery_address    TEXT NOT NULL,
    contact_phone       TEXT NOT NULL,
    preferred_date      TEXT NOT NULL DEFAULT '',
    preferred_time_slot TEXT NOT NULL DEFAULT '',
    files               JSONB NOT NULL DEFAULT '[]',
    status              TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed')),
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_prescriptions_patient_id ON prescriptions (patient_id);
CREATE INDEX IF NOT EXISTS idx_prescriptions_status ON prescriptions (status);

CREATE TABLE IF NOT EXISTS quotes (
    id                 TEXT PRIMARY KEY,
    pharmacy_id        TEXT NOT NULL,
    prescription_id    TEXT NOT NULL REFERENCES prescriptions (id),
    items              JSONB NOT NULL DEFAULT '[]',
    delivery_fee       NUMERIC NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
    estimated_delivery TEXT NOT NULL DEFAULT '',
    notes              TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected', 'completed')),
    accepted_at        TIMESTAMPTZ,
    rejected_at        TIMESTAMPTZ,
    completed_at       TIMESTAMPTZ,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (prescription_id, pharmacy_id)
);

CREATE INDEX IF NOT EXISTS idx_quotes_pharmacy_id ON quotes (pharmacy_id);

CREATE TABLE IF NOT EXISTS profiles (
    id             TEXT PRIMARY KEY,
    role           TEXT NOT NULL CHECK (role IN ('patient', 'pharmacy')),
    display_name   TEXT NOT NULL DEFAULT '',
    email          TEXT NOT NULL DEFAULT '',
    phone          TEXT NOT NULL DEFAULT '',
    address        TEXT NOT NULL DEFAULT '',
    license_number TEXT NOT NULL DEFAULT '',
    date_of_birth  TEXT NOT NULL DEFAULT ''
);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
