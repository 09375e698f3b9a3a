package postgres

import (
	"context"
	"errors"
	"fmt"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	const query = `SELECT id, role, display_name, email, phone, address, license_number, date_of_birth
FROM profiles WHERE id = $1`

	var (
		p    entities.Profile
		role string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &role, &p.DisplayName, &p.Email, &p.Phone,
		&p.Address, &p.LicenseNumber, &p.DateOfBirth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	p.Role = entities.Role(role)
	return p, nil
}
