package interfaces

import (
	"context"

	"rxquote/internal/domain/entities"
)

// IProfileRepository is a read-only lookup of user profiles.
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}
