package interfaces

import (
	"context"

	"rxquote/internal/domain/entities"
)

// IPrescriptionRepository abstracts persistence for Prescription.
//
// Lookups return the zero value (empty ID) and a nil error when nothing matches.
type IPrescriptionRepository interface {
	Create(ctx context.Context, p entities.Prescription) (entities.Prescription, error)
	GetByID(ctx context.Context, id string) (entities.Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Prescription, error)
	ListByStatus(ctx context.Context, status entities.PrescriptionStatus) ([]entities.Prescription, error)
}
