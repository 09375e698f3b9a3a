package interfaces

import (
	"context"
	"errors"
	"time"

	"rxquote/internal/domain/entities"
)

// ErrDuplicateQuote is returned by Create when the pharmacy already quoted the prescription.
var ErrDuplicateQuote = errors.New("quote already exists for this prescription and pharmacy")

// IQuoteRepository abstracts persistence for Quote.
//
// Lookups return the zero value (empty ID) and a nil error when nothing matches.
// Decide and Complete are conditional writes: when the quote is not in the expected
// source status they return the zero value and a nil error, so concurrent callers
// resolve to exactly one winner.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByPrescription(ctx context.Context, prescriptionID string) ([]entities.Quote, error)
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]entities.Quote, error)

	// Decide moves a pending quote to accepted or rejected. Accepting also marks the
	// owning prescription completed in the same atomic operation.
	Decide(ctx context.Context, quoteID string, status entities.QuoteStatus, at time.Time) (entities.Quote, error)
	// Complete moves an accepted quote to completed.
	Complete(ctx context.Context, quoteID string, at time.Time) (entities.Quote, error)
}
