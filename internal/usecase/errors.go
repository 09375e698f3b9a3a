package usecase

import (
	"errors"
	"fmt"
)

// Error categories. Concrete errors wrap exactly one of these so transports can map them
// with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrMissingPharmacyID     = fmt.Errorf("%w: pharmacy identity is missing", ErrUnauthenticated)
	ErrMissingPatientID      = fmt.Errorf("%w: patient identity is missing", ErrUnauthenticated)
	ErrPharmacyRoleRequired  = fmt.Errorf("%w: only pharmacies can perform this action", ErrForbidden)
	ErrPatientRoleRequired   = fmt.Errorf("%w: only patients can perform this action", ErrForbidden)
	ErrNotPrescriptionOwner  = fmt.Errorf("%w: prescription belongs to another patient", ErrForbidden)
	ErrNotQuoteOwner         = fmt.Errorf("%w: quote belongs to another pharmacy", ErrForbidden)
	ErrInvalidPrescriptionID = fmt.Errorf("%w: prescription id is required", ErrValidation)
	ErrInvalidQuoteID        = fmt.Errorf("%w: quote id is required", ErrValidation)
	ErrNoValidItems          = fmt.Errorf("%w: at least one item with drug, quantity and a non-negative price is required", ErrValidation)
	ErrInvalidDeliveryFee    = fmt.Errorf("%w: delivery fee must be a non-negative number", ErrValidation)
	ErrInvalidDecision       = fmt.Errorf("%w: decision must be accept or reject", ErrValidation)
	ErrNoPrescriptionFiles   = fmt.Errorf("%w: at least one prescription file is required", ErrValidation)
	ErrMissingAddress        = fmt.Errorf("%w: delivery address is required", ErrValidation)
	ErrMissingPhone          = fmt.Errorf("%w: contact phone is required", ErrValidation)
	ErrInvalidPreferredDate  = fmt.Errorf("%w: preferred date must be YYYY-MM-DD", ErrValidation)
	ErrMissingRecipientEmail = fmt.Errorf("%w: recipient email is required", ErrValidation)
	ErrPrescriptionNotFound  = fmt.Errorf("%w: prescription not found", ErrNotFound)
	ErrQuoteNotFound         = fmt.Errorf("%w: quote not found", ErrNotFound)
	ErrQuoteNotPending       = fmt.Errorf("%w: quote is no longer pending", ErrInvalidState)
	ErrQuoteNotAccepted      = fmt.Errorf("%w: only accepted quotes can be completed", ErrInvalidState)
	ErrPrescriptionClosed    = fmt.Errorf("%w: prescription is no longer open for quotes", ErrInvalidState)
	ErrQuoteAlreadySubmitted = fmt.Errorf("%w: pharmacy already quoted this prescription", ErrConflict)
)

// Notification stages reported by NotificationDeliveryError.
const (
	StageRecipient = "recipient"
	StageRender    = "render"
	StageTransport = "transport"
)

// NotificationDeliveryError reports which step of a notification failed.
type NotificationDeliveryError struct {
	Stage string
	Err   error
}

func (e *NotificationDeliveryError) Error() string {
	return fmt.Sprintf("notification %s failed: %v", e.Stage, e.Err)
}

func (e *NotificationDeliveryError) Unwrap() error {
	return e.Err
}

// Warnings attached to successful transitions whose notification did not go out.
const (
	WarnQuoteSubmitted = "quote saved, notification may be delayed"
	WarnQuoteDecided   = "decision saved, notification may be delayed"
)
