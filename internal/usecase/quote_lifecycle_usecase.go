package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
	"rxquote/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SubmitQuoteCommand is a pharmacy's offer before validation.
type SubmitQuoteCommand struct {
	PrescriptionID    string
	PharmacyID        string
	Items             []entities.LineItemInput
	DeliveryFee       string
	EstimatedDelivery string
	Notes             string
}

// QuoteOutcome is the result of a successful transition. NotificationWarning is set when the
// record was persisted but the follow-up email could not be dispatched.
type QuoteOutcome struct {
	Quote               entities.Quote
	Prescription        entities.Prescription
	NotificationWarning string
}

// IQuoteLifecycleUseCase drives the quote state machine.
//
//   - POST  /v1/prescriptions/{id}/quotes => SubmitQuote()
//   - PATCH /v1/quotes/{id}/accept|reject => DecideQuote()
//   - PATCH /v1/quotes/{id}/complete      => CompleteQuote()
type IQuoteLifecycleUseCase interface {
	SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (QuoteOutcome, error)
	DecideQuote(ctx context.Context, quoteID, patientID string, decision entities.QuoteDecision) (QuoteOutcome, error)
	CompleteQuote(ctx context.Context, quoteID, pharmacyID string) (entities.Quote, error)
	GetQuote(ctx context.Context, quoteID string, caller entities.Identity) (entities.Quote, error)
	ListQuotesForPrescription(ctx context.Context, prescriptionID string, caller entities.Identity) ([]entities.Quote, error)
	ListQuotesForPharmacy(ctx context.Context, pharmacyID string) ([]entities.Quote, error)
}

type QuoteLifecycleUseCase struct {
	prescriptions interfaces.IPrescriptionRepository
	quotes        interfaces.IQuoteRepository
	profiles      interfaces.IProfileRepository
	notifier      interfaces.INotifier
	origin        string
	log           *zap.Logger
	metrics       *metrics.Collector
	tracer        trace.Tracer
	now           func() time.Time
}

var _ IQuoteLifecycleUseCase = (*QuoteLifecycleUseCase)(nil)

func NewQuoteLifecycleUseCase(
	prescriptions interfaces.IPrescriptionRepository,
	quotes interfaces.IQuoteRepository,
	profiles interfaces.IProfileRepository,
	notifier interfaces.INotifier,
	origin string,
	log *zap.Logger,
	m *metrics.Collector,
) *QuoteLifecycleUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteLifecycleUseCase{
		prescriptions: prescriptions,
		quotes:        quotes,
		profiles:      profiles,
		notifier:      notifier,
		origin:        strings.TrimRight(origin, "/"),
		log:           log,
		metrics:       m,
		tracer:        otel.Tracer("rxquote/usecase"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteLifecycleUseCase) SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (out QuoteOutcome, err error) {
	ctx, span := u.tracer.Start(ctx, "QuoteLifecycle.SubmitQuote")
	defer func() { endSpan(span, err) }()

	pharmacyID := strings.TrimSpace(cmd.PharmacyID)
	if pharmacyID == "" {
		return QuoteOutcome{}, ErrMissingPharmacyID
	}
	prescriptionID := strings.TrimSpace(cmd.PrescriptionID)
	if prescriptionID == "" {
		return QuoteOutcome{}, ErrInvalidPrescriptionID
	}
	fee, err := parseDeliveryFee(cmd.DeliveryFee)
	if err != nil {
		return QuoteOutcome{}, err
	}
	items := entities.NormalizeLineItems(cmd.Items)
	if len(items) == 0 {
		return QuoteOutcome{}, ErrNoValidItems
	}
	span.SetAttributes(
		attribute.String("prescription.id", prescriptionID),
		attribute.String("pharmacy.id", pharmacyID),
	)

	p, err := u.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return QuoteOutcome{}, fmt.Errorf("loading prescription: %w", err)
	}
	if p.ID == "" {
		return QuoteOutcome{}, ErrPrescriptionNotFound
	}
	if !p.IsPending() {
		return QuoteOutcome{}, ErrPrescriptionClosed
	}

	now := u.now()
	q := entities.Quote{
		ID:                uuid.NewString(),
		PharmacyID:        pharmacyID,
		PrescriptionID:    p.ID,
		Items:             items,
		DeliveryFee:       fee,
		EstimatedDelivery: strings.TrimSpace(cmd.EstimatedDelivery),
		Notes:             strings.TrimSpace(cmd.Notes),
		Status:            entities.QuoteStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateQuote) {
			return QuoteOutcome{}, ErrQuoteAlreadySubmitted
		}
		return QuoteOutcome{}, fmt.Errorf("saving quote: %w", err)
	}
	span.SetAttributes(attribute.String("quote.id", created.ID))
	if u.metrics != nil {
		u.metrics.QuotesSubmitted.Inc()
	}

	out = QuoteOutcome{Quote: created, Prescription: p}
	if nerr := u.notifyCreated(ctx, created, p); nerr != nil {
		u.log.Warn("quote notification not dispatched",
			zap.String("quote_id", created.ID),
			zap.String("prescription_id", p.ID),
			zap.Error(nerr),
		)
		out.NotificationWarning = WarnQuoteSubmitted
	}
	return out, nil
}

func (u *QuoteLifecycleUseCase) DecideQuote(ctx context.Context, quoteID, patientID string, decision entities.QuoteDecision) (out QuoteOutcome, err error) {
	ctx, span := u.tracer.Start(ctx, "QuoteLifecycle.DecideQuote")
	defer func() { endSpan(span, err) }()

	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return QuoteOutcome{}, ErrMissingPatientID
	}
	if !decision.IsValid() {
		return QuoteOutcome{}, ErrInvalidDecision
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuoteOutcome{}, ErrInvalidQuoteID
	}
	span.SetAttributes(attribute.String("quote.id", quoteID), attribute.String("decision", string(decision)))

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteOutcome{}, fmt.Errorf("loading quote: %w", err)
	}
	if q.ID == "" {
		return QuoteOutcome{}, ErrQuoteNotFound
	}
	p, err := u.prescriptions.GetByID(ctx, q.PrescriptionID)
	if err != nil {
		return QuoteOutcome{}, fmt.Errorf("loading prescription: %w", err)
	}
	if p.ID == "" {
		return QuoteOutcome{}, ErrPrescriptionNotFound
	}
	if p.PatientID != patientID {
		return QuoteOutcome{}, ErrNotPrescriptionOwner
	}

	next := decision.Status()
	if !q.Status.CanTransitionTo(next) {
		return QuoteOutcome{}, ErrQuoteNotPending
	}
	if next == entities.QuoteStatusAccepted && !p.IsPending() {
		return QuoteOutcome{}, ErrPrescriptionClosed
	}

	now := u.now()
	updated, err := u.quotes.Decide(ctx, q.ID, next, now)
	if err != nil {
		return QuoteOutcome{}, fmt.Errorf("saving decision: %w", err)
	}
	if updated.ID == "" {
		// Lost the race against a concurrent decision.
		return QuoteOutcome{}, ErrQuoteNotPending
	}
	if next == entities.QuoteStatusAccepted {
		p.Status = entities.PrescriptionStatusCompleted
		p.UpdatedAt = now
	}
	if u.metrics != nil {
		u.metrics.QuoteDecisions.WithLabelValues(string(next)).Inc()
	}

	out = QuoteOutcome{Quote: updated, Prescription: p}
	if nerr := u.notifyDecided(ctx, updated, p); nerr != nil {
		u.log.Warn("decision notification not dispatched",
			zap.String("quote_id", updated.ID),
			zap.String("status", string(next)),
			zap.Error(nerr),
		)
		out.NotificationWarning = WarnQuoteDecided
	}
	return out, nil
}

func (u *QuoteLifecycleUseCase) CompleteQuote(ctx context.Context, quoteID, pharmacyID string) (_ entities.Quote, err error) {
	ctx, span := u.tracer.Start(ctx, "QuoteLifecycle.CompleteQuote")
	defer func() { endSpan(span, err) }()

	pharmacyID = strings.TrimSpace(pharmacyID)
	if pharmacyID == "" {
		return entities.Quote{}, ErrMissingPharmacyID
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("loading quote: %w", err)
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.PharmacyID != pharmacyID {
		return entities.Quote{}, ErrNotQuoteOwner
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusCompleted) {
		return entities.Quote{}, ErrQuoteNotAccepted
	}

	updated, err := u.quotes.Complete(ctx, q.ID, u.now())
	if err != nil {
		return entities.Quote{}, fmt.Errorf("completing quote: %w", err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotAccepted
	}
	if u.metrics != nil {
		u.metrics.QuoteDecisions.WithLabelValues(string(entities.QuoteStatusCompleted)).Inc()
	}
	return updated, nil
}

func (u *QuoteLifecycleUseCase) GetQuote(ctx context.Context, quoteID string, caller entities.Identity) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	switch caller.Role {
	case entities.RolePharmacy:
		if q.PharmacyID != caller.UserID {
			return entities.Quote{}, ErrNotQuoteOwner
		}
	case entities.RolePatient:
		p, err := u.prescriptions.GetByID(ctx, q.PrescriptionID)
		if err != nil {
			return entities.Quote{}, err
		}
		if p.PatientID != caller.UserID {
			return entities.Quote{}, ErrNotPrescriptionOwner
		}
	default:
		return entities.Quote{}, ErrForbidden
	}
	return q, nil
}

// ListQuotesForPrescription returns every quote to the owning patient and only its own
// quote to a pharmacy.
func (u *QuoteLifecycleUseCase) ListQuotesForPrescription(ctx context.Context, prescriptionID string, caller entities.Identity) ([]entities.Quote, error) {
	prescriptionID = strings.TrimSpace(prescriptionID)
	if prescriptionID == "" {
		return nil, ErrInvalidPrescriptionID
	}
	p, err := u.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrPrescriptionNotFound
	}
	if caller.Role == entities.RolePatient && p.PatientID != caller.UserID {
		return nil, ErrNotPrescriptionOwner
	}
	if !caller.Role.IsValid() {
		return nil, ErrForbidden
	}

	quotes, err := u.quotes.ListByPrescription(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if caller.Role == entities.RolePatient {
		return quotes, nil
	}
	own := make([]entities.Quote, 0, 1)
	for _, q := range quotes {
		if q.PharmacyID == caller.UserID {
			own = append(own, q)
		}
	}
	return own, nil
}

func (u *QuoteLifecycleUseCase) ListQuotesForPharmacy(ctx context.Context, pharmacyID string) ([]entities.Quote, error) {
	pharmacyID = strings.TrimSpace(pharmacyID)
	if pharmacyID == "" {
		return nil, ErrMissingPharmacyID
	}
	return u.quotes.ListByPharmacy(ctx, pharmacyID)
}

func (u *QuoteLifecycleUseCase) notifyCreated(ctx context.Context, q entities.Quote, p entities.Prescription) error {
	patient, err := u.profiles.GetByID(ctx, p.PatientID)
	if err != nil {
		return &NotificationDeliveryError{Stage: StageRecipient, Err: err}
	}
	pharmacy, err := u.profiles.GetByID(ctx, q.PharmacyID)
	if err != nil {
		return &NotificationDeliveryError{Stage: StageRecipient, Err: err}
	}
	return u.notifier.NotifyQuoteCreated(ctx, entities.QuoteCreatedNotice{
		Quote:        q,
		Prescription: p,
		Patient:      patient.Contact(),
		Pharmacy:     pharmacy.Contact(),
		Origin:       u.origin,
	})
}

func (u *QuoteLifecycleUseCase) notifyDecided(ctx context.Context, q entities.Quote, p entities.Prescription) error {
	pharmacy, err := u.profiles.GetByID(ctx, q.PharmacyID)
	if err != nil {
		return &NotificationDeliveryError{Stage: StageRecipient, Err: err}
	}
	patient, err := u.profiles.GetByID(ctx, p.PatientID)
	if err != nil {
		return &NotificationDeliveryError{Stage: StageRecipient, Err: err}
	}
	return u.notifier.NotifyQuoteDecided(ctx, entities.QuoteDecidedNotice{
		Quote:        q,
		Prescription: p,
		Pharmacy:     pharmacy.Contact(),
		Patient:      patient.Contact(),
		Status:       q.Status,
		Origin:       u.origin,
	})
}

func parseDeliveryFee(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	fee, err := decimal.NewFromString(raw)
	if err != nil || fee.IsNegative() {
		return decimal.Zero, ErrInvalidDeliveryFee
	}
	return fee, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
