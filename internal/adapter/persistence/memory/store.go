// Package memory is an in-process record store for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
)

// Store holds every record behind a single lock, so the accept cascade is atomic.
type Store struct {
	mu            sync.RWMutex
	prescriptions map[string]entities.Prescription
	quotes        map[string]entities.Quote
	quoteKeys     map[string]string
	profiles      map[string]entities.Profile
}

func NewStore() *Store {
	return &Store{
		prescriptions: make(map[string]entities.Prescription),
		quotes:        make(map[string]entities.Quote),
		quoteKeys:     make(map[string]string),
		profiles:      make(map[string]entities.Profile),
	}
}

func (s *Store) Prescriptions() *PrescriptionRepository { return &PrescriptionRepository{s: s} }
func (s *Store) Quotes() *QuoteRepository               { return &QuoteRepository{s: s} }
func (s *Store) Profiles() *ProfileRepository           { return &ProfileRepository{s: s} }

// PutProfile seeds or replaces a profile.
func (s *Store) PutProfile(p entities.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

type PrescriptionRepository struct{ s *Store }

var _ interfaces.IPrescriptionRepository = (*PrescriptionRepository)(nil)

func (r *PrescriptionRepository) Create(_ context.Context, p entities.Prescription) (entities.Prescription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.Files = slices.Clone(p.Files)
	r.s.prescriptions[p.ID] = p
	return p, nil
}

func (r *PrescriptionRepository) GetByID(_ context.Context, id string) (entities.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return clonePrescription(r.s.prescriptions[id]), nil
}

func (r *PrescriptionRepository) ListByPatient(_ context.Context, patientID string) ([]entities.Prescription, error) {
	return r.filter(func(p entities.Prescription) bool { return p.PatientID == patientID }), nil
}

func (r *PrescriptionRepository) ListByStatus(_ context.Context, status entities.PrescriptionStatus) ([]entities.Prescription, error) {
	return r.filter(func(p entities.Prescription) bool { return p.Status == status }), nil
}

func (r *PrescriptionRepository) filter(keep func(entities.Prescription) bool) []entities.Prescription {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Prescription, 0)
	for _, p := range r.s.prescriptions {
		if keep(p) {
			out = append(out, clonePrescription(p))
		}
	}
	return out
}

type QuoteRepository struct{ s *Store }

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := q.PrescriptionID + "|" + q.PharmacyID
	if _, exists := r.s.quoteKeys[key]; exists {
		return entities.Quote{}, interfaces.ErrDuplicateQuote
	}
	q = cloneQuote(q)
	r.s.quotes[q.ID] = q
	r.s.quoteKeys[key] = q.ID
	return cloneQuote(q), nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneQuote(r.s.quotes[id]), nil
}

func (r *QuoteRepository) ListByPrescription(_ context.Context, prescriptionID string) ([]entities.Quote, error) {
	return r.filter(func(q entities.Quote) bool { return q.PrescriptionID == prescriptionID }), nil
}

func (r *QuoteRepository) ListByPharmacy(_ context.Context, pharmacyID string) ([]entities.Quote, error) {
	return r.filter(func(q entities.Quote) bool { return q.PharmacyID == pharmacyID }), nil
}

func (r *QuoteRepository) Decide(_ context.Context, quoteID string, status entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[quoteID]
	if !ok || q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, nil
	}
	if status == entities.QuoteStatusAccepted {
		p, ok := r.s.prescriptions[q.PrescriptionID]
		if !ok || p.Status != entities.PrescriptionStatusPending {
			return entities.Quote{}, nil
		}
		p.Status = entities.PrescriptionStatusCompleted
		p.UpdatedAt = at
		r.s.prescriptions[p.ID] = p
		q.AcceptedAt = &at
	} else {
		q.RejectedAt = &at
	}
	q.Status = status
	q.UpdatedAt = at
	r.s.quotes[q.ID] = q
	return cloneQuote(q), nil
}

func (r *QuoteRepository) Complete(_ context.Context, quoteID string, at time.Time) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotes[quoteID]
	if !ok || q.Status != entities.QuoteStatusAccepted {
		return entities.Quote{}, nil
	}
	q.Status = entities.QuoteStatusCompleted
	q.CompletedAt = &at
	q.UpdatedAt = at
	r.s.quotes[q.ID] = q
	return cloneQuote(q), nil
}

func (r *QuoteRepository) filter(keep func(entities.Quote) bool) []entities.Quote {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Quote, 0)
	for _, q := range r.s.quotes {
		if keep(q) {
			out = append(out, cloneQuote(q))
		}
	}
	slices.SortFunc(out, func(a, b entities.Quote) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

type ProfileRepository struct{ s *Store }

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetByID(_ context.Context, id string) (entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profiles[id], nil
}

func clonePrescription(p entities.Prescription) entities.Prescription {
	p.Files = slices.Clone(p.Files)
	return p
}

func cloneQuote(q entities.Quote) entities.Quote {
	q.Items = slices.Clone(q.Items)
	q.AcceptedAt = cloneTime(q.AcceptedAt)
	q.RejectedAt = cloneTime(q.RejectedAt)
	q.CompletedAt = cloneTime(q.CompletedAt)
	return q
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
