package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*Store, entities.Quote) {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	_, err := s.Prescriptions().Create(ctx, entities.Prescription{ID: "rx-1", PatientID: "pat-1", Status: entities.PrescriptionStatusPending})
	require.NoError(t, err)
	q, err := s.Quotes().Create(ctx, entities.Quote{ID: "q-1", PrescriptionID: "rx-1", PharmacyID: "ph-1", Status: entities.QuoteStatusPending})
	require.NoError(t, err)
	return s, q
}

func TestQuoteRepository_CreateRejectsDuplicatePair(t *testing.T) {
	s, _ := seed(t)
	_, err := s.Quotes().Create(context.Background(), entities.Quote{ID: "q-2", PrescriptionID: "rx-1", PharmacyID: "ph-1"})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateQuote)

	_, err = s.Quotes().Create(context.Background(), entities.Quote{ID: "q-3", PrescriptionID: "rx-1", PharmacyID: "ph-2"})
	assert.NoError(t, err)
}

func TestQuoteRepository_DecideAcceptCascades(t *testing.T) {
	s, q := seed(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	got, err := s.Quotes().Decide(context.Background(), q.ID, entities.QuoteStatusAccepted, at)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusAccepted, got.Status)
	require.NotNil(t, got.AcceptedAt)
	assert.True(t, got.AcceptedAt.Equal(at))

	p, err := s.Prescriptions().GetByID(context.Background(), "rx-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PrescriptionStatusCompleted, p.Status)
}

func TestQuoteRepository_DecideIsConditional(t *testing.T) {
	s, q := seed(t)
	_, err := s.Quotes().Decide(context.Background(), q.ID, entities.QuoteStatusRejected, time.Now())
	require.NoError(t, err)

	again, err := s.Quotes().Decide(context.Background(), q.ID, entities.QuoteStatusAccepted, time.Now())
	require.NoError(t, err)
	assert.Empty(t, again.ID)

	p, _ := s.Prescriptions().GetByID(context.Background(), "rx-1")
	assert.Equal(t, entities.PrescriptionStatusPending, p.Status)
}

func TestQuoteRepository_ConcurrentDecisionsHaveOneWinner(t *testing.T) {
	s, q := seed(t)
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := entities.QuoteStatusAccepted
			if i%2 == 0 {
				status = entities.QuoteStatusRejected
			}
			got, err := s.Quotes().Decide(context.Background(), q.ID, status, time.Now())
			if err == nil && got.ID != "" {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
}

func TestQuoteRepository_CompleteRequiresAccepted(t *testing.T) {
	s, q := seed(t)
	got, err := s.Quotes().Complete(context.Background(), q.ID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	_, err = s.Quotes().Decide(context.Background(), q.ID, entities.QuoteStatusAccepted, time.Now())
	require.NoError(t, err)
	got, err = s.Quotes().Complete(context.Background(), q.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, err := s.Prescriptions().Create(ctx, entities.Prescription{ID: "rx-9", Status: entities.PrescriptionStatusPending, Files: []entities.FileRef{{Path: "a.jpg"}}})
	require.NoError(t, err)

	p, _ := s.Prescriptions().GetByID(ctx, "rx-9")
	p.Files[0].Path = "mutated"

	again, _ := s.Prescriptions().GetByID(ctx, "rx-9")
	assert.Equal(t, "a.jpg", again.Files[0].Path)

	_, err = s.Quotes().Create(ctx, entities.Quote{ID: "q-9", PrescriptionID: "rx-9", PharmacyID: "ph-1", Status: entities.QuoteStatusPending})
	require.NoError(t, err)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	q, err := s.Quotes().Decide(ctx, "q-9", entities.QuoteStatusAccepted, at)
	require.NoError(t, err)
	require.NotNil(t, q.AcceptedAt)
	*q.AcceptedAt = time.Time{}

	stored, _ := s.Quotes().GetByID(ctx, "q-9")
	require.NotNil(t, stored.AcceptedAt)
	assert.True(t, stored.AcceptedAt.Equal(at))
	*stored.AcceptedAt = time.Time{}

	listed, _ := s.Quotes().ListByPrescription(ctx, "rx-9")
	require.Len(t, listed, 1)
	assert.True(t, listed[0].AcceptedAt.Equal(at))

	missing, err := s.Profiles().GetByID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
