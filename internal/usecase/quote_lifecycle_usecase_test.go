package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
	mock_interfaces "rxquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	prescriptions *mock_interfaces.MockIPrescriptionRepository
	quotes        *mock_interfaces.MockIQuoteRepository
	profiles      *mock_interfaces.MockIProfileRepository
	notifier      *mock_interfaces.MockINotifier
}

func newLifecycle(t *testing.T) (*QuoteLifecycleUseCase, lifecycleMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		prescriptions: mock_interfaces.NewMockIPrescriptionRepository(ctrl),
		quotes:        mock_interfaces.NewMockIQuoteRepository(ctrl),
		profiles:      mock_interfaces.NewMockIProfileRepository(ctrl),
		notifier:      mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewQuoteLifecycleUseCase(m.prescriptions, m.quotes, m.profiles, m.notifier, "https://app.example/", nil, nil)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func validSubmit() SubmitQuoteCommand {
	return SubmitQuoteCommand{
		PrescriptionID: "rx-1",
		PharmacyID:     "ph-1",
		Items: []entities.LineItemInput{
			{Drug: "Amoxicillin", Quantity: "1 box", Price: "12.50"},
		},
		DeliveryFee:       "5.00",
		EstimatedDelivery: "2 days",
	}
}

func pendingPrescription() entities.Prescription {
	return entities.Prescription{ID: "rx-1", PatientID: "pat-1", Status: entities.PrescriptionStatusPending}
}

func TestQuoteLifecycleUseCase_SubmitQuoteValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitQuoteCommand)
		want   error
	}{
		{name: "missing pharmacy", mutate: func(c *SubmitQuoteCommand) { c.PharmacyID = " " }, want: ErrUnauthenticated},
		{name: "missing prescription", mutate: func(c *SubmitQuoteCommand) { c.PrescriptionID = "" }, want: ErrValidation},
		{name: "negative fee", mutate: func(c *SubmitQuoteCommand) { c.DeliveryFee = "-1" }, want: ErrInvalidDeliveryFee},
		{name: "unparseable fee", mutate: func(c *SubmitQuoteCommand) { c.DeliveryFee = "free" }, want: ErrValidation},
		{name: "empty drug only", mutate: func(c *SubmitQuoteCommand) {
			c.Items = []entities.LineItemInput{{Drug: "", Quantity: "1", Price: "3"}}
		}, want: ErrNoValidItems},
		{name: "no items", mutate: func(c *SubmitQuoteCommand) { c.Items = nil }, want: ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newLifecycle(t)
			cmd := validSubmit()
			tc.mutate(&cmd)
			_, err := uc.SubmitQuote(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteLifecycleUseCase_SubmitQuote(t *testing.T) {
	t.Run("prescription not found", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(entities.Prescription{}, nil)

		_, err := uc.SubmitQuote(context.Background(), validSubmit())
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("prescription closed", func(t *testing.T) {
		uc, m := newLifecycle(t)
		p := pendingPrescription()
		p.Status = entities.PrescriptionStatusCompleted
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(p, nil)

		_, err := uc.SubmitQuote(context.Background(), validSubmit())
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("duplicate quote", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrDuplicateQuote)

		_, err := uc.SubmitQuote(context.Background(), validSubmit())
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(entities.Prescription{}, errors.New("db"))

		_, err := uc.SubmitQuote(context.Background(), validSubmit())
		if err == nil || errors.Is(err, ErrNotFound) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("success notifies patient", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusPending || len(q.Items) != 1 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.DisplayTotal() != "17.50" {
					t.Fatalf("expected total 17.50, got %s", q.DisplayTotal())
				}
				return q, nil
			},
		)
		m.profiles.EXPECT().GetByID(gomock.Any(), "pat-1").Return(entities.Profile{ID: "pat-1", DisplayName: "Ana", Email: "ana@example.com"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "ph-1").Return(entities.Profile{ID: "ph-1", DisplayName: "Farma"}, nil)
		m.notifier.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.QuoteCreatedNotice) error {
				if n.Patient.Email != "ana@example.com" || n.Origin != "https://app.example" {
					t.Fatalf("unexpected notice: %+v", n)
				}
				return nil
			},
		)

		out, err := uc.SubmitQuote(context.Background(), validSubmit())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NotificationWarning != "" {
			t.Fatalf("unexpected warning %q", out.NotificationWarning)
		}
	})

	t.Run("notification failure is a warning", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.profiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Profile{}, nil).Times(2)
		m.notifier.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).
			Return(&NotificationDeliveryError{Stage: StageTransport, Err: errors.New("smtp down")})

		out, err := uc.SubmitQuote(context.Background(), validSubmit())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NotificationWarning != WarnQuoteSubmitted {
			t.Fatalf("expected warning, got %q", out.NotificationWarning)
		}
		if out.Quote.Status != entities.QuoteStatusPending {
			t.Fatalf("expected pending quote, got %s", out.Quote.Status)
		}
	})

	t.Run("profile lookup failure is a warning", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.profiles.EXPECT().GetByID(gomock.Any(), "pat-1").Return(entities.Profile{}, errors.New("db"))

		out, err := uc.SubmitQuote(context.Background(), validSubmit())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.NotificationWarning == "" {
			t.Fatalf("expected warning")
		}
	})
}

func TestQuoteLifecycleUseCase_DecideQuote(t *testing.T) {
	pendingQuote := entities.Quote{ID: "q-1", PrescriptionID: "rx-1", PharmacyID: "ph-1", Status: entities.QuoteStatusPending}

	t.Run("missing patient", func(t *testing.T) {
		uc, _ := newLifecycle(t)
		_, err := uc.DecideQuote(context.Background(), "q-1", "", entities.DecisionAccept)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("invalid decision", func(t *testing.T) {
		uc, _ := newLifecycle(t)
		_, err := uc.DecideQuote(context.Background(), "q-1", "pat-1", entities.QuoteDecision("maybe"))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		_, err := uc.DecideQuote(context.Background(), "q-1", "pat-1", entities.DecisionAccept)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		_, err := uc.DecideQuote(context.Background(), "q-1", "pat-2", entities.DecisionAccept)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		uc, m := newLifecycle(t)
		rejected := pendingQuote
		rejected.Status = entities.QuoteStatusRejected
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		_, err := uc.DecideQuote(context.Background(), "q-1", "pat-1", entities.DecisionAccept)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Decide(gomock.Any(), "q-1", entities.QuoteStatusRejected, gomock.Any()).Return(entities.Quote{}, nil)
		_, err := uc.DecideQuote(context.Background(), "q-1", "pat-1", entities.DecisionReject)
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("accept cascades and notifies pharmacy", func(t *testing.T) {
		uc, m := newLifecycle(t)
		accepted := pendingQuote
		accepted.Status = entities.QuoteStatusAccepted
		at := uc.now()
		accepted.AcceptedAt = &at

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Decide(gomock.Any(), "q-1", entities.QuoteStatusAccepted, at).Return(accepted, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "ph-1").Return(entities.Profile{ID: "ph-1", Email: "ph@example.com"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "pat-1").Return(entities.Profile{ID: "pat-1", DisplayName: "Ana"}, nil)
		m.notifier.EXPECT().NotifyQuoteDecided(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.QuoteDecidedNotice) error {
				if n.Status != entities.QuoteStatusAccepted || n.Pharmacy.Email != "ph@example.com" {
					t.Fatalf("unexpected notice: %+v", n)
				}
				return nil
			},
		)

		out, err := uc.DecideQuote(context.Background(), " q-1 ", "pat-1", entities.DecisionAccept)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Prescription.Status != entities.PrescriptionStatusCompleted {
			t.Fatalf("expected completed prescription, got %s", out.Prescription.Status)
		}
		if out.Quote.AcceptedAt == nil {
			t.Fatalf("expected AcceptedAt")
		}
	})

	t.Run("reject keeps prescription pending", func(t *testing.T) {
		uc, m := newLifecycle(t)
		rejected := pendingQuote
		rejected.Status = entities.QuoteStatusRejected

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().Decide(gomock.Any(), "q-1", entities.QuoteStatusRejected, gomock.Any()).Return(rejected, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Profile{}, nil).Times(2)
		m.notifier.EXPECT().NotifyQuoteDecided(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		out, err := uc.DecideQuote(context.Background(), "q-1", "pat-1", entities.DecisionReject)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Prescription.Status != entities.PrescriptionStatusPending {
			t.Fatalf("expected pending prescription, got %s", out.Prescription.Status)
		}
		if out.NotificationWarning != WarnQuoteDecided {
			t.Fatalf("expected warning, got %q", out.NotificationWarning)
		}
	})
}

func TestQuoteLifecycleUseCase_CompleteQuote(t *testing.T) {
	accepted := entities.Quote{ID: "q-1", PrescriptionID: "rx-1", PharmacyID: "ph-1", Status: entities.QuoteStatusAccepted}

	t.Run("other pharmacy", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
		_, err := uc.CompleteQuote(context.Background(), "q-1", "ph-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		uc, m := newLifecycle(t)
		pending := accepted
		pending.Status = entities.QuoteStatusPending
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		_, err := uc.CompleteQuote(context.Background(), "q-1", "ph-1")
		if !errors.Is(err, ErrQuoteNotAccepted) {
			t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newLifecycle(t)
		done := accepted
		done.Status = entities.QuoteStatusCompleted
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
		m.quotes.EXPECT().Complete(gomock.Any(), "q-1", gomock.Any()).Return(done, nil)

		res, err := uc.CompleteQuote(context.Background(), "q-1", "ph-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusCompleted {
			t.Fatalf("expected completed, got %s", res.Status)
		}
	})
}

func TestQuoteLifecycleUseCase_ListQuotesForPrescription(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "q-1", PrescriptionID: "rx-1", PharmacyID: "ph-1"},
		{ID: "q-2", PrescriptionID: "rx-1", PharmacyID: "ph-2"},
	}

	t.Run("patient sees all", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().ListByPrescription(gomock.Any(), "rx-1").Return(quotes, nil)

		res, err := uc.ListQuotesForPrescription(context.Background(), "rx-1", entities.Identity{UserID: "pat-1", Role: entities.RolePatient})
		if err != nil || len(res) != 2 {
			t.Fatalf("expected 2 quotes, got %d (%v)", len(res), err)
		}
	})

	t.Run("pharmacy sees own", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		m.quotes.EXPECT().ListByPrescription(gomock.Any(), "rx-1").Return(quotes, nil)

		res, err := uc.ListQuotesForPrescription(context.Background(), "rx-1", entities.Identity{UserID: "ph-2", Role: entities.RolePharmacy})
		if err != nil || len(res) != 1 || res[0].ID != "q-2" {
			t.Fatalf("expected only q-2, got %+v (%v)", res, err)
		}
	})

	t.Run("other patient", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)

		_, err := uc.ListQuotesForPrescription(context.Background(), "rx-1", entities.Identity{UserID: "pat-9", Role: entities.RolePatient})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestQuoteLifecycleUseCase_GetQuote(t *testing.T) {
	q := entities.Quote{ID: "q-1", PrescriptionID: "rx-1", PharmacyID: "ph-1"}

	t.Run("owning pharmacy", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		if _, err := uc.GetQuote(context.Background(), "q-1", entities.Identity{UserID: "ph-1", Role: entities.RolePharmacy}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owning patient", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.prescriptions.EXPECT().GetByID(gomock.Any(), "rx-1").Return(pendingPrescription(), nil)
		if _, err := uc.GetQuote(context.Background(), "q-1", entities.Identity{UserID: "pat-1", Role: entities.RolePatient}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other pharmacy", func(t *testing.T) {
		uc, m := newLifecycle(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		_, err := uc.GetQuote(context.Background(), "q-1", entities.Identity{UserID: "ph-2", Role: entities.RolePharmacy})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
