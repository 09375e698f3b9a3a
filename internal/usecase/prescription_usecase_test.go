package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rxquote/internal/domain/entities"
	mock_interfaces "rxquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPrescriptionUseCase_CreatePrescription(t *testing.T) {
	valid := CreatePrescriptionCommand{
		DeliveryAddress: "Rua A, 10",
		ContactPhone:    "+55 11 99999-0000",
		PreferredDate:   "2024-03-10",
		Files:           []entities.FileRef{{Path: "pat-1/rx.jpg"}},
	}

	t.Run("missing patient", func(t *testing.T) {
		uc := NewPrescriptionUseCase(nil, nil, nil, 0, nil)
		_, err := uc.CreatePrescription(context.Background(), "", valid)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewPrescriptionUseCase(nil, nil, nil, 0, nil)
		cases := map[string]func(c *CreatePrescriptionCommand){
			"no files":   func(c *CreatePrescriptionCommand) { c.Files = []entities.FileRef{{Path: " "}} },
			"no address": func(c *CreatePrescriptionCommand) { c.DeliveryAddress = "" },
			"no phone":   func(c *CreatePrescriptionCommand) { c.ContactPhone = "" },
			"bad date":   func(c *CreatePrescriptionCommand) { c.PreferredDate = "10/03/2024" },
		}
		for name, mutate := range cases {
			cmd := valid
			mutate(&cmd)
			if _, err := uc.CreatePrescription(context.Background(), "pat-1", cmd); !errors.Is(err, ErrValidation) {
				t.Fatalf("%s: expected ErrValidation, got %v", name, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
		uc := NewPrescriptionUseCase(repo, nil, nil, 0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Prescription) (entities.Prescription, error) {
				if p.ID == "" || p.PatientID != "pat-1" || p.Status != entities.PrescriptionStatusPending {
					t.Fatalf("unexpected prescription: %+v", p)
				}
				if p.Files[0].Name != "rx.jpg" {
					t.Fatalf("expected derived file name, got %q", p.Files[0].Name)
				}
				return p, nil
			},
		)
		if _, err := uc.CreatePrescription(context.Background(), "pat-1", valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPrescriptionUseCase_GetPrescription(t *testing.T) {
	p := entities.Prescription{
		ID:        "rx-1",
		PatientID: "pat-1",
		Files:     []entities.FileRef{{Path: "pat-1/a.jpg", Name: "a.jpg"}},
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
		uc := NewPrescriptionUseCase(repo, nil, nil, 0, nil)
		repo.EXPECT().GetByID(gomock.Any(), "rx-1").Return(entities.Prescription{}, nil)
		_, err := uc.GetPrescription(context.Background(), "rx-1", entities.Identity{UserID: "pat-1", Role: entities.RolePatient})
		if !errors.Is(err, ErrPrescriptionNotFound) {
			t.Fatalf("expected ErrPrescriptionNotFound, got %v", err)
		}
	})

	t.Run("other patient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
		uc := NewPrescriptionUseCase(repo, nil, nil, 0, nil)
		repo.EXPECT().GetByID(gomock.Any(), "rx-1").Return(p, nil)
		_, err := uc.GetPrescription(context.Background(), "rx-1", entities.Identity{UserID: "pat-2", Role: entities.RolePatient})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("signer failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
		signer := mock_interfaces.NewMockIFileSigner(ctrl)
		uc := NewPrescriptionUseCase(repo, nil, signer, time.Minute, nil)
		repo.EXPECT().GetByID(gomock.Any(), "rx-1").Return(p, nil)
		signer.EXPECT().SignedURL(gomock.Any(), "pat-1/a.jpg", time.Minute).Return("", errors.New("s3"))
		_, err := uc.GetPrescription(context.Background(), "rx-1", entities.Identity{UserID: "ph-1", Role: entities.RolePharmacy})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("pharmacy gets signed urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
		signer := mock_interfaces.NewMockIFileSigner(ctrl)
		uc := NewPrescriptionUseCase(repo, nil, signer, time.Minute, nil)
		repo.EXPECT().GetByID(gomock.Any(), "rx-1").Return(p, nil)
		signer.EXPECT().SignedURL(gomock.Any(), "pat-1/a.jpg", time.Minute).Return("https://signed/a", nil)

		view, err := uc.GetPrescription(context.Background(), "rx-1", entities.Identity{UserID: "ph-1", Role: entities.RolePharmacy})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Files) != 1 || view.Files[0].URL != "https://signed/a" {
			t.Fatalf("unexpected files: %+v", view.Files)
		}
	})
}

func TestPrescriptionUseCase_ListOpenForPharmacy(t *testing.T) {
	ctrl := gomock.NewController(t)
	prescriptions := mock_interfaces.NewMockIPrescriptionRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewPrescriptionUseCase(prescriptions, quotes, nil, 0, nil)

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prescriptions.EXPECT().ListByStatus(gomock.Any(), entities.PrescriptionStatusPending).Return([]entities.Prescription{
		{ID: "rx-1", CreatedAt: older},
		{ID: "rx-2", CreatedAt: older.Add(time.Hour)},
		{ID: "rx-3", CreatedAt: older.Add(2 * time.Hour)},
	}, nil)
	quotes.EXPECT().ListByPharmacy(gomock.Any(), "ph-1").Return([]entities.Quote{{ID: "q-1", PrescriptionID: "rx-2"}}, nil)

	res, err := uc.ListOpenForPharmacy(context.Background(), "ph-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "rx-3" || res[1].ID != "rx-1" {
		t.Fatalf("unexpected open list: %+v", res)
	}
}
