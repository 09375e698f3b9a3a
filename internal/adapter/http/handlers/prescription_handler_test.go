package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"rxquote/internal/adapter/http/handlers/mocks"
	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPrescriptionHandler_CreatePrescription(t *testing.T) {
	t.Run("missing files fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		r := newRouter(&patient)
		r.POST("/v1/prescriptions", NewPrescriptionHandler(uc, nil).CreatePrescription)

		w := perform(r, http.MethodPost, "/v1/prescriptions", `{"delivery_address":"Rua A","contact_phone":"555"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		r := newRouter(&patient)
		r.POST("/v1/prescriptions", NewPrescriptionHandler(uc, nil).CreatePrescription)

		uc.EXPECT().CreatePrescription(gomock.Any(), "pat-1", gomock.Any()).Return(entities.Prescription{}, usecase.ErrInvalidPreferredDate)

		w := perform(r, http.MethodPost, "/v1/prescriptions",
			`{"delivery_address":"Rua A","contact_phone":"555","preferred_date":"tomorrow","files":[{"path":"rx/a.jpg"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		r := newRouter(&patient)
		r.POST("/v1/prescriptions", NewPrescriptionHandler(uc, nil).CreatePrescription)

		uc.EXPECT().CreatePrescription(gomock.Any(), "pat-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.CreatePrescriptionCommand) (entities.Prescription, error) {
				if len(cmd.Files) != 1 || cmd.Files[0].Path != "rx/a.jpg" {
					t.Fatalf("unexpected files: %+v", cmd.Files)
				}
				return entities.Prescription{ID: "rx-1", PatientID: "pat-1", Files: cmd.Files, Status: entities.PrescriptionStatusPending}, nil
			})

		w := perform(r, http.MethodPost, "/v1/prescriptions",
			`{"delivery_address":"Rua A","contact_phone":"555","files":[{"path":"rx/a.jpg"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPrescriptionHandler_Reads(t *testing.T) {
	t.Run("get forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		r := newRouter(&patient)
		r.GET("/v1/prescriptions/:id", NewPrescriptionHandler(uc, nil).GetPrescription)

		uc.EXPECT().GetPrescription(gomock.Any(), "rx-2", patient).Return(usecase.PrescriptionView{}, usecase.ErrNotPrescriptionOwner)

		w := perform(r, http.MethodGet, "/v1/prescriptions/rx-2", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("get signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		r := newRouter(&pharmacy)
		r.GET("/v1/prescriptions/:id", NewPrescriptionHandler(uc, nil).GetPrescription)

		uc.EXPECT().GetPrescription(gomock.Any(), "rx-1", pharmacy).Return(usecase.PrescriptionView{
			Prescription: entities.Prescription{ID: "rx-1"},
			Files:        []usecase.SignedFile{{Name: "a.jpg", Path: "rx/a.jpg", URL: "https://signed"}},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/prescriptions/rx-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Files []struct {
				URL string `json:"url"`
			} `json:"files"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Files) != 1 || body.Files[0].URL != "https://signed" {
			t.Fatalf("expected signed url, got %s", w.Body.String())
		}
	})

	t.Run("list own and open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrescriptionUseCase(ctrl)
		h := NewPrescriptionHandler(uc, nil)

		rp := newRouter(&patient)
		rp.GET("/v1/prescriptions", h.ListPrescriptions)
		uc.EXPECT().ListForPatient(gomock.Any(), "pat-1").Return([]entities.Prescription{{ID: "rx-1"}}, nil)
		if w := perform(rp, http.MethodGet, "/v1/prescriptions", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		rph := newRouter(&pharmacy)
		rph.GET("/v1/prescriptions/open", h.ListOpenPrescriptions)
		uc.EXPECT().ListOpenForPharmacy(gomock.Any(), "ph-1").Return(nil, nil)
		w := perform(rph, http.MethodGet, "/v1/prescriptions/open", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}
