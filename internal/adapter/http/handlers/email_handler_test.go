package handlers

import (
	"errors"
	"net/http"
	"testing"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
	mock_interfaces "rxquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEmailHandler_SendQuotationEmail(t *testing.T) {
	const path = "/quotation-email"

	t.Run("missing patient email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "https://app.example", nil).SendQuotationEmail)

		w := perform(r, http.MethodPost, path, `{"patientName":"Ana","items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "https://app.example", nil).SendQuotationEmail)

		n.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).
			Return(&usecase.NotificationDeliveryError{Stage: usecase.StageTransport, Err: errors.New("smtp down")})

		w := perform(r, http.MethodPost, path, `{"patientEmail":"ana@example.com","items":[{"drug":"A","quantity":"1","price":1}]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "https://app.example", nil).SendQuotationEmail)

		n.EXPECT().NotifyQuoteCreated(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, notice entities.QuoteCreatedNotice) error {
				if notice.Patient.Email != "ana@example.com" || notice.Quote.DisplayTotal() != "17.50" {
					t.Fatalf("unexpected notice: %+v", notice)
				}
				if notice.Origin != "https://app.example" {
					t.Fatalf("expected configured origin, got %q", notice.Origin)
				}
				return nil
			})

		w := perform(r, http.MethodPost, path,
			`{"patientEmail":"ana@example.com","prescription":{"id":"rx-1"},"items":[{"drug":"A","quantity":"1","amount":"12.50"}],"deliveryFee":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEmailHandler_SendQuotationStatusEmail(t *testing.T) {
	const path = "/quotation-status-email"

	t.Run("missing pharmacy email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "", nil).SendQuotationStatusEmail)

		w := perform(r, http.MethodPost, path, `{"status":"accepted"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "", nil).SendQuotationStatusEmail)

		w := perform(r, http.MethodPost, path, `{"pharmacyEmail":"ph@example.com","status":"maybe"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := newRouter(nil)
		r.POST(path, NewEmailHandler(n, "", nil).SendQuotationStatusEmail)

		n.EXPECT().NotifyQuoteDecided(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, notice entities.QuoteDecidedNotice) error {
				if notice.Status != entities.QuoteStatusRejected || notice.Pharmacy.Email != "ph@example.com" {
					t.Fatalf("unexpected notice: %+v", notice)
				}
				return nil
			})

		w := perform(r, http.MethodPost, path,
			`{"pharmacyEmail":"ph@example.com","pharmacyName":"Farma","status":"rejected","quote":{"id":"q-1","delivery_fee":"5"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
