package response

import (
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
)

// Money fields are rendered with two decimals.
type LineItemResponse struct {
	Drug     string `json:"drug"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Notes    string `json:"notes,omitempty"`
}

type QuoteResponse struct {
	ID                string             `json:"id"`
	PrescriptionID    string             `json:"prescription_id"`
	PharmacyID        string             `json:"pharmacy_id"`
	Items             []LineItemResponse `json:"items"`
	DeliveryFee       string             `json:"delivery_fee"`
	Subtotal          string             `json:"subtotal"`
	Total             string             `json:"total"`
	EstimatedDelivery string             `json:"estimated_delivery"`
	Notes             string             `json:"notes"`
	Status            string             `json:"status"`
	AcceptedAt        *time.Time         `json:"accepted_at,omitempty"`
	RejectedAt        *time.Time         `json:"rejected_at,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, LineItemResponse{
			Drug:     it.Drug,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			Notes:    it.Notes,
		})
	}
	return QuoteResponse{
		ID:                q.ID,
		PrescriptionID:    q.PrescriptionID,
		PharmacyID:        q.PharmacyID,
		Items:             items,
		DeliveryFee:       q.DeliveryFee.StringFixed(2),
		Subtotal:          q.Subtotal().StringFixed(2),
		Total:             q.DisplayTotal(),
		EstimatedDelivery: q.EstimatedDelivery,
		Notes:             q.Notes,
		Status:            string(q.Status),
		AcceptedAt:        q.AcceptedAt,
		RejectedAt:        q.RejectedAt,
		CompletedAt:       q.CompletedAt,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotes(list []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteOutcomeResponse is returned by transitions. Warning is set when the state change was
// saved but its notification could not be handed off.
type QuoteOutcomeResponse struct {
	Quote        QuoteResponse         `json:"quote"`
	Prescription *PrescriptionResponse `json:"prescription,omitempty"`
	Warning      string                `json:"warning,omitempty"`
}

func FromQuoteOutcome(o usecase.QuoteOutcome) QuoteOutcomeResponse {
	resp := QuoteOutcomeResponse{
		Quote:   FromQuote(o.Quote),
		Warning: o.NotificationWarning,
	}
	if o.Prescription.ID != "" {
		rx := FromPrescription(o.Prescription)
		resp.Prescription = &rx
	}
	return resp
}

type MessageResponse struct {
	Message string `json:"message"`
}
