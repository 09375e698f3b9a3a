package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a pharmacy quote.
//
// Transitions:
//
//	pending -> accepted   (patient accepts; prescription cascades to completed)
//	pending -> rejected   (patient declines)
//	accepted -> completed (explicit post-fulfillment trigger)
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:   {QuoteStatusAccepted, QuoteStatusRejected},
	QuoteStatusAccepted:  {QuoteStatusCompleted},
	QuoteStatusRejected:  {},
	QuoteStatusCompleted: {},
}

func (s QuoteStatus) IsValid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// QuoteDecision is the patient's answer to a pending quote.
type QuoteDecision string

const (
	DecisionAccept QuoteDecision = "accept"
	DecisionReject QuoteDecision = "reject"
)

func (d QuoteDecision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject
}

// Status returns the quote status a decision leads to.
func (d QuoteDecision) Status() QuoteStatus {
	if d == DecisionAccept {
		return QuoteStatusAccepted
	}
	return QuoteStatusRejected
}

// Quote is a pharmacy's priced offer against a prescription.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (prescription_id-index): prescription_id
//   - GSI2 (pharmacy_id-index): pharmacy_id
//
// Monetary representation:
//   - Prices and the delivery fee keep full decimal precision; rounding to 2 places
//     happens only for display.
type Quote struct {
	ID                string          `json:"id"`
	PharmacyID        string          `json:"pharmacy_id"`
	PrescriptionID    string          `json:"prescription_id"`
	Items             []LineItem      `json:"items"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	Notes             string          `json:"notes"`
	Status            QuoteStatus     `json:"status"`
	AcceptedAt        *time.Time      `json:"accepted_at,omitempty"`
	RejectedAt        *time.Time      `json:"rejected_at,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (q Quote) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range q.Items {
		sum = sum.Add(it.Price)
	}
	return sum
}

func (q Quote) Total() decimal.Decimal {
	return q.Subtotal().Add(q.DeliveryFee)
}

func (q Quote) DisplayTotal() string {
	return q.Total().StringFixed(2)
}

func (q Quote) IsPending() bool {
	return q.Status == QuoteStatusPending
}
