package request

import (
	"encoding/json"
	"errors"
	"strings"

	"rxquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDeliveryFee = errors.New("invalid delivery fee")
	ErrInvalidStatus      = errors.New("status must be accepted or rejected")
)

// EmailPrescription is the prescription snapshot sent by clients of the email endpoints.
type EmailPrescription struct {
	ID                string `json:"id"`
	Note              string `json:"note"`
	DeliveryAddress   string `json:"delivery_address"`
	ContactPhone      string `json:"contact_phone"`
	PreferredDate     string `json:"preferred_date"`
	PreferredTimeSlot string `json:"preferred_time_slot"`
}

func (p EmailPrescription) toEntity() entities.Prescription {
	return entities.Prescription{
		ID:                strings.TrimSpace(p.ID),
		Note:              p.Note,
		DeliveryAddress:   p.DeliveryAddress,
		ContactPhone:      p.ContactPhone,
		PreferredDate:     p.PreferredDate,
		PreferredTimeSlot: p.PreferredTimeSlot,
	}
}

// QuotationEmailRequest asks for the "new quotation" email to be sent to a patient.
type QuotationEmailRequest struct {
	PatientName       string             `json:"patientName"`
	PatientEmail      string             `json:"patientEmail"`
	PharmacyName      string             `json:"pharmacyName"`
	Prescription      EmailPrescription  `json:"prescription"`
	Items             []QuoteItemRequest `json:"items"`
	DeliveryFee       json.RawMessage    `json:"deliveryFee" swaggertype:"string"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	Notes             string             `json:"notes"`
	Origin            string             `json:"origin"`
}

func (r QuotationEmailRequest) ToNotice(defaultOrigin string) (entities.QuoteCreatedNotice, error) {
	fee, err := parseFee(r.DeliveryFee)
	if err != nil {
		return entities.QuoteCreatedNotice{}, err
	}
	rx := r.Prescription.toEntity()
	return entities.QuoteCreatedNotice{
		Quote: entities.Quote{
			PrescriptionID:    rx.ID,
			Items:             entities.NormalizeLineItems(ToLineItemInputs(r.Items)),
			DeliveryFee:       fee,
			EstimatedDelivery: r.EstimatedDelivery,
			Notes:             r.Notes,
			Status:            entities.QuoteStatusPending,
		},
		Prescription: rx,
		Patient: entities.Contact{
			Name:    r.PatientName,
			Email:   strings.TrimSpace(r.PatientEmail),
			Phone:   rx.ContactPhone,
			Address: rx.DeliveryAddress,
		},
		Pharmacy: entities.Contact{Name: r.PharmacyName},
		Origin:   originOr(r.Origin, defaultOrigin),
	}, nil
}

// EmailQuote is the quote snapshot sent with a status email.
type EmailQuote struct {
	ID                string             `json:"id"`
	Items             []QuoteItemRequest `json:"items"`
	DeliveryFee       json.RawMessage    `json:"delivery_fee" swaggertype:"string"`
	EstimatedDelivery string             `json:"estimated_delivery"`
	Notes             string             `json:"notes"`
}

// QuotationStatusEmailRequest asks for the decision email to be sent to a pharmacy.
type QuotationStatusEmailRequest struct {
	PharmacyEmail string            `json:"pharmacyEmail"`
	PharmacyName  string            `json:"pharmacyName"`
	PatientName   string            `json:"patientName"`
	Prescription  EmailPrescription `json:"prescription"`
	Quote         EmailQuote        `json:"quote"`
	Status        string            `json:"status"`
	Origin        string            `json:"origin"`
}

func (r QuotationStatusEmailRequest) ToNotice(defaultOrigin string) (entities.QuoteDecidedNotice, error) {
	status, err := parseDecisionStatus(r.Status)
	if err != nil {
		return entities.QuoteDecidedNotice{}, err
	}
	fee, err := parseFee(r.Quote.DeliveryFee)
	if err != nil {
		return entities.QuoteDecidedNotice{}, err
	}
	rx := r.Prescription.toEntity()
	return entities.QuoteDecidedNotice{
		Quote: entities.Quote{
			ID:                strings.TrimSpace(r.Quote.ID),
			PrescriptionID:    rx.ID,
			Items:             entities.NormalizeLineItems(ToLineItemInputs(r.Quote.Items)),
			DeliveryFee:       fee,
			EstimatedDelivery: r.Quote.EstimatedDelivery,
			Notes:             r.Quote.Notes,
			Status:            status,
		},
		Prescription: rx,
		Pharmacy:     entities.Contact{Name: r.PharmacyName, Email: strings.TrimSpace(r.PharmacyEmail)},
		Patient:      entities.Contact{Name: r.PatientName, Phone: rx.ContactPhone, Address: rx.DeliveryAddress},
		Status:       status,
		Origin:       originOr(r.Origin, defaultOrigin),
	}, nil
}

// parseDecisionStatus accepts both the resulting status and the decision verb.
func parseDecisionStatus(v string) (entities.QuoteStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "accepted", "accept":
		return entities.QuoteStatusAccepted, nil
	case "rejected", "reject":
		return entities.QuoteStatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

func parseFee(raw json.RawMessage) (decimal.Decimal, error) {
	text := entities.TextFromJSON(raw)
	if text == "" {
		return decimal.Zero, nil
	}
	fee, err := decimal.NewFromString(text)
	if err != nil || fee.IsNegative() {
		return decimal.Zero, ErrInvalidDeliveryFee
	}
	return fee, nil
}

func originOr(origin, def string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return strings.TrimRight(def, "/")
	}
	return origin
}
