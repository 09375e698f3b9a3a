package entities

import "time"

// PrescriptionStatus represents the lifecycle of a patient prescription.
//
// The only transition is pending -> completed, and it happens exclusively as the
// cascade of a quote acceptance.
type PrescriptionStatus string

const (
	PrescriptionStatusPending   PrescriptionStatus = "pending"
	PrescriptionStatusCompleted PrescriptionStatus = "completed"
)

// FileRef points at an uploaded prescription image in object storage.
type FileRef struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Prescription is a patient's request for medication.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (patient_id-index): patient_id
//   - GSI2 (status-index): status
type Prescription struct {
	ID                string             `json:"id"`
	PatientID         string             `json:"patient_id"`
	Note              string             `json:"note"`
	DeliveryAddress   string             `json:"delivery_address"`
	ContactPhone      string             `json:"contact_phone"`
	PreferredDate     string             `json:"preferred_date"`
	PreferredTimeSlot string             `json:"preferred_time_slot"`
	Files             []FileRef          `json:"files"`
	Status            PrescriptionStatus `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func (p Prescription) IsPending() bool {
	return p.Status == PrescriptionStatusPending
}
