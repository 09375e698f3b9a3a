package response

import (
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
)

type FileResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

type PrescriptionResponse struct {
	ID                string         `json:"id"`
	PatientID         string         `json:"patient_id"`
	Note              string         `json:"note"`
	DeliveryAddress   string         `json:"delivery_address"`
	ContactPhone      string         `json:"contact_phone"`
	PreferredDate     string         `json:"preferred_date"`
	PreferredTimeSlot string         `json:"preferred_time_slot"`
	Files             []FileResponse `json:"files"`
	Status            string         `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func FromPrescription(p entities.Prescription) PrescriptionResponse {
	files := make([]FileResponse, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, FileResponse{Name: f.Name, Path: f.Path})
	}
	return PrescriptionResponse{
		ID:                p.ID,
		PatientID:         p.PatientID,
		Note:              p.Note,
		DeliveryAddress:   p.DeliveryAddress,
		ContactPhone:      p.ContactPhone,
		PreferredDate:     p.PreferredDate,
		PreferredTimeSlot: p.PreferredTimeSlot,
		Files:             files,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromPrescriptionView replaces the stored file list with the signed one.
func FromPrescriptionView(v usecase.PrescriptionView) PrescriptionResponse {
	resp := FromPrescription(v.Prescription)
	resp.Files = make([]FileResponse, 0, len(v.Files))
	for _, f := range v.Files {
		resp.Files = append(resp.Files, FileResponse{Name: f.Name, Path: f.Path, URL: f.URL})
	}
	return resp
}

func FromPrescriptions(list []entities.Prescription) []PrescriptionResponse {
	out := make([]PrescriptionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPrescription(p))
	}
	return out
}
