package request

import (
	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
)

type FileRefRequest struct {
	Path string `json:"path" binding:"required"`
	Name string `json:"name"`
}

type CreatePrescriptionRequest struct {
	Note              string           `json:"note"`
	DeliveryAddress   string           `json:"delivery_address" binding:"required"`
	ContactPhone      string           `json:"contact_phone" binding:"required"`
	PreferredDate     string           `json:"preferred_date"`
	PreferredTimeSlot string           `json:"preferred_time_slot"`
	Files             []FileRefRequest `json:"files" binding:"required,min=1,dive"`
}

func (r CreatePrescriptionRequest) ToCommand() usecase.CreatePrescriptionCommand {
	files := make([]entities.FileRef, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, entities.FileRef{Path: f.Path, Name: f.Name})
	}
	return usecase.CreatePrescriptionCommand{
		Note:              r.Note,
		DeliveryAddress:   r.DeliveryAddress,
		ContactPhone:      r.ContactPhone,
		PreferredDate:     r.PreferredDate,
		PreferredTimeSlot: r.PreferredTimeSlot,
		Files:             files,
	}
}
