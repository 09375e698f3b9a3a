package response

import (
	"testing"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"
)

func TestFromPrescriptionView_UsesSignedFiles(t *testing.T) {
	view := usecase.PrescriptionView{
		Prescription: entities.Prescription{
			ID:     "rx-1",
			Files:  []entities.FileRef{{Path: "rx/1/a.jpg", Name: "a.jpg"}},
			Status: entities.PrescriptionStatusPending,
		},
		Files: []usecase.SignedFile{{Name: "a.jpg", Path: "rx/1/a.jpg", URL: "https://signed/a.jpg"}},
	}

	resp := FromPrescriptionView(view)
	if len(resp.Files) != 1 || resp.Files[0].URL != "https://signed/a.jpg" {
		t.Fatalf("expected signed file, got %+v", resp.Files)
	}

	plain := FromPrescription(view.Prescription)
	if plain.Files[0].URL != "" {
		t.Fatalf("expected no url on plain listing, got %q", plain.Files[0].URL)
	}
}
