package usecase

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreatePrescriptionCommand struct {
	Note              string
	DeliveryAddress   string
	ContactPhone      string
	PreferredDate     string
	PreferredTimeSlot string
	Files             []entities.FileRef
}

// SignedFile is a prescription file reference resolved to a temporary read URL.
type SignedFile struct {
	Name string
	Path string
	URL  string
}

type PrescriptionView struct {
	Prescription entities.Prescription
	Files        []SignedFile
}

// IPrescriptionUseCase exposes the patient and pharmacy views of prescriptions.
type IPrescriptionUseCase interface {
	CreatePrescription(ctx context.Context, patientID string, cmd CreatePrescriptionCommand) (entities.Prescription, error)
	GetPrescription(ctx context.Context, id string, caller entities.Identity) (PrescriptionView, error)
	ListForPatient(ctx context.Context, patientID string) ([]entities.Prescription, error)
	ListOpenForPharmacy(ctx context.Context, pharmacyID string) ([]entities.Prescription, error)
}

type PrescriptionUseCase struct {
	prescriptions interfaces.IPrescriptionRepository
	quotes        interfaces.IQuoteRepository
	signer        interfaces.IFileSigner
	urlTTL        time.Duration
	log           *zap.Logger
}

var _ IPrescriptionUseCase = (*PrescriptionUseCase)(nil)

func NewPrescriptionUseCase(
	prescriptions interfaces.IPrescriptionRepository,
	quotes interfaces.IQuoteRepository,
	signer interfaces.IFileSigner,
	urlTTL time.Duration,
	log *zap.Logger,
) *PrescriptionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if urlTTL <= 0 {
		urlTTL = 15 * time.Minute
	}
	return &PrescriptionUseCase{prescriptions: prescriptions, quotes: quotes, signer: signer, urlTTL: urlTTL, log: log}
}

func (u *PrescriptionUseCase) CreatePrescription(ctx context.Context, patientID string, cmd CreatePrescriptionCommand) (entities.Prescription, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return entities.Prescription{}, ErrMissingPatientID
	}

	files := make([]entities.FileRef, 0, len(cmd.Files))
	for _, f := range cmd.Files {
		p := strings.TrimSpace(f.Path)
		if p == "" {
			continue
		}
		name := strings.TrimSpace(f.Name)
		if name == "" {
			name = path.Base(p)
		}
		files = append(files, entities.FileRef{Path: p, Name: name})
	}
	if len(files) == 0 {
		return entities.Prescription{}, ErrNoPrescriptionFiles
	}

	address := strings.TrimSpace(cmd.DeliveryAddress)
	if address == "" {
		return entities.Prescription{}, ErrMissingAddress
	}
	phone := strings.TrimSpace(cmd.ContactPhone)
	if phone == "" {
		return entities.Prescription{}, ErrMissingPhone
	}
	date := strings.TrimSpace(cmd.PreferredDate)
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return entities.Prescription{}, ErrInvalidPreferredDate
		}
	}

	now := time.Now().UTC()
	p := entities.Prescription{
		ID:                uuid.NewString(),
		PatientID:         patientID,
		Note:              strings.TrimSpace(cmd.Note),
		DeliveryAddress:   address,
		ContactPhone:      phone,
		PreferredDate:     date,
		PreferredTimeSlot: strings.TrimSpace(cmd.PreferredTimeSlot),
		Files:             files,
		Status:            entities.PrescriptionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.prescriptions.Create(ctx, p)
	if err != nil {
		return entities.Prescription{}, fmt.Errorf("saving prescription: %w", err)
	}
	return created, nil
}

// GetPrescription is open to the owning patient and to any pharmacy, which needs the images
// to price the order.
func (u *PrescriptionUseCase) GetPrescription(ctx context.Context, id string, caller entities.Identity) (PrescriptionView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PrescriptionView{}, ErrInvalidPrescriptionID
	}
	p, err := u.prescriptions.GetByID(ctx, id)
	if err != nil {
		return PrescriptionView{}, err
	}
	if p.ID == "" {
		return PrescriptionView{}, ErrPrescriptionNotFound
	}

	switch caller.Role {
	case entities.RolePatient:
		if p.PatientID != caller.UserID {
			return PrescriptionView{}, ErrNotPrescriptionOwner
		}
	case entities.RolePharmacy:
	default:
		return PrescriptionView{}, ErrForbidden
	}

	view := PrescriptionView{Prescription: p, Files: make([]SignedFile, 0, len(p.Files))}
	for _, f := range p.Files {
		url, err := u.signer.SignedURL(ctx, f.Path, u.urlTTL)
		if err != nil {
			u.log.Warn("signing prescription file failed", zap.String("prescription_id", p.ID), zap.Error(err))
			return PrescriptionView{}, fmt.Errorf("signing %s: %w", f.Path, err)
		}
		view.Files = append(view.Files, SignedFile{Name: f.Name, Path: f.Path, URL: url})
	}
	return view, nil
}

func (u *PrescriptionUseCase) ListForPatient(ctx context.Context, patientID string) ([]entities.Prescription, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrMissingPatientID
	}
	list, err := u.prescriptions.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

// ListOpenForPharmacy returns pending prescriptions the pharmacy has not quoted yet.
func (u *PrescriptionUseCase) ListOpenForPharmacy(ctx context.Context, pharmacyID string) ([]entities.Prescription, error) {
	pharmacyID = strings.TrimSpace(pharmacyID)
	if pharmacyID == "" {
		return nil, ErrMissingPharmacyID
	}
	pending, err := u.prescriptions.ListByStatus(ctx, entities.PrescriptionStatusPending)
	if err != nil {
		return nil, err
	}
	quoted, err := u.quotes.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(quoted))
	for _, q := range quoted {
		seen[q.PrescriptionID] = struct{}{}
	}
	open := make([]entities.Prescription, 0, len(pending))
	for _, p := range pending {
		if _, ok := seen[p.ID]; !ok {
			open = append(open, p)
		}
	}
	sortNewestFirst(open)
	return open, nil
}

func sortNewestFirst(list []entities.Prescription) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
