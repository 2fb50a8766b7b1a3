package prescriptions

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service expone alta, lectura y baja de recetas. No hay update a
// propósito: las recetas son inmutables después de emitidas.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID         int64
	MedicationName    string
	Dosage            string
	Frequency         string
	DurationDays      int
	PrescribingDoctor string
	Instructions      *string
	RefillsRemaining  int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Prescription, error) {
	if in.PatientID <= 0 {
		return Prescription{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.MedicationName) == "" {
		return Prescription{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Dosage) == "" {
		return Prescription{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Frequency) == "" {
		return Prescription{}, ErrInvalidInput
	}
	if in.DurationDays <= 0 {
		return Prescription{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PrescribingDoctor) == "" {
		return Prescription{}, ErrInvalidInput
	}

	now := s.now().UTC()
	p := Prescription{
		PatientID:         in.PatientID,
		MedicationName:    strings.TrimSpace(in.MedicationName),
		Dosage:            strings.TrimSpace(in.Dosage),
		Frequency:         strings.TrimSpace(in.Frequency),
		DurationDays:      in.DurationDays,
		PrescribingDoctor: strings.TrimSpace(in.PrescribingDoctor),
		Instructions:      in.Instructions,
		IssuedDate:        now,
		ExpiryDate:        now.AddDate(0, 0, in.DurationDays+GraceDays),
		RefillsRemaining:  in.RefillsRemaining,
		CreatedAt:         now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Prescription{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Prescription, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
