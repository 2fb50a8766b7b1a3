package appointments

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

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
	PatientID       int64
	DoctorName      string
	AppointmentDate time.Time
	DurationMinutes int // 0 = usar el default
	Reason          string
	Notes           *string
}

// Create da de alta un turno. El status lo fija el sistema en
// "scheduled"; el llamador no puede elegirlo en la creación. Si el
// patient_id no existe, el store lo rechaza y sale como ErrConflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.PatientID <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.AppointmentDate.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return Appointment{}, ErrInvalidInput
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	now := s.now().UTC()
	a := Appointment{
		PatientID:       in.PatientID,
		DoctorName:      strings.TrimSpace(in.DoctorName),
		AppointmentDate: in.AppointmentDate,
		DurationMinutes: duration,
		Status:          StatusScheduled,
		Reason:          strings.TrimSpace(in.Reason),
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Appointment{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: nil = conservar el valor actual. DurationMinutes ausente
// significa "mantener", no "poner en cero". patient_id no se puede tocar.
type UpdateInput struct {
	DoctorName      *string
	AppointmentDate *time.Time
	DurationMinutes *int
	Status          *string
	Reason          *string
	Notes           *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if in.DoctorName != nil {
		current.DoctorName = *in.DoctorName
	}
	if in.AppointmentDate != nil {
		current.AppointmentDate = *in.AppointmentDate
	}
	if in.DurationMinutes != nil {
		current.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.Reason != nil {
		current.Reason = *in.Reason
	}
	if in.Notes != nil {
		current.Notes = in.Notes
	}

	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
