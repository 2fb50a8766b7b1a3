package patients

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
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth time.Time

	Address        *string
	MedicalHistory *string
	BloodType      *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Phone) == "" {
		return Patient{}, ErrInvalidInput
	}
	if in.DateOfBirth.IsZero() {
		return Patient{}, ErrInvalidInput
	}

	now := s.now().UTC()
	p := Patient{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		DateOfBirth:    in.DateOfBirth,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		BloodType:      in.BloodType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Patient{}, err
	}
	// Releemos la fila completa para devolver exactamente lo persistido.
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar,
// valor presente (incluido "") = sobreescribir.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string

	Address        *string
	MedicalHistory *string
	BloodType      *string
}

// Update lee la fila actual para tomar los valores por defecto del merge,
// escribe la versión mezclada y relee. La secuencia no es transaccional:
// un delete concurrente entre la lectura y la escritura se refleja como
// not found en la escritura.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Patient, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	if in.FirstName != nil {
		current.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		current.LastName = *in.LastName
	}
	if in.Email != nil {
		current.Email = *in.Email
	}
	if in.Phone != nil {
		current.Phone = *in.Phone
	}
	if in.Address != nil {
		current.Address = in.Address
	}
	if in.MedicalHistory != nil {
		current.MedicalHistory = in.MedicalHistory
	}
	if in.BloodType != nil {
		current.BloodType = in.BloodType
	}

	// updated_at se estampa siempre, haya o no campos cambiados.
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Patient{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
