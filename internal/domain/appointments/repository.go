package appointments

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("appointment not found")
	ErrConflict = errors.New("constraint violation")
)

type Repository interface {
	Create(ctx context.Context, a Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	// ListAll ordena por appointment_date descendente.
	ListAll(ctx context.Context) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id int64) error
}
