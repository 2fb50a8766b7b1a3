package prescriptions

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("prescription not found")
	ErrConflict = errors.New("constraint violation")
)

type Repository interface {
	Create(ctx context.Context, p Prescription) (int64, error)
	GetByID(ctx context.Context, id int64) (Prescription, error)
	// ListAll ordena por issued_date descendente.
	ListAll(ctx context.Context) ([]Prescription, error)
	Delete(ctx context.Context, id int64) error
}
