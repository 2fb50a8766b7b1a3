package patients

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("patient not found")
	ErrConflict = errors.New("constraint violation")
)

type Repository interface {
	// Create persiste el paciente y devuelve el id asignado por el store.
	Create(ctx context.Context, p Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	// ListAll devuelve todos los pacientes, más recientes primero.
	ListAll(ctx context.Context) ([]Patient, error)
	Update(ctx context.Context, p Patient) error
	// Delete borra el paciente; el store cascadea turnos y recetas.
	Delete(ctx context.Context, id int64) error
}
