package memory

import (
	"context"
	"fmt"
	"sort"

	"healthcare-api/internal/domain/patients"
)

type patientsRepo struct {
	store *Store
}

func (r *patientsRepo) Create(ctx context.Context, p patients.Patient) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.patients {
		if existing.Email == p.Email {
			return 0, fmt.Errorf("%w: duplicate key value violates unique constraint on email", patients.ErrConflict)
		}
	}

	s.nextPatientID++
	p.ID = s.nextPatientID
	s.patients[p.ID] = p
	return p.ID, nil
}

func (r *patientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientsRepo) ListAll(ctx context.Context) ([]patients.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]patients.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}

	// created_at desc, con id como desempate estable
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *patientsRepo) Update(ctx context.Context, p patients.Patient) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[p.ID]; !ok {
		return patients.ErrNotFound
	}
	for id, existing := range s.patients {
		if id != p.ID && existing.Email == p.Email {
			return fmt.Errorf("%w: duplicate key value violates unique constraint on email", patients.ErrConflict)
		}
	}

	s.patients[p.ID] = p
	return nil
}

func (r *patientsRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[id]; !ok {
		return patients.ErrNotFound
	}
	delete(s.patients, id)

	// cascade: igual que el ON DELETE CASCADE del esquema
	for aid, a := range s.appointments {
		if a.PatientID == id {
			delete(s.appointments, aid)
		}
	}
	for pid, p := range s.prescriptions {
		if p.PatientID == id {
			delete(s.prescriptions, pid)
		}
	}

	return nil
}
