package memory

import (
	"context"
	"fmt"
	"sort"

	"healthcare-api/internal/domain/prescriptions"
)

type prescriptionsRepo struct {
	store *Store
}

func (r *prescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[p.PatientID]; !ok {
		return 0, fmt.Errorf("%w: insert on prescriptions violates foreign key constraint on patient_id", prescriptions.ErrConflict)
	}

	s.nextPrescriptionID++
	p.ID = s.nextPrescriptionID
	s.prescriptions[p.ID] = p
	return p.ID, nil
}

func (r *prescriptionsRepo) GetByID(ctx context.Context, id int64) (prescriptions.Prescription, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prescriptions[id]
	if !ok {
		return prescriptions.Prescription{}, prescriptions.ErrNotFound
	}
	return p, nil
}

func (r *prescriptionsRepo) ListAll(ctx context.Context) ([]prescriptions.Prescription, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0, len(s.prescriptions))
	for _, p := range s.prescriptions {
		out = append(out, p)
	}

	// issued_date desc
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssuedDate.Equal(out[j].IssuedDate) {
			return out[i].IssuedDate.After(out[j].IssuedDate)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *prescriptionsRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prescriptions[id]; !ok {
		return prescriptions.ErrNotFound
	}
	delete(s.prescriptions, id)
	return nil
}
