package memory

import (
	"context"
	"fmt"
	"sort"

	"healthcare-api/internal/domain/appointments"
)

type appointmentsRepo struct {
	store *Store
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[a.PatientID]; !ok {
		return 0, fmt.Errorf("%w: insert on appointments violates foreign key constraint on patient_id", appointments.ErrConflict)
	}

	s.nextAppointmentID++
	a.ID = s.nextAppointmentID
	s.appointments[a.ID] = a
	return a.ID, nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}

	// appointment_date desc
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].AppointmentDate.After(out[j].AppointmentDate)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[a.ID]; !ok {
		return appointments.ErrNotFound
	}
	s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}
