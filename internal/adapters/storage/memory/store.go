package memory

import (
	"sync"

	"healthcare-api/internal/domain/appointments"
	"healthcare-api/internal/domain/patients"
	"healthcare-api/internal/domain/prescriptions"
)

// Store es el backend in-memory para dev y tests. Las tres "tablas"
// comparten un mismo mutex porque la unicidad de email, la FK de
// patient_id y el cascade de borrado cruzan entidades, igual que en el
// store relacional.
type Store struct {
	mu sync.RWMutex

	nextPatientID      int64
	nextAppointmentID  int64
	nextPrescriptionID int64

	patients      map[int64]patients.Patient
	appointments  map[int64]appointments.Appointment
	prescriptions map[int64]prescriptions.Prescription
}

func NewStore() *Store {
	return &Store{
		patients:      make(map[int64]patients.Patient),
		appointments:  make(map[int64]appointments.Appointment),
		prescriptions: make(map[int64]prescriptions.Prescription),
	}
}

func (s *Store) Patients() patients.Repository {
	return &patientsRepo{store: s}
}

func (s *Store) Appointments() appointments.Repository {
	return &appointmentsRepo{store: s}
}

func (s *Store) Prescriptions() prescriptions.Repository {
	return &prescriptionsRepo{store: s}
}
