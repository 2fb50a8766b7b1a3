package appointments

import "time"

// DefaultDurationMinutes aplica cuando la creación no trae duración.
const DefaultDurationMinutes = 30

// StatusScheduled es el estado con el que nace todo turno. Después de
// creado, status es texto libre: no se fuerza ningún vocabulario
// (scheduled, completed, cancelled son los valores habituales).
const StatusScheduled = "scheduled"

// Appointment es un turno de un paciente con un médico. El patient_id
// es inmutable después de la creación y no puede sobrevivir al paciente.
type Appointment struct {
	ID        int64
	PatientID int64

	DoctorName      string
	AppointmentDate time.Time
	DurationMinutes int
	Status          string
	Reason          string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
