package prescriptions

import "time"

// GraceDays es la ventana fija que se suma a la duración del tratamiento
// para calcular el vencimiento de la receta. Regla de negocio, no bug.
const GraceDays = 90

// Prescription es una receta emitida a un paciente. Es de solo
// escritura: una vez creada no se modifica, solo se puede borrar.
type Prescription struct {
	ID        int64
	PatientID int64

	MedicationName    string
	Dosage            string
	Frequency         string
	DurationDays      int
	PrescribingDoctor string
	Instructions      *string

	IssuedDate time.Time
	// ExpiryDate = IssuedDate + (DurationDays + GraceDays) días.
	// Se calcula una sola vez en la creación y nunca se recalcula.
	ExpiryDate       time.Time
	RefillsRemaining int

	CreatedAt time.Time
}
