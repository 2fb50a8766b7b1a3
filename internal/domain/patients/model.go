package patients

import "time"

// Patient representa la ficha de un paciente del consultorio.
// El email es único en todo el sistema (lo garantiza el store).
type Patient struct {
	ID int64

	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth time.Time

	Address        *string
	MedicalHistory *string
	BloodType      *string // texto libre, no hay vocabulario cerrado

	CreatedAt time.Time
	UpdatedAt time.Time
}
