package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthcare-api/internal/domain/appointments"
	"healthcare-api/internal/domain/patients"
	"healthcare-api/internal/domain/prescriptions"
)

func seedPatient(t *testing.T, s *Store, email string) int64 {
	t.Helper()
	id, err := s.Patients().Create(context.Background(), patients.Patient{
		FirstName:   "Carla",
		LastName:    "Mendoza",
		Email:       email,
		Phone:       "555-0101",
		DateOfBirth: time.Date(1985, 6, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return id
}

func TestStore_DuplicateEmailOnCreate(t *testing.T) {
	s := NewStore()
	seedPatient(t, s, "carla@example.com")

	_, err := s.Patients().Create(context.Background(), patients.Patient{
		FirstName: "Otra", LastName: "Persona", Email: "carla@example.com", Phone: "555-9999",
	})
	if !errors.Is(err, patients.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStore_DuplicateEmailOnUpdate(t *testing.T) {
	s := NewStore()
	seedPatient(t, s, "a@example.com")
	idB := seedPatient(t, s, "b@example.com")

	p, err := s.Patients().GetByID(context.Background(), idB)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.Email = "a@example.com"

	if err := s.Patients().Update(context.Background(), p); !errors.Is(err, patients.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStore_AppointmentRequiresExistingPatient(t *testing.T) {
	s := NewStore()

	_, err := s.Appointments().Create(context.Background(), appointments.Appointment{
		PatientID:  99,
		DoctorName: "Dra. Paredes",
		Status:     appointments.StatusScheduled,
	})
	if !errors.Is(err, appointments.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStore_PrescriptionRequiresExistingPatient(t *testing.T) {
	s := NewStore()

	_, err := s.Prescriptions().Create(context.Background(), prescriptions.Prescription{
		PatientID:      99,
		MedicationName: "Ibuprofeno",
	})
	if !errors.Is(err, prescriptions.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStore_DeletePatientCascades(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id := seedPatient(t, s, "carla@example.com")
	other := seedPatient(t, s, "otra@example.com")

	for i := 0; i < 2; i++ {
		if _, err := s.Appointments().Create(ctx, appointments.Appointment{
			PatientID:       id,
			DoctorName:      "Dra. Paredes",
			AppointmentDate: time.Now().UTC().Add(24 * time.Hour),
			DurationMinutes: 30,
			Status:          appointments.StatusScheduled,
			Reason:          "control",
		}); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}
	rxID, err := s.Prescriptions().Create(ctx, prescriptions.Prescription{
		PatientID:      id,
		MedicationName: "Amoxicilina",
		Dosage:         "500mg",
	})
	if err != nil {
		t.Fatalf("seed prescription: %v", err)
	}
	// registro de otro paciente que tiene que sobrevivir al cascade
	keepID, err := s.Appointments().Create(ctx, appointments.Appointment{
		PatientID:  other,
		DoctorName: "Dr. Benítez",
		Status:     appointments.StatusScheduled,
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	if err := s.Patients().Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	appts, err := s.Appointments().ListAll(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != keepID {
		t.Fatalf("expected only the other patient's appointment to survive, got %+v", appts)
	}
	if _, err := s.Prescriptions().GetByID(ctx, rxID); !errors.Is(err, prescriptions.ErrNotFound) {
		t.Fatalf("expected prescription gone, got %v", err)
	}
}

func TestStore_DeleteMissingPatient(t *testing.T) {
	s := NewStore()
	if err := s.Patients().Delete(context.Background(), 123); !errors.Is(err, patients.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListOrdersNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Patients().Create(ctx, patients.Patient{
			FirstName: "P", LastName: "N", Phone: "555",
			Email:     string(rune('a'+i)) + "@example.com",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := s.Patients().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatalf("rows not ordered newest first: %v after %v", all[i].CreatedAt, all[i-1].CreatedAt)
		}
	}
}
