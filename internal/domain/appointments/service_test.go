package appointments

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		PatientID:       1,
		DoctorName:      "Dra. Paredes",
		AppointmentDate: time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC),
		Reason:          "control anual",
	}
}

func intptr(n int) *int       { return &n }
func strptr(s string) *string { return &s }

func TestService_Create_DefaultsDurationAndStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	// sin duration en el payload -> default del sistema
	a, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.DurationMinutes != DefaultDurationMinutes {
		t.Fatalf("expected duration %d, got %d", DefaultDurationMinutes, a.DurationMinutes)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected status %q, got %q", StatusScheduled, a.Status)
	}
}

func TestService_Create_KeepsExplicitDuration(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validCreateInput()
	in.DurationMinutes = 45

	a, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.DurationMinutes != 45 {
		t.Fatalf("expected duration 45, got %d", a.DurationMinutes)
	}
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := map[string]func(*CreateInput){
		"patient_id cero":  func(in *CreateInput) { in.PatientID = 0 },
		"sin doctor":       func(in *CreateInput) { in.DoctorName = " " },
		"sin fecha":        func(in *CreateInput) { in.AppointmentDate = time.Time{} },
		"sin motivo":       func(in *CreateInput) { in.Reason = "" },
	}

	for name, mutate := range cases {
		in := validCreateInput()
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Update_PartialStatusAndDuration(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		Status:          strptr("completed"),
		DurationMinutes: intptr(60),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != "completed" {
		t.Fatalf("expected status completed, got %q", updated.Status)
	}
	if updated.DurationMinutes != 60 {
		t.Fatalf("expected duration 60, got %d", updated.DurationMinutes)
	}
	// lo no enviado queda como estaba
	if updated.DoctorName != created.DoctorName || updated.PatientID != created.PatientID {
		t.Fatal("partial update touched unrelated fields")
	}
	if !updated.AppointmentDate.Equal(created.AppointmentDate) {
		t.Fatal("partial update touched appointment_date")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), 42, UpdateInput{Status: strptr("cancelled")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
