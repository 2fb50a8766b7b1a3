package patients

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Patient
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Patient{}}
}

func (r *testRepo) Create(ctx context.Context, p Patient) (int64, error) {
	for _, existing := range r.byID {
		if existing.Email == p.Email {
			return 0, fmt.Errorf("%w: duplicate email", ErrConflict)
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Helpers
// -------------------------

func steppedClock(base time.Time) func() time.Time {
	step := 0
	return func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
}

func createInput(email string) CreateInput {
	return CreateInput{
		FirstName:   "Ana",
		LastName:    "Suárez",
		Email:       email,
		Phone:       "555-0000",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func strptr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_StampsTimestampsAndAssignsID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	p, err := svc.Create(context.Background(), createInput("ana@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !p.CreatedAt.Equal(base) || !p.UpdatedAt.Equal(base) {
		t.Fatalf("expected created_at = updated_at = %v, got %v / %v", base, p.CreatedAt, p.UpdatedAt)
	}

	// el id devuelto tiene que servir inmediatamente para GetByID
	got, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Email != "ana@example.com" {
		t.Fatalf("unexpected email %q", got.Email)
	}
}

func TestService_Create_DuplicateEmail_Conflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), createInput("dup@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), createInput("dup@example.com"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// solo una fila persistida
	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 row, got %d", len(all))
	}
}

func TestService_Create_MissingRequired_Invalid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := createInput("x@example.com")
	in.FirstName = "  "

	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_EmptyPartial_OnlyTouchesUpdatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = steppedClock(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))

	in := createInput("ana@example.com")
	in.Address = strptr("Av. Siempreviva 742")
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.FirstName != created.FirstName ||
		updated.LastName != created.LastName ||
		updated.Email != created.Email ||
		updated.Phone != created.Phone ||
		!updated.DateOfBirth.Equal(created.DateOfBirth) {
		t.Fatalf("empty partial changed fields: %+v vs %+v", updated, created)
	}
	if updated.Address == nil || *updated.Address != *created.Address {
		t.Fatal("empty partial changed address")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at must strictly increase: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at must not change on update")
	}
}

func TestService_Update_SingleField_MergesRest(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), createInput("ana@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		Phone: strptr("555-1111"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Phone != "555-1111" {
		t.Fatalf("phone not updated: %q", updated.Phone)
	}
	if updated.FirstName != created.FirstName || updated.Email != created.Email {
		t.Fatal("partial update touched unrelated fields")
	}
}

func TestService_Update_EmptyStringOverwrites(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := createInput("ana@example.com")
	in.MedicalHistory = strptr("asma")
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// "" presente sobreescribe; es distinto de ausente (nil)
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		MedicalHistory: strptr(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MedicalHistory == nil || *updated.MedicalHistory != "" {
		t.Fatalf("expected empty medical_history, got %v", updated.MedicalHistory)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 999, UpdateInput{Phone: strptr("555-2222")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
