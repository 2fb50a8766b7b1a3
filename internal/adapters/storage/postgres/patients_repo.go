package postgres

import (
	"context"
	"database/sql"

	"healthcare-api/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (
			first_name, last_name, email, phone, date_of_birth,
			address, medical_history, blood_type,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Phone,
		p.DateOfBirth,
		toNullString(p.Address),
		toNullString(p.MedicalHistory),
		toNullString(p.BloodType),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, patients.ErrConflict)
	}
	return id, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone, date_of_birth,
			address, medical_history, blood_type,
			created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	p, err := scanPatient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) ListAll(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone, date_of_birth,
			address, medical_history, blood_type,
			created_at, updated_at
		FROM patients
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			address = $6,
			medical_history = $7,
			blood_type = $8,
			updated_at = $9
		WHERE id = $1
	`,
		p.ID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Phone,
		toNullString(p.Address),
		toNullString(p.MedicalHistory),
		toNullString(p.BloodType),
		p.UpdatedAt,
	)
	if err != nil {
		return constraintErr(err, patients.ErrConflict)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

// Delete borra la fila; los turnos y recetas del paciente caen por el
// ON DELETE CASCADE del esquema.
func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (patients.Patient, error) {
	var p patients.Patient
	var address, history, blood sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.DateOfBirth,
		&address,
		&history,
		&blood,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return patients.Patient{}, err
	}

	p.Address = fromNullString(address)
	p.MedicalHistory = fromNullString(history)
	p.BloodType = fromNullString(blood)

	return p, nil
}
