package postgres

import (
	"context"
	"database/sql"

	"healthcare-api/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (
			patient_id, doctor_name, appointment_date,
			duration_minutes, status, reason, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		a.PatientID,
		a.DoctorName,
		a.AppointmentDate,
		a.DurationMinutes,
		a.Status,
		a.Reason,
		toNullString(a.Notes),
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, appointments.ErrConflict)
	}
	return id, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, patient_id, doctor_name, appointment_date,
			duration_minutes, status, reason, notes,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListAll(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, patient_id, doctor_name, appointment_date,
			duration_minutes, status, reason, notes,
			created_at, updated_at
		FROM appointments
		ORDER BY appointment_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			doctor_name = $2,
			appointment_date = $3,
			duration_minutes = $4,
			status = $5,
			reason = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $1
	`,
		a.ID,
		a.DoctorName,
		a.AppointmentDate,
		a.DurationMinutes,
		a.Status,
		a.Reason,
		toNullString(a.Notes),
		a.UpdatedAt,
	)
	if err != nil {
		return constraintErr(err, appointments.ErrConflict)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var notes sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.DoctorName,
		&a.AppointmentDate,
		&a.DurationMinutes,
		&a.Status,
		&a.Reason,
		&notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.Notes = fromNullString(notes)

	return a, nil
}
