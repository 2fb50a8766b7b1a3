package postgres

import (
	"context"
	"database/sql"

	"healthcare-api/internal/domain/prescriptions"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

func (r *PrescriptionsRepo) Create(ctx context.Context, p prescriptions.Prescription) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO prescriptions (
			patient_id, medication_name, dosage, frequency,
			duration_days, prescribing_doctor, instructions,
			issued_date, expiry_date, refills_remaining,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		p.PatientID,
		p.MedicationName,
		p.Dosage,
		p.Frequency,
		p.DurationDays,
		p.PrescribingDoctor,
		toNullString(p.Instructions),
		p.IssuedDate,
		p.ExpiryDate,
		p.RefillsRemaining,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, constraintErr(err, prescriptions.ErrConflict)
	}
	return id, nil
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id int64) (prescriptions.Prescription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, patient_id, medication_name, dosage, frequency,
			duration_days, prescribing_doctor, instructions,
			issued_date, expiry_date, refills_remaining,
			created_at
		FROM prescriptions
		WHERE id = $1
	`, id)

	p, err := scanPrescription(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return prescriptions.Prescription{}, prescriptions.ErrNotFound
		}
		return prescriptions.Prescription{}, err
	}
	return p, nil
}

func (r *PrescriptionsRepo) ListAll(ctx context.Context) ([]prescriptions.Prescription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, patient_id, medication_name, dosage, frequency,
			duration_days, prescribing_doctor, instructions,
			issued_date, expiry_date, refills_remaining,
			created_at
		FROM prescriptions
		ORDER BY issued_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescriptions.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return prescriptions.ErrNotFound
	}
	return nil
}

func scanPrescription(row rowScanner) (prescriptions.Prescription, error) {
	var p prescriptions.Prescription
	var instructions sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.PatientID,
		&p.MedicationName,
		&p.Dosage,
		&p.Frequency,
		&p.DurationDays,
		&p.PrescribingDoctor,
		&instructions,
		&p.IssuedDate,
		&p.ExpiryDate,
		&p.RefillsRemaining,
		&p.CreatedAt,
	); err != nil {
		return prescriptions.Prescription{}, err
	}

	p.Instructions = fromNullString(instructions)

	return p, nil
}
