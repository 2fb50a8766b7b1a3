package postgres

import (
	"context"
	"database/sql"
)

// EnsureSchema crea las tablas si no existen. Es idempotente y se
// ejecuta en cada arranque, antes de aceptar tráfico.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS patients (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			date_of_birth DATE NOT NULL,
			address TEXT,
			medical_history TEXT,
			blood_type TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id BIGSERIAL PRIMARY KEY,
			patient_id BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			doctor_name TEXT NOT NULL,
			appointment_date TIMESTAMPTZ NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 30,
			status TEXT NOT NULL DEFAULT 'scheduled',
			reason TEXT NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prescriptions (
			id BIGSERIAL PRIMARY KEY,
			patient_id BIGINT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			medication_name TEXT NOT NULL,
			dosage TEXT NOT NULL,
			frequency TEXT NOT NULL,
			duration_days INTEGER NOT NULL,
			prescribing_doctor TEXT NOT NULL,
			instructions TEXT,
			issued_date TIMESTAMPTZ NOT NULL,
			expiry_date TIMESTAMPTZ NOT NULL,
			refills_remaining INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
