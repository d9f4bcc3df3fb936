package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies updates.
// Statements are idempotent so the app can run them on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL,
			password VARCHAR(255) NOT NULL,
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT admins_username_key UNIQUE (username)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code VARCHAR(20) NOT NULL,
			name VARCHAR(100) NOT NULL,
			class VARCHAR(50) NOT NULL,
			phone VARCHAR(20),
			email VARCHAR(100),
			parent_name VARCHAR(100),
			parent_phone VARCHAR(20),
			address TEXT,
			monthly_fee NUMERIC(12,2) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'Active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT students_student_code_key UNIQUE (student_code)
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(12,2) NOT NULL,
			payment_date DATE NOT NULL,
			payment_month VARCHAR(7) NOT NULL,
			status VARCHAR(10) NOT NULL,
			method VARCHAR(10) NOT NULL,
			notes TEXT,
			created_by UUID REFERENCES admins(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT payments_student_month_key UNIQUE (student_id, payment_month)
		)`,

		`CREATE TABLE IF NOT EXISTS activity_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			admin_id UUID NOT NULL REFERENCES admins(id),
			action VARCHAR(50) NOT NULL,
			description TEXT NOT NULL,
			ip_address VARCHAR(45),
			user_agent TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS payments_payment_month_idx ON payments (payment_month)`,
		`CREATE INDEX IF NOT EXISTS payments_status_idx ON payments (status)`,
		`CREATE INDEX IF NOT EXISTS activity_logs_created_at_idx ON activity_logs (created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
