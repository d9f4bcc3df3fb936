package database

import (
	"database/sql"

	"spp-tuition/app/models"
)

// AdminStore runs admin account queries.
type AdminStore struct {
	DB *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{DB: db}
}

// Create inserts a new admin with an already-hashed password.
func (as *AdminStore) Create(a *models.Admin) error {
	query := `INSERT INTO admins (username, password, full_name, email)
	          VALUES ($1, $2, $3, NULLIF($4, ''))
	          RETURNING id, created_at, updated_at`
	err := as.DB.QueryRow(query, a.Username, a.Password, a.FullName, a.Email).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if isUniqueViolation(err, "admins_username_key") {
		return ErrDuplicateUsername
	}
	return err
}

// GetByUsername returns one admin or ErrNotFound.
func (as *AdminStore) GetByUsername(username string) (*models.Admin, error) {
	a := &models.Admin{}
	var email sql.NullString
	query := `SELECT id, username, password, full_name, email, created_at, updated_at
	          FROM admins WHERE username = $1`
	err := as.DB.QueryRow(query, username).Scan(
		&a.ID, &a.Username, &a.Password, &a.FullName, &email, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Email = email.String
	return a, nil
}

// GetByID returns one admin or ErrNotFound.
func (as *AdminStore) GetByID(id string) (*models.Admin, error) {
	a := &models.Admin{}
	var email sql.NullString
	query := `SELECT id, username, password, full_name, email, created_at, updated_at
	          FROM admins WHERE id = $1`
	err := as.DB.QueryRow(query, id).Scan(
		&a.ID, &a.Username, &a.Password, &a.FullName, &email, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Email = email.String
	return a, nil
}

// UpdatePassword replaces an admin's password hash.
func (as *AdminStore) UpdatePassword(id, hash string) error {
	_, err := as.DB.Exec(`UPDATE admins SET password = $1, updated_at = NOW() WHERE id = $2`, hash, id)
	return err
}
