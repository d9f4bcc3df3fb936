package database

import (
	"database/sql"

	"spp-tuition/app/models"
)

// ActivityLogStore persists the audit trail of admin actions.
type ActivityLogStore struct {
	DB *sql.DB
}

func NewActivityLogStore(db *sql.DB) *ActivityLogStore {
	return &ActivityLogStore{DB: db}
}

// Insert writes one audit entry.
func (as *ActivityLogStore) Insert(entry *models.ActivityLog) error {
	query := `INSERT INTO activity_logs (admin_id, action, description, ip_address, user_agent)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	          RETURNING id, created_at`
	return as.DB.QueryRow(query,
		entry.AdminID, entry.Action, entry.Description, entry.IPAddress, entry.UserAgent,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// Recent returns the latest audit entries joined with the acting admin's name.
func (as *ActivityLogStore) Recent(limit int) ([]*models.ActivityLog, error) {
	query := `SELECT al.id, al.admin_id, a.full_name, al.action, al.description,
	                 COALESCE(al.ip_address, ''), COALESCE(al.user_agent, ''), al.created_at
	          FROM activity_logs al
	          JOIN admins a ON al.admin_id = a.id
	          ORDER BY al.created_at DESC
	          LIMIT $1`
	rows, err := as.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ActivityLog
	for rows.Next() {
		e := &models.ActivityLog{}
		if err := rows.Scan(
			&e.ID, &e.AdminID, &e.AdminName, &e.Action, &e.Description,
			&e.IPAddress, &e.UserAgent, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
