package models

import "time"

// ActivityLog is one audit trail entry written after a successful admin action.
type ActivityLog struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"admin_id"`
	AdminName   string    `json:"admin_name,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
