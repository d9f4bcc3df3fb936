package services

import (
	"log"

	"spp-tuition/app/database"
	"spp-tuition/app/models"
)

// Actor identifies the admin performing an operation, passed explicitly into
// every mutating call instead of living in ambient session state.
type Actor struct {
	ID        string
	Name      string
	IPAddress string
	UserAgent string
}

// ActivityLogger records who did what after a successful mutation.
type ActivityLogger interface {
	Log(actor Actor, action, description string)
}

// AuditTrail writes activity events to the activity_logs table. Logging is
// best effort: a failed write is reported to the server log and never fails
// the operation that triggered it.
type AuditTrail struct {
	store *database.ActivityLogStore
}

func NewAuditTrail(store *database.ActivityLogStore) *AuditTrail {
	return &AuditTrail{store: store}
}

func (a *AuditTrail) Log(actor Actor, action, description string) {
	if actor.ID == "" {
		return
	}
	err := a.store.Insert(&models.ActivityLog{
		AdminID:     actor.ID,
		Action:      action,
		Description: description,
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
	})
	if err != nil {
		log.Printf("Activity logging error: %v", err)
	}
}
