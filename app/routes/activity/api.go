package activity

import (
	"spp-tuition/app/database"
	"spp-tuition/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds the activity log endpoints' dependencies.
type Handlers struct {
	Logs *database.ActivityLogStore
}

// SetupActivityRoutes registers the recent-activity API.
func SetupActivityRoutes(app *fiber.App, logs *database.ActivityLogStore) {
	h := &Handlers{Logs: logs}

	api := app.Group("/api/activity")
	api.Use(auth.AuthMiddleware)
	api.Get("/recent", h.GetRecentAPI)
}

// GetRecentAPI returns the latest audit entries, newest first.
func (h *Handlers) GetRecentAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	entries, err := h.Logs.Recent(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	return c.JSON(fiber.Map{
		"activities": entries,
		"count":      len(entries),
	})
}
