package dashboard

import (
	"spp-tuition/app/models"
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/routes/helpers"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds the dashboard endpoints' dependencies.
type Handlers struct {
	Reports *services.ReportService
}

// SetupDashboardRoutes registers the dashboard aggregation API.
func SetupDashboardRoutes(app *fiber.App, svc *services.ReportService) {
	h := &Handlers{Reports: svc}

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", h.GetStatsAPI)
	api.Get("/breakdown", h.GetBreakdownAPI)
	api.Get("/revenue", h.GetRevenueAPI)
}

// GetStatsAPI returns the headline dashboard counters.
func (h *Handlers) GetStatsAPI(c *fiber.Ctx) error {
	stats, err := h.Reports.DashboardSnapshot()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetBreakdownAPI returns per-status counts and percentages for one month,
// defaulting to the current month.
func (h *Handlers) GetBreakdownAPI(c *fiber.Ctx) error {
	month := models.Month(c.Query("month", models.CurrentMonth().String()))
	if !month.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "month must be in YYYY-MM format"})
	}

	breakdown, err := h.Reports.StatusBreakdown(month)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    breakdown,
	})
}

// GetRevenueAPI returns the Paid-amount sum for one month.
func (h *Handlers) GetRevenueAPI(c *fiber.Ctx) error {
	month := models.Month(c.Query("month", models.CurrentMonth().String()))
	if !month.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "month must be in YYYY-MM format"})
	}

	revenue, err := h.Reports.MonthlyRevenue(month)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"month":   month,
			"revenue": revenue,
		},
	})
}
