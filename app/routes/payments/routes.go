package payments

import (
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds the payment endpoints' dependencies.
type Handlers struct {
	Payments *services.PaymentService
	PageSize int
}

// SetupPaymentsRoutes registers the payment ledger API.
func SetupPaymentsRoutes(app *fiber.App, svc *services.PaymentService, pageSize int) {
	h := &Handlers{Payments: svc, PageSize: pageSize}

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", h.ListPaymentsAPI)
	api.Get("/summary", h.SummaryAPI)
	api.Get("/:id", h.GetPaymentAPI)
	api.Post("/", h.CreatePaymentAPI)
	api.Put("/:id", h.UpdatePaymentAPI)
	api.Delete("/:id", h.DeletePaymentAPI)
}
