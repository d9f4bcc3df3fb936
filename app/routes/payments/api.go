package payments

import (
	"time"

	"spp-tuition/app/models"
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/routes/helpers"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// paymentRequest is the raw JSON payload; dates arrive as YYYY-MM-DD strings
// and are parsed here before anything reaches the ledger service.
type paymentRequest struct {
	StudentID    string          `json:"student_id"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  string          `json:"payment_date"`
	PaymentMonth string          `json:"payment_month"`
	Status       string          `json:"status"`
	Method       string          `json:"method"`
	Notes        string          `json:"notes"`
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ListPaymentsAPI returns payments joined with student details, filtered by
// search text, status and month, paginated.
func (h *Handlers) ListPaymentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", h.PageSize)

	filters := models.PaymentFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Month:  c.Query("month"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	payments, total, err := h.Payments.ListPayments(filters)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"payments":    payments,
		"count":       len(payments),
		"total_count": total,
		"page":        page,
	})
}

// SummaryAPI aggregates the filtered selection into per-status counts and
// the Paid total, for the payments page summary cards.
func (h *Handlers) SummaryAPI(c *fiber.Ctx) error {
	filters := models.PaymentFilters{
		Search: c.Query("search"),
		Month:  c.Query("month"),
	}

	summary, err := h.Payments.SummarizePayments(filters)
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func (h *Handlers) GetPaymentAPI(c *fiber.Ctx) error {
	payment, err := h.Payments.GetPayment(c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"payment": payment})
}

func (h *Handlers) CreatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, ok := parseDate(req.PaymentDate)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "payment_date must be in YYYY-MM-DD format"})
	}

	payment, err := h.Payments.CreatePayment(auth.Actor(c), services.CreatePaymentInput{
		StudentID:    req.StudentID,
		Amount:       req.Amount,
		PaymentDate:  date,
		PaymentMonth: req.PaymentMonth,
		Status:       req.Status,
		Method:       req.Method,
		Notes:        req.Notes,
	})
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

func (h *Handlers) UpdatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, ok := parseDate(req.PaymentDate)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "payment_date must be in YYYY-MM-DD format"})
	}

	updated, err := h.Payments.UpdatePayment(auth.Actor(c), c.Params("id"), services.UpdatePaymentInput{
		Amount:      req.Amount,
		PaymentDate: date,
		Status:      req.Status,
		Method:      req.Method,
		Notes:       req.Notes,
	})
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Payment updated successfully",
		"updated": updated,
	})
}

func (h *Handlers) DeletePaymentAPI(c *fiber.Ctx) error {
	if err := h.Payments.DeletePayment(auth.Actor(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
