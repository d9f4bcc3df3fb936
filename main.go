package main

import (
	"log"
	"time"

	"spp-tuition/app/config"
	"spp-tuition/app/database"
	"spp-tuition/app/routes/activity"
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/routes/dashboard"
	"spp-tuition/app/routes/payments"
	"spp-tuition/app/routes/students"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// errorHandler turns unhandled errors into JSON responses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Obligation months follow the school's local calendar.
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Jakarta location, falling back to UTC+7: %v", err)
		time.Local = time.FixedZone("WIB", 7*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Stores
	studentStore := database.NewStudentStore(db)
	paymentStore := database.NewPaymentStore(db)
	reportStore := database.NewReportStore(db)
	adminStore := database.NewAdminStore(db)
	activityStore := database.NewActivityLogStore(db)

	// Services
	audit := services.NewAuditTrail(activityStore)
	studentSvc := services.NewStudentService(studentStore, audit)
	paymentSvc := services.NewPaymentService(paymentStore, studentStore, audit)
	reportSvc := services.NewReportService(reportStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	pageSize := config.AppConfig.PageSize

	auth.SetupAuthRoutes(app, auth.NewService(adminStore, audit))
	dashboard.SetupDashboardRoutes(app, reportSvc)
	students.SetupStudentsRoutes(app, studentSvc, pageSize)
	payments.SetupPaymentsRoutes(app, paymentSvc, pageSize)
	activity.SetupActivityRoutes(app, activityStore)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
