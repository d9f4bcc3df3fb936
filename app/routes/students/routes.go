package students

import (
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds the student endpoints' dependencies.
type Handlers struct {
	Students *services.StudentService
	PageSize int
}

// SetupStudentsRoutes registers the student registry API.
func SetupStudentsRoutes(app *fiber.App, svc *services.StudentService, pageSize int) {
	h := &Handlers{Students: svc, PageSize: pageSize}

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", h.ListStudentsAPI)
	api.Get("/generate-code", h.GenerateCodeAPI)
	api.Get("/:id", h.GetStudentAPI)
	api.Post("/", h.CreateStudentAPI)
	api.Put("/:id", h.UpdateStudentAPI)
	api.Delete("/:id", h.DeleteStudentAPI)
}
