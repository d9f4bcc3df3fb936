package students

import (
	"spp-tuition/app/models"
	"spp-tuition/app/routes/auth"
	"spp-tuition/app/routes/helpers"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// ListStudentsAPI returns students filtered by search text and status,
// paginated.
func (h *Handlers) ListStudentsAPI(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", h.PageSize)

	filters := models.StudentFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	students, total, err := h.Students.ListStudents(filters)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": total,
		"page":        page,
	})
}

func (h *Handlers) GetStudentAPI(c *fiber.Ctx) error {
	student, err := h.Students.GetStudent(c.Params("id"))
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"student": student})
}

func (h *Handlers) CreateStudentAPI(c *fiber.Ctx) error {
	var in services.StudentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student, err := h.Students.CreateStudent(auth.Actor(c), in)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func (h *Handlers) UpdateStudentAPI(c *fiber.Ctx) error {
	var in services.StudentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.Students.UpdateStudent(auth.Actor(c), c.Params("id"), in)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"updated": updated,
	})
}

func (h *Handlers) DeleteStudentAPI(c *fiber.Ctx) error {
	if err := h.Students.DeleteStudent(auth.Actor(c), c.Params("id")); err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// GenerateCodeAPI proposes the next free student code for the current year.
func (h *Handlers) GenerateCodeAPI(c *fiber.Ctx) error {
	code, err := h.Students.GenerateStudentCode()
	if err != nil {
		return helpers.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"student_code": code})
}
