package auth

import (
	"errors"
	"time"

	"spp-tuition/app/database"
	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// Service holds the auth handlers' dependencies.
type Service struct {
	Admins *database.AdminStore
	Audit  services.ActivityLogger
}

func NewService(admins *database.AdminStore, audit services.ActivityLogger) *Service {
	return &Service{Admins: admins, Audit: audit}
}

func (s *Service) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	admin, err := s.Admins.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, admin.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(admin.ID, admin.Username, admin.FullName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	s.Audit.Log(services.Actor{
		ID:        admin.ID,
		Name:      admin.FullName,
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}, "login", "Admin logged in")

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"admin":   admin,
	})
}

func (s *Service) LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (s *Service) MeAPI(c *fiber.Ctx) error {
	adminID := c.Locals("admin_id").(string)
	admin, err := s.Admins.GetByID(adminID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Admin not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"admin": admin})
}

func (s *Service) ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 6 characters"})
	}

	adminID := c.Locals("admin_id").(string)
	admin, err := s.Admins.GetByID(adminID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, admin.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := s.Admins.UpdatePassword(adminID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	s.Audit.Log(Actor(c), "change_password", "Admin changed password")

	return c.JSON(fiber.Map{"message": "Password updated"})
}
