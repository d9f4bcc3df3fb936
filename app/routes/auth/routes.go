package auth

import (
	"strings"

	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers login and account endpoints.
func SetupAuthRoutes(app *fiber.App, svc *Service) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", svc.LoginAPI)
	authGroup.Post("/logout", svc.LogoutAPI)

	authGroup.Use(AuthMiddleware)
	authGroup.Get("/me", svc.MeAPI)
	authGroup.Post("/change-password", svc.ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and stores the admin claims on the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("admin_id", claims.AdminID)
	c.Locals("admin_username", claims.Username)
	c.Locals("admin_name", claims.FullName)

	return c.Next()
}

// Actor builds the acting-admin identity for service calls from the request
// context set by AuthMiddleware.
func Actor(c *fiber.Ctx) services.Actor {
	actor := services.Actor{
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if id, ok := c.Locals("admin_id").(string); ok {
		actor.ID = id
	}
	if name, ok := c.Locals("admin_name").(string); ok {
		actor.Name = name
	}
	return actor
}
