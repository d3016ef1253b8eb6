package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tuberank/internal/models"
)

// AuthMiddleware gates routes on the OIDC session established by the
// auth handler.
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireAPIUser ensures the caller is authenticated, returning a JSON
// 401 otherwise. On success the user is stored in locals.
func (m *AuthMiddleware) RequireAPIUser(c fiber.Ctx) error {
	user := sessionUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}
	c.Locals("user", user)
	return c.Next()
}

// RequirePageUser ensures the user is authenticated, redirecting to
// /login if not.
func (m *AuthMiddleware) RequirePageUser(c fiber.Ctx) error {
	user := sessionUser(c)
	if user == nil {
		return c.Redirect().To("/login")
	}
	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := sessionUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

func sessionUser(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	sub, _ := sess.Get("user_sub").(string)
	if sub == "" {
		return nil
	}
	email, _ := sess.Get("user_email").(string)
	name, _ := sess.Get("user_name").(string)
	picture, _ := sess.Get("user_picture").(string)
	return &models.User{Sub: sub, Email: email, Name: name, Picture: picture}
}
