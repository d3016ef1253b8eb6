package handlers

import (
	"github.com/gofiber/fiber/v3"

	"tuberank/internal/config"
	"tuberank/internal/models"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index renders the scoring dashboard.
func (h *PageHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	return c.Render("index", fiber.Map{
		"Title": "TubeRank",
		"User":  user,
	})
}

// Login renders the sign-in page.
func (h *PageHandler) Login(c fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Sign in",
	})
}
