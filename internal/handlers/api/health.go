package api

import (
	"github.com/gofiber/fiber/v3"

	"tuberank/internal/db"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a new health handler. The database is
// optional; when nil only process liveness is reported.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Check reports overall health including database connectivity.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	result := fiber.Map{"service": "ok"}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			result["database"] = "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"data":   result,
			})
		}
		result["database"] = "ok"
	}

	return jsonSuccess(c, result)
}
