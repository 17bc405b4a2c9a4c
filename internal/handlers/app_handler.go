package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetStatus handles GET /status: live ping of both backends.
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	db, cache := h.app.Status(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"redis": cache, "db": db})
}

// GetStats handles GET /stats. A store outage degrades to zero counts with
// an advisory error field; the endpoint never fails outright.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	users, files, err := h.app.Stats(c.Context())
	resp := fiber.Map{"users": users, "files": files}
	if err != nil {
		h.logger.Errorw("stats degraded", "error", err)
		resp["error"] = "stats temporarily unavailable"
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
