package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetConnect handles GET /connect: Basic credentials in, session token out.
func (h *Handler) GetConnect(c *fiber.Ctx) error {
	token, err := h.auth.Connect(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// GetDisconnect handles GET /disconnect: revokes the presented token.
func (h *Handler) GetDisconnect(c *fiber.Ctx) error {
	if err := h.auth.Disconnect(c.Context(), c.Get(headerToken)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
