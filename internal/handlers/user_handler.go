package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/files-manager/internal/utils"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew handles POST /users: registers an account.
func (h *Handler) PostNew(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, utils.ErrMissingEmail)
	}
	user, err := h.users.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID.Hex(),
		"email": user.Email,
	})
}

// GetMe handles GET /users/me: returns the authenticated account.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":    user.ID.Hex(),
		"email": user.Email,
	})
}
