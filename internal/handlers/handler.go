package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/services"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

// headerToken carries the session token on authenticated requests.
const headerToken = "X-Token"

type Handler struct {
	auth   services.AuthService
	users  services.UserService
	files  services.FileService
	app    services.AppService
	logger *zap.SugaredLogger
}

func New(auth services.AuthService, users services.UserService, files services.FileService, app services.AppService, logger *zap.SugaredLogger) *Handler {
	return &Handler{auth: auth, users: users, files: files, app: app, logger: logger}
}

// requester resolves the session token of the current request.
func (h *Handler) requester(c *fiber.Ctx) (*models.User, error) {
	return h.auth.Identify(c.Context(), c.Get(headerToken))
}

// fail renders err with its mapped status. Internal errors are logged and
// masked.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := utils.StatusCode(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		h.logger.Errorw("request failed", "path", c.Path(), "error", err)
		msg = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
