package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/files-manager/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	app.Get("/status", h.GetStatus)
	app.Get("/stats", h.GetStats)

	app.Get("/connect", h.GetConnect)
	app.Get("/disconnect", h.GetDisconnect)

	app.Post("/users", h.PostNew)
	app.Get("/users/me", h.GetMe)

	app.Post("/files", h.PostUpload)
	app.Get("/files", h.GetIndex)
	app.Get("/files/:id", h.GetShow)
	app.Get("/files/:id/data", h.GetFile)
	app.Put("/files/:id/publish", h.PutPublish)
	app.Put("/files/:id/unpublish", h.PutUnpublish)
}
