package handlers

import (
	"fmt"
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/files-manager/internal/services"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

// PostUpload handles POST /files: creates a folder or stores a file.
func (h *Handler) PostUpload(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req services.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, utils.ErrMissingName)
	}
	file, err := h.files.Upload(c.Context(), user.ID.Hex(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

// GetShow handles GET /files/:id.
func (h *Handler) GetShow(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return h.fail(c, err)
	}
	file, err := h.files.Show(c.Context(), user.ID.Hex(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(file)
}

// GetIndex handles GET /files: lists the children of a folder, paginated.
func (h *Handler) GetIndex(c *fiber.Ctx) error {
	if _, err := h.requester(c); err != nil {
		return h.fail(c, err)
	}
	parentID := c.Query("parentId")
	page := int64(c.QueryInt("page", 0))
	limit := int64(c.QueryInt("limit", 0))
	files, err := h.files.List(c.Context(), parentID, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(files)
}

// PutPublish handles PUT /files/:id/publish.
func (h *Handler) PutPublish(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return h.fail(c, err)
	}
	file, err := h.files.SetVisibility(c.Context(), user.ID.Hex(), c.Params("id"), true)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(file)
}

// PutUnpublish handles PUT /files/:id/unpublish.
func (h *Handler) PutUnpublish(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return h.fail(c, err)
	}
	if _, err := h.files.SetVisibility(c.Context(), user.ID.Hex(), c.Params("id"), false); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isPublic": false})
}

// GetFile handles GET /files/:id/data: raw bytes, optionally a size
// variant. The token is optional; without one only public files resolve.
func (h *Handler) GetFile(c *fiber.Ctx) error {
	requesterID := ""
	if c.Get(headerToken) != "" {
		// An invalid token degrades to anonymous access rather than 401.
		if user, err := h.requester(c); err == nil {
			requesterID = user.ID.Hex()
		}
	}
	size := c.QueryInt("size", 0)
	data, file, err := h.files.Content(c.Context(), requesterID, c.Params("id"), size)
	if err != nil {
		return h.fail(c, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(file.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", file.Name))
	return c.Status(fiber.StatusOK).Send(data)
}
