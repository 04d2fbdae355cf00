package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/videostream-app/videostream-go/internal/middleware"
	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/service"
)

type VideoHandler struct {
	svc *service.CatalogService
}

func NewVideoHandler(svc *service.CatalogService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos (and the legacy GET /videos route).
func (h *VideoHandler) List(c fiber.Ctx) error {
	return c.JSON(h.svc.List(c.Context()))
}

// GetByID handles GET /api/video/:id
func (h *VideoHandler) GetByID(c fiber.Ctx) error {
	video, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
	}
	return c.JSON(video)
}

// Recommended handles GET /api/video/:id/recommended
func (h *VideoHandler) Recommended(c fiber.Ctx) error {
	videos, err := h.svc.Recommended(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
	}
	return c.JSON(videos)
}

// ByCategory handles GET /api/category/:name
func (h *VideoHandler) ByCategory(c fiber.Ctx) error {
	return c.JSON(h.svc.GetByCategory(c.Context(), c.Params("name")))
}

// Search handles GET /api/search?q=
func (h *VideoHandler) Search(c fiber.Ctx) error {
	q := fiber.Query[string](c, "q")
	return c.JSON(h.svc.Search(c.Context(), q))
}

// Update handles PUT /api/admin/videos/:id
func (h *VideoHandler) Update(c fiber.Ctx) error {
	var upd model.VideoUpdate
	if err := c.Bind().JSON(&upd); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	video, err := h.svc.Update(c.Context(), c.Params("id"), upd)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update video")
	}

	return c.JSON(fiber.Map{
		"message": "Video updated",
		"video":   video,
	})
}

// Delete handles DELETE /api/admin/videos/:id
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	err := h.svc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}
