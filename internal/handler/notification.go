package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/videostream-app/videostream-go/internal/middleware"
	"github.com/videostream-app/videostream-go/internal/service"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/admin/notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	return c.JSON(h.svc.List(c.Context()))
}

// MarkRead handles POST /api/admin/notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	if err := h.svc.MarkRead(c.Context(), c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
