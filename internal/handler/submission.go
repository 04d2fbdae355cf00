package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/videostream-app/videostream-go/internal/middleware"
	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Submit handles POST /api/submit-video
func (h *SubmissionHandler) Submit(c fiber.Ctx) error {
	var req model.SubmitVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if msg := middleware.ValidatePayload(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	_, err := h.svc.Submit(c.Context(), service.SubmitInput{
		Title:       req.Title,
		Filename:    req.Filename,
		Category:    req.Category,
		Description: req.Description,
		Email:       req.Email,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		if model.IsValidation(err) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save submission")
	}

	Metrics.SubmissionsTotal.WithLabelValues("received").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Video submitted successfully and is pending review",
	})
}

// ListPending handles GET /api/admin/submissions
func (h *SubmissionHandler) ListPending(c fiber.Ctx) error {
	return c.JSON(h.svc.ListPending(c.Context()))
}

// Approve handles POST /api/admin/submissions/:id/approve
func (h *SubmissionHandler) Approve(c fiber.Ctx) error {
	video, err := h.svc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Submission not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to approve submission")
	}

	Metrics.SubmissionsTotal.WithLabelValues("approved").Inc()
	return c.JSON(fiber.Map{
		"message": "Submission approved",
		"video":   video,
	})
}

// Reject handles POST /api/admin/submissions/:id/reject
func (h *SubmissionHandler) Reject(c fiber.Ctx) error {
	var req model.RejectRequest
	// Body is optional; a missing or malformed body means no reason.
	_ = c.Bind().JSON(&req)

	_, err := h.svc.Reject(c.Context(), c.Params("id"), req.Reason)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Submission not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reject submission")
	}

	Metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(fiber.Map{"message": "Submission rejected"})
}
