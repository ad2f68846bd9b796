package handlers

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}

	notifications, err := h.notifications.ListForUser(caller)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, notificationResponse(&notifications[i]))
	}
	return c.JSON(out)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	caller, ok := middleware.Caller(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	if err := h.notifications.MarkRead(caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notification marked as read"})
}

func notificationResponse(n *models.Notification) dto.NotificationResponse {
	resp := dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		JobID:     n.JobID,
	}
	if n.Job != nil {
		resp.JobTitle = &n.Job.Title
	}
	return resp
}
