package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	if c.Query("unread") == "true" {
		return c.JSON(h.store.UnreadNotifications())
	}
	return c.JSON(h.store.Notifications())
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification id")
	}

	if err := h.store.MarkNotificationRead(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
