package handler

import (
	"github.com/gofiber/fiber/v2"

	"candidate-tracker/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.store.Stats())
}
