package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type SavedCandidateHandler struct {
	store *store.Store
}

func NewSavedCandidateHandler(st *store.Store) *SavedCandidateHandler {
	return &SavedCandidateHandler{store: st}
}

func (h *SavedCandidateHandler) List(c *fiber.Ctx) error {
	if q := c.Query("search"); q != "" {
		return c.JSON(h.store.SearchSavedCandidates(q))
	}
	if result := c.Query("result"); result != "" {
		return c.JSON(h.store.SavedCandidatesByResult(domain.FinalResult(result)))
	}
	if company := c.Query("company"); company != "" {
		return c.JSON(h.store.SavedCandidatesByCompany(company))
	}
	return c.JSON(h.store.SavedCandidates())
}

func (h *SavedCandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid record id")
	}

	if err := h.store.DeleteSavedCandidate(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedCandidateHandler) BulkDelete(c *fiber.Ctx) error {
	var input struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(input.IDs) == 0 {
		return middleware.BadRequest("No record ids provided")
	}

	if err := h.store.DeleteSavedCandidates(c.Context(), input.IDs); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedCandidateHandler) Exclude(c *fiber.Ctx) error {
	return h.transition(c, h.store.SetExclusion)
}

func (h *SavedCandidateHandler) Resign(c *fiber.Ctx) error {
	return h.transition(c, h.store.SetResignation)
}

func (h *SavedCandidateHandler) transition(c *fiber.Ctx, apply func(ctx context.Context, id uuid.UUID, reason string) error) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid record id")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := apply(c.Context(), id, input.Reason); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SavedCandidateHandler) Deduplicate(c *fiber.Ctx) error {
	removed, err := h.store.RemoveDuplicates(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (h *SavedCandidateHandler) CheckRejection(c *fiber.Ctx) error {
	nationalID := c.Query("national_id")
	if nationalID == "" {
		return middleware.BadRequest("Missing national_id")
	}

	rejected, date := h.store.CheckRejectedBefore(nationalID)
	return c.JSON(fiber.Map{
		"rejected_before": rejected,
		"rejection_date":  date,
	})
}
