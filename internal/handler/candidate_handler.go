package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(st *store.Store) *CandidateHandler {
	return &CandidateHandler{store: st}
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	if q := c.Query("search"); q != "" {
		return c.JSON(h.store.SearchCandidates(q))
	}
	if status := c.Query("status"); status != "" {
		return c.JSON(h.store.CandidatesByStatus(domain.CandidateStatus(status)))
	}
	return c.JSON(h.store.Candidates())
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	candidate, err := h.store.AddCandidate(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(candidate)
}

func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid candidate id")
	}

	var input struct {
		Status      domain.CandidateStatus `json:"status"`
		OfferResult domain.OfferResult     `json:"offer_result"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if !input.Status.IsValid() || !input.OfferResult.IsValid() {
		return middleware.BadRequest("Invalid status or offer result")
	}

	if err := h.store.UpdateCandidateStatus(c.Context(), id, input.Status, input.OfferResult); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid candidate id")
	}

	if err := h.store.DeleteCandidate(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CandidateHandler) SaveDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid candidate id")
	}

	var input struct {
		FinalResult domain.FinalResult `json:"final_result"`
		domain.DecisionOptions
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if !input.FinalResult.IsValid() {
		return middleware.BadRequest("Invalid final result")
	}

	if err := h.store.SaveDecision(c.Context(), id, input.FinalResult, input.DecisionOptions); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
