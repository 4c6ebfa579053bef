package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type InterviewHandler struct {
	store *store.Store
}

func NewInterviewHandler(st *store.Store) *InterviewHandler {
	return &InterviewHandler{store: st}
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Interviews())
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateInterviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	interview, err := h.store.AddInterview(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(interview)
}

func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid interview id")
	}

	var input domain.UpdateInterviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	interview, err := h.store.UpdateInterview(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(interview)
}

func (h *InterviewHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid interview id")
	}

	if err := h.store.DeleteInterview(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
