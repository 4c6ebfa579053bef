package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Users())
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.store.AddUser(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user id")
	}

	var input domain.UpdateUserRoleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if !input.Role.IsValid() {
		return middleware.BadRequest("Invalid role")
	}

	user, err := h.store.UpdateUserRole(c.Context(), id, input.Role)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
