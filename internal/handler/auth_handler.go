package handler

import (
	"github.com/gofiber/fiber/v2"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.store.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) LoginRemembered(c *fiber.Ctx) error {
	var input struct {
		RememberToken string `json:"remember_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RememberToken == "" {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.store.RestoreRemembered(c.Context(), input.RememberToken)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(middleware.GetCurrentUser(c))
}
