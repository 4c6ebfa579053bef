package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/store"
)

const UserContextKey = "user"

// AuthRequired validates the bearer token and makes sure it matches the
// store's active session, restoring the persisted session first when the
// process has restarted since login.
func AuthRequired(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := st.ValidateAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		user := st.CurrentUser()
		if user == nil {
			user, _ = st.Restore(c.Context())
		}
		if user == nil || user.ID != claims.UserID {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Session not active",
			})
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
