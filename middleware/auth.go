package middleware

import (
	"errors"
	"strings"

	"finsim/session"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth returns a middleware that resolves the opaque bearer token
// to a user id via the session store. On success the user id is stored in
// c.Locals("userId") and the raw token in c.Locals("sessionToken") so the
// logout handler can destroy it.
func SessionAuth(sessions session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}
		token := authHeader[len("Bearer "):]

		userID, err := sessions.UserID(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify session!", nil)
		}

		c.Locals("userId", userID)
		c.Locals("sessionToken", token)
		return c.Next()
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
