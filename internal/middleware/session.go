package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/session"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// userLocalKey is where the decoded session user is stored on the request.
const userLocalKey = "current_user"

// SessionProtected returns a middleware that resolves the opaque session
// token from the Authorization bearer header or the currentUser cookie. A
// missing or malformed token is "no session", never a decoding panic.
func SessionProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies("currentUser")
		}
		if token == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}

		user, err := session.Decode(token)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid session token")
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the session user bound to the request, if any.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(userLocalKey).(models.User)
	return user, ok
}

// RequireRole wraps a handler with a role guard on top of the session user.
func RequireRole(role string, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}
		if user.Role != role {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}

		return handler(c)
	}
}

func bearerToken(c *fiber.Ctx) string {
	authorization := c.Get("Authorization")
	if authorization == "" {
		return ""
	}

	const bearer = "bearer "
	if !strings.HasPrefix(strings.ToLower(authorization), bearer) {
		return ""
	}

	return strings.TrimSpace(authorization[len(bearer):])
}
