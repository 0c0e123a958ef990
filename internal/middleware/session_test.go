package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/middleware"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/session"
)

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Get("/", middleware.SessionProtected(), func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(user.Email)
	})
	return app
}

func perform(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSessionProtectedAcceptsBearerToken(t *testing.T) {
	app := newSessionApp()

	token, err := session.Encode(models.User{Email: "ada@uni.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := perform(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionProtectedAcceptsCookie(t *testing.T) {
	app := newSessionApp()

	token, err := session.Encode(models.User{Email: "ada@uni.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "currentUser", Value: token})

	resp := perform(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionProtectedRejectsMissingAndMalformedTokens(t *testing.T) {
	app := newSessionApp()

	resp := perform(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-base64!!")
	resp = perform(t, app, req)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleGuardsHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/", middleware.SessionProtected(), middleware.RequireRole(models.RoleProfessor, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}))

	professorToken, err := session.Encode(models.User{Email: "grace@uni.edu", Role: models.RoleProfessor})
	require.NoError(t, err)
	studentToken, err := session.Encode(models.User{Email: "ada@uni.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+professorToken)
	resp := perform(t, app, req)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp = perform(t, app, req)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
