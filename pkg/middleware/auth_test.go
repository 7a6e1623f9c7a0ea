package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtCfg = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func signed(t *testing.T, secret string, staff bool, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  uuid.NewString(),
		"email":    "ama@example.com",
		"is_staff": staff,
		"exp":      exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		if a := Actor(c); a != nil {
			return c.SendString(a.Email)
		}
		return c.SendString("anonymous")
	})
	app.Get("/", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJwtProtected(t *testing.T) {
	app := newApp(JwtProtected(jwtCfg))

	resp := get(t, app, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = get(t, app, signed(t, "other-secret", false, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = get(t, app, signed(t, jwtCfg.Secret, false, time.Now().Add(-time.Minute)))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = get(t, app, signed(t, jwtCfg.Secret, false, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalJwt(t *testing.T) {
	app := newApp(OptionalJwt(jwtCfg))

	resp := get(t, app, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = get(t, app, signed(t, jwtCfg.Secret, false, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	app := newApp(JwtProtected(jwtCfg), AdminOnly())

	resp := get(t, app, signed(t, jwtCfg.Secret, false, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = get(t, app, signed(t, jwtCfg.Secret, true, time.Now().Add(time.Hour)))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, newApp(AdminOnly()), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtError_Malformed(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("Missing or malformed JWT"))
	})
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
