package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Config returns the minimal configuration route tests need.
func Config() *config.App {
	return &config.App{
		Env:       "test",
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Donation:  &config.Donation{Currency: "GHS"},
		Cache:     &config.Cache{Driver: "memory", BankListTTL: time.Hour, PlatformMetricsTTL: time.Minute},
	}
}

// NewApp returns a Fiber app with the production error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
}

// Token signs an access token the way the auth service does.
func Token(t testing.TB, cfg *config.App, userID uuid.UUID, staff bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID.String(),
		"email":    "user@example.com",
		"is_staff": staff,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.Auth.Jwt.Secret))
	require.NoError(t, err)
	return signed
}

// MakeRequestWithApp runs a request through app without a network listener.
func MakeRequestWithApp(app *fiber.App, method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// DecodeData decodes the success envelope and returns its data as a map.
func DecodeData(t testing.TB, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var body common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body.Data.(map[string]any)
	require.True(t, ok, "data is %T", body.Data)
	return data
}
