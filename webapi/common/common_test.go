package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/domain/user"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{cause.ErrCauseNotFound, fiber.StatusNotFound},
		{fmt.Errorf("load: %w", cause.ErrCauseNotFound), fiber.StatusNotFound},
		{user.ErrEmailTaken, fiber.StatusConflict},
		{testimonial.ErrAlreadyReported, fiber.StatusConflict},
		{user.ErrUserUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrAmountMustBePositive, fiber.StatusBadRequest},
		{provider.ErrGateway, fiber.StatusBadGateway},
		{fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err), tc.err.Error())
	}
}

func decodeProblem(t *testing.T, resp *http.Response) common.ProblemDetails {
	t.Helper()
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Cause not found", cause.ErrCauseNotFound)
	})
	app.Get("/explicit", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Failed", errors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.Equal(t, "cause not found", pd.Detail)
	assert.Equal(t, "/missing", pd.Instance)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/explicit", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "missing user context", decodeProblem(t, resp).Detail)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, decodeProblem(t, resp).Detail, "pq")
}

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[signupInput](c)
		if input == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "ok", input)
	})

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"email":"ama@example.com","password":"correct-horse"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var ok common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.Equal(t, "ok", ok.Message)

	resp = post(`{"email":123}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = post(`{"email":"nope","password":"short"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	pd := decodeProblem(t, resp)
	errs, isList := pd.Errors.([]any)
	require.True(t, isList)
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].(map[string]any)["field"])
	assert.Equal(t, "password", errs[1].(map[string]any)["field"])
}

func TestQueryHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		page := common.PageQuery(c, 10)
		featured := common.BoolQuery(c, "featured")
		return c.JSON(fiber.Map{
			"id":        id,
			"page":      page.Page,
			"page_size": page.PageSize,
			"featured":  featured,
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet,
		"/items/7f1d2c39-4c1b-4f4e-9b57-0a8f7c3c2d11?page=2&page_size=500&featured=true", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 100, body["page_size"])
	assert.Equal(t, true, body["featured"])
}
