package category_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/domain/category"
	categoryrepo "github.com/amirasaad/causehive/pkg/repository/category"
	categorysvc "github.com/amirasaad/causehive/pkg/service/category"
	categoryweb "github.com/amirasaad/causehive/webapi/category"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *mocks.MockCategoryRepository, func(bool) string) {
	cfg := testutils.Config()
	repo := mocks.NewMockCategoryRepository(t)
	uow := mocks.NewMockUnitOfWork(t).Passthrough().Provide((*categoryrepo.Repository)(nil), repo)
	app := testutils.NewApp()
	categoryweb.Routes(app, categorysvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil))), cfg)
	token := func(staff bool) string { return testutils.Token(t, cfg, uuid.New(), staff) }
	return app, repo, token
}

func TestListCategories(t *testing.T) {
	app, repo, _ := setup(t)
	repo.On("List", mock.Anything).Return([]*category.Category{
		{ID: uuid.New(), Name: "Health", Slug: "health", CauseCount: 3},
		{ID: uuid.New(), Name: "Education", Slug: "education", CauseCount: 1},
	}, nil)

	resp := testutils.MakeRequestWithApp(app, "GET", "/categories", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(t, resp)
	assert.EqualValues(t, 2, data["count"])
	results := data["results"].([]any)
	require.Len(t, results, 2)
	assert.EqualValues(t, 3, results[0].(map[string]any)["cause_count"])

	resp = testutils.MakeRequestWithApp(app, "GET", "/categories?page_size=1", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = testutils.DecodeData(t, resp)
	assert.EqualValues(t, 2, data["count"])
	assert.Len(t, data["results"], 1)
}

func TestCreateCategory(t *testing.T) {
	app, repo, token := setup(t)

	resp := testutils.MakeRequestWithApp(app, "POST", "/admin/categories", `{"name":"Health"}`, token(false))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(app, "POST", "/admin/categories", `{"description":"no name"}`, token(true))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *category.Category) bool {
		return c.Slug == "clean-water"
	})).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(app, "POST", "/admin/categories", `{"name":"Clean Water"}`, token(true))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "clean-water", testutils.DecodeData(t, resp)["slug"])
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	app, repo, token := setup(t)
	existing := &category.Category{ID: uuid.New(), Name: "Health", Slug: "health"}
	repo.On("Get", mock.Anything, existing.ID).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(app, "PATCH", "/admin/categories/"+existing.ID.String(),
		`{"name":"Medical Care"}`, token(true))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "medical-care", testutils.DecodeData(t, resp)["slug"])

	missing := uuid.New()
	repo.On("Delete", mock.Anything, missing).Return(category.ErrCategoryNotFound).Once()
	resp = testutils.MakeRequestWithApp(app, "DELETE", "/admin/categories/"+missing.String(), "", token(true))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(app, "DELETE", "/admin/categories/nope", "", token(true))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
