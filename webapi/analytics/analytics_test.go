package analytics_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/causehive/infra/cache"
	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/dto"
	analyticsrepo "github.com/amirasaad/causehive/pkg/repository/analytics"
	analyticssvc "github.com/amirasaad/causehive/pkg/service/analytics"
	analyticsweb "github.com/amirasaad/causehive/webapi/analytics"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, *mocks.MockAnalyticsRepository, *config.App) {
	cfg := testutils.Config()
	repo := mocks.NewMockAnalyticsRepository(t)
	uow := mocks.NewMockUnitOfWork(t).Provide((*analyticsrepo.Repository)(nil), repo)
	svc := analyticssvc.New(uow, cache.NewMemoryCache(time.Minute), cfg.Cache,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := testutils.NewApp()
	analyticsweb.Routes(app, svc, cfg)
	return app, repo, cfg
}

func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var body struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func TestPlatformMetricsIsPublicAndCached(t *testing.T) {
	app, repo, _ := newApp(t)
	repo.On("PlatformMetrics", mock.Anything).Return(&dto.PlatformMetrics{
		TotalDonations: 4,
		TotalAmount:    decimal.NewFromInt(320),
		LiveCauses:     2,
	}, nil).Once()

	for range 2 {
		resp := testutils.MakeRequestWithApp(app, "GET", "/analytics/metrics", "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := testutils.DecodeData(t, resp)
		assert.Equal(t, "320", data["total_amount"])
		assert.EqualValues(t, 2, data["live_causes"])
	}
	repo.AssertNumberOfCalls(t, "PlatformMetrics", 1)
}

func TestAdminAnalyticsRequiresStaff(t *testing.T) {
	app, _, cfg := newApp(t)
	token := testutils.Token(t, cfg, uuid.New(), false)
	for _, path := range []string{
		"/admin/analytics/dashboard",
		"/admin/analytics/donations",
		"/admin/analytics/causes",
		"/admin/analytics/users",
	} {
		resp := testutils.MakeRequestWithApp(app, "GET", path, "", token)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, path)
	}
}

func TestDashboard(t *testing.T) {
	app, repo, cfg := newApp(t)
	repo.On("Dashboard", mock.Anything).Return(&dto.Dashboard{
		TotalUsers:    10,
		PendingCauses: 3,
		TotalAmount:   decimal.Zero,
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(app, "GET", "/admin/analytics/dashboard", "",
		testutils.Token(t, cfg, uuid.New(), true))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(t, resp)
	assert.EqualValues(t, 10, data["total_users"])
	assert.EqualValues(t, 3, data["pending_causes"])
}

func TestChartsAreZeroFilled(t *testing.T) {
	app, repo, cfg := newApp(t)
	token := testutils.Token(t, cfg, uuid.New(), true)
	repo.On("DonationsByMonth", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]dto.MonthlyTotal{}, nil).Once()
	repo.On("SignupsByDay", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]dto.DailyCount{}, nil).Once()
	repo.On("TopCauses", mock.Anything, 10).Return([]dto.CauseProgress{
		{ID: uuid.New(), Name: "Clean water", TargetAmount: decimal.NewFromInt(100),
			CurrentAmount: decimal.NewFromInt(50), ProgressPercentage: decimal.NewFromInt(50)},
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(app, "GET", "/admin/analytics/donations", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 6)

	resp = testutils.MakeRequestWithApp(app, "GET", "/admin/analytics/users", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 30)

	resp = testutils.MakeRequestWithApp(app, "GET", "/admin/analytics/causes", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decodeList(t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "Clean water", rows[0].(map[string]any)["name"])
}
