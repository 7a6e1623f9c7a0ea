package testutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/amirasaad/causehive/infra"
	infracache "github.com/amirasaad/causehive/infra/cache"
	infraeventbus "github.com/amirasaad/causehive/infra/eventbus"
	"github.com/amirasaad/causehive/infra/provider/logmail"
	"github.com/amirasaad/causehive/infra/provider/mockpayment"
	infrarepository "github.com/amirasaad/causehive/infra/repository"
	"github.com/amirasaad/causehive/pkg/app"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/webapi"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite runs the full application against a Postgres container,
// the in-memory bus and the mock gateway.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Cfg         *config.App
	Gateway     *mockpayment.MockPaymentProvider
}

func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("causehive"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "../../internal/migrations")
}

// SetupSuite starts Postgres, applies the migrations and builds the app.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping e2e tests in short mode")
	}
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = Config()
	s.Cfg.DB = &config.DB{Url: dsn}
	s.Cfg.Fee = &config.Fee{WithdrawalFeePercentage: 0.025}

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.DB, migrationsDir(), "up", 0))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Gateway = mockpayment.NewMockPaymentProvider()
	deps := &app.Deps{
		Uow:      infrarepository.NewUoW(s.DB),
		EventBus: infraeventbus.NewWithMemory(logger),
		Gateway:  s.Gateway,
		Mailer:   logmail.New(logger),
		Cache:    infracache.NewMemoryCache(time.Minute),
		Logger:   logger,
	}
	s.App = webapi.SetupApp(app.New(deps, s.Cfg))
}

// TearDownSuite terminates the container.
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequestWithApp(s.App, method, path, body, token)
}

// Data decodes the data field of a success envelope.
func (s *E2ETestSuite) Data(resp *http.Response) map[string]any {
	return DecodeData(s.T(), resp)
}

// SignupAndLogin registers a random account and returns its id and token.
// staff accounts are promoted directly in the database.
func (s *E2ETestSuite) SignupAndLogin(staff bool) (uuid.UUID, string) {
	email := fmt.Sprintf("user_%s@example.com", uuid.NewString()[:8])
	body := fmt.Sprintf(`{"email":%q,"password":"password123","first_name":"Test"}`, email)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	userID, err := uuid.Parse(s.Data(resp)["id"].(string))
	s.Require().NoError(err)

	if staff {
		s.Require().NoError(s.DB.Exec("UPDATE users SET is_staff = TRUE WHERE id = ?", userID).Error)
	}

	resp = s.MakeRequest(fiber.MethodPost, "/auth/login",
		fmt.Sprintf(`{"email":%q,"password":"password123"}`, email), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint:errcheck
	var envelope common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	token, _ := envelope.Data.(map[string]any)["token"].(string)
	s.Require().NotEmpty(token)
	return userID, token
}
