package auth_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	authsvc "github.com/amirasaad/causehive/pkg/service/auth"
	"github.com/amirasaad/causehive/pkg/utils"
	authweb "github.com/amirasaad/causehive/webapi/auth"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthTestSuite struct {
	suite.Suite
	cfg    *config.App
	repo   *mocks.MockUserRepository
	bus    *mocks.MockBus
	mailer *mocks.MockMailer
	app    *fiber.App
}

func (s *AuthTestSuite) SetupSuite() {
	utils.PasswordCost = bcrypt.MinCost
}

func (s *AuthTestSuite) SetupTest() {
	t := s.T()
	s.cfg = testutils.Config()
	s.cfg.Auth.PasswordResetURL = "https://causehive.test/reset"
	s.repo = mocks.NewMockUserRepository(t)
	s.bus = mocks.NewMockBus(t)
	s.mailer = mocks.NewMockMailer(t)
	uow := mocks.NewMockUnitOfWork(t).Passthrough().Provide((*userrepo.Repository)(nil), s.repo)
	svc := authsvc.New(uow, s.bus, s.mailer, s.cfg.Auth, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.app = testutils.NewApp()
	authweb.Routes(s.app, svc, s.cfg)
}

func (s *AuthTestSuite) TestSignupVariants() {
	s.repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil).Once()
	s.repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil).Once()
	s.repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once()
	s.repo.On("SaveProfile", mock.Anything, mock.AnythingOfType("*user.Profile")).Return(nil).Once()
	s.bus.On("Emit", mock.Anything, mock.AnythingOfType("*events.UserRegistered")).Return(nil).Once()

	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"email":"new@example.com","password":"password123","first_name":"Ama"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "invalid body",
			body:       `{"email":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "short password",
			body:       `{"email":"short@example.com","password":"pw"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "email taken",
			body:       `{"email":"taken@example.com","password":"password123"}`,
			wantStatus: fiber.StatusConflict,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/signup", tc.body, "")
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *AuthTestSuite) TestLoginRoute_Success() {
	u, err := user.New("ama@example.com", "password123", "Ama", "")
	s.Require().NoError(err)
	s.repo.On("GetByEmail", mock.Anything, "ama@example.com").Return(u, nil).Once()
	s.repo.On("Update", mock.Anything, u).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/login",
		`{"email":"ama@example.com","password":"password123"}`, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.NotEmpty(data["token"])
}

func (s *AuthTestSuite) TestLoginRoute_Unauthorized() {
	s.repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, user.ErrUserNotFound).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/login",
		`{"email":"ghost@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_Inactive() {
	u, err := user.New("off@example.com", "password123", "", "")
	s.Require().NoError(err)
	u.IsActive = false
	s.repo.On("GetByEmail", mock.Anything, "off@example.com").Return(u, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/login",
		`{"email":"off@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_BadRequest() {
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/login", `{"email":123}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogout() {
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/logout", "",
		testutils.Token(s.T(), s.cfg, uuid.New(), false))
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *AuthTestSuite) TestPasswordReset_UnknownEmailStillOK() {
	s.repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, user.ErrUserNotFound).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/password-reset", `{"email":"ghost@example.com"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *AuthTestSuite) TestPasswordResetConfirm_BadToken() {
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/auth/password-reset/confirm",
		`{"token":"garbage","new_password":"password456"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

