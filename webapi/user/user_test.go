package user_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/amirasaad/causehive/infra/cache"
	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	usersvc "github.com/amirasaad/causehive/pkg/service/user"
	"github.com/amirasaad/causehive/pkg/utils"
	userweb "github.com/amirasaad/causehive/webapi/user"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserRoutesTestSuite struct {
	suite.Suite
	cfg  *config.App
	repo *mocks.MockUserRepository
	gw   *mocks.MockGateway
	app  *fiber.App
	me   *user.User
}

func (s *UserRoutesTestSuite) SetupSuite() {
	utils.PasswordCost = bcrypt.MinCost
}

func (s *UserRoutesTestSuite) SetupTest() {
	t := s.T()
	s.cfg = testutils.Config()
	s.repo = mocks.NewMockUserRepository(t)
	s.gw = mocks.NewMockGateway(t)
	uow := mocks.NewMockUnitOfWork(t).Passthrough().Provide((*userrepo.Repository)(nil), s.repo)
	c := infracache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	svc := usersvc.New(uow, s.gw, c, s.cfg.Cache, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.app = testutils.NewApp()
	userweb.Routes(s.app, svc, s.cfg)

	var err error
	s.me, err = user.New("ama@example.com", "password123", "Ama", "Mensah")
	s.Require().NoError(err)
}

func (s *UserRoutesTestSuite) token(staff bool) string {
	return testutils.Token(s.T(), s.cfg, s.me.ID, staff)
}

func (s *UserRoutesTestSuite) TestGetMe() {
	s.repo.On("Get", mock.Anything, s.me.ID).Return(s.me, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/user/me", "", s.token(false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal("ama@example.com", data["email"])
	s.Equal("Ama Mensah", data["full_name"])
	s.NotContains(data, "password")
}

func (s *UserRoutesTestSuite) TestGetMe_Unauthenticated() {
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/user/me", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *UserRoutesTestSuite) TestUpdateMe() {
	s.repo.On("Get", mock.Anything, s.me.ID).Return(s.me, nil).Once()
	s.repo.On("Update", mock.Anything, s.me).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "PATCH", "/user/me", `{"first_name":"Akosua"}`, s.token(false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("Akosua", testutils.DecodeData(s.T(), resp)["first_name"])
}

func (s *UserRoutesTestSuite) TestDeleteMeVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{desc: "invalid body", body: `{"pass":123}`, wantStatus: fiber.StatusBadRequest},
		{desc: "wrong password", body: `{"password":"wrong-pass"}`, wantStatus: fiber.StatusUnauthorized},
		{desc: "success", body: `{"password":"password123"}`, wantStatus: fiber.StatusNoContent},
	}
	s.repo.On("Get", mock.Anything, s.me.ID).Return(s.me, nil)
	s.repo.On("Delete", mock.Anything, s.me.ID).Return(nil).Once()

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := testutils.MakeRequestWithApp(s.app, "DELETE", "/user/me", tc.body, s.token(false))
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserRoutesTestSuite) TestUpdateProfile() {
	s.repo.On("GetProfile", mock.Anything, s.me.ID).Return(&user.Profile{UserID: s.me.ID}, nil).Once()
	s.repo.On("SaveProfile", mock.Anything, mock.AnythingOfType("*user.Profile")).Return(nil).Once()

	body := `{"withdrawal_method":"mobile_money","mobile_money_provider":"MTN","mobile_money_number":"0241234567"}`
	resp := testutils.MakeRequestWithApp(s.app, "PATCH", "/user/profile", body, s.token(false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal("mobile_money", data["withdrawal_method"])
	s.Equal(true, data["has_complete_withdrawal_info"])
}

func (s *UserRoutesTestSuite) TestUpdateProfile_InvalidMethod() {
	resp := testutils.MakeRequestWithApp(s.app, "PATCH", "/user/profile", `{"withdrawal_method":"cash"}`, s.token(false))
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *UserRoutesTestSuite) TestListBanks() {
	banks := []payment.Bank{{Name: "GCB Bank", Code: "GCB", Currency: "GHS"}}
	s.gw.On("ListBanks", mock.Anything, "GHS", mock.Anything).Return(banks, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/banks?country=ghana", "", s.token(false))
	s.Equal(fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/banks?country=atlantis", "", s.token(false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}

func (s *UserRoutesTestSuite) TestAdminRoutes() {
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/users", "", s.token(false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f dto.UserFilter) bool {
		return f.Search == "ama" && f.IsActive != nil && *f.IsActive
	}), dto.PageRequest{Page: 1, PageSize: dto.DefaultPageSize}).Return([]*user.User{s.me}, int64(1), nil).Once()

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/users?search=ama&is_active=true", "", s.token(true))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(1, data["count"])

	other := uuid.New()
	s.repo.On("Get", mock.Anything, other).Return(nil, user.ErrUserNotFound).Once()
	resp = testutils.MakeRequestWithApp(s.app, "PATCH", "/admin/users/"+other.String()+"/status", `{"is_active":false}`, s.token(true))
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}

func TestUserRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(UserRoutesTestSuite))
}

func TestToUserDTO(t *testing.T) {
	u, err := user.New("kofi@example.com", "password123", "Kofi", "")
	require.NoError(t, err)
	got := userweb.ToUserDTO(u)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Kofi", got.FullName)
}
