package cause_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	causesvc "github.com/amirasaad/causehive/pkg/service/cause"
	causeweb "github.com/amirasaad/causehive/webapi/cause"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CauseRoutesSuite struct {
	suite.Suite
	app  *fiber.App
	cfg  *config.App
	repo *mocks.MockCauseRepository
}

func (s *CauseRoutesSuite) SetupTest() {
	s.cfg = testutils.Config()
	s.repo = mocks.NewMockCauseRepository(s.T())
	bus := mocks.NewMockBus(s.T())
	bus.On("Emit", mock.Anything, mock.Anything).Return(nil).Maybe()
	uow := mocks.NewMockUnitOfWork(s.T()).Passthrough().
		Provide((*causerepo.Repository)(nil), s.repo)
	s.app = testutils.NewApp()
	causeweb.Routes(s.app, causesvc.New(uow, bus, slog.New(slog.NewTextHandler(io.Discard, nil))), s.cfg)
}

func (s *CauseRoutesSuite) token(userID uuid.UUID, staff bool) string {
	return testutils.Token(s.T(), s.cfg, userID, staff)
}

func newCause(organizer uuid.UUID, status cause.Status) *cause.Cause {
	return &cause.Cause{
		ID:            uuid.New(),
		Name:          "Clean Water",
		Slug:          "clean-water",
		OrganizerID:   organizer,
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(250),
		Status:        status,
	}
}

func (s *CauseRoutesSuite) TestListPublicExcludesHidden() {
	c := newCause(uuid.New(), cause.StatusOngoing)
	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f causerepo.Filter) bool {
		return len(f.ExcludeStatuses) == 2 && f.Search == "water"
	}), mock.Anything).Return([]*cause.Cause{c}, int64(1), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/causes?search=water", "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(1, data["count"])
	first := data["results"].([]any)[0].(map[string]any)
	s.Equal("25", first["progress_percentage"])
	s.Equal("ongoing", first["status"])
}

func (s *CauseRoutesSuite) TestListPublicInvalidCategory() {
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/causes?category=nope", "", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestGetHiddenCause() {
	organizer := uuid.New()
	c := newCause(organizer, cause.StatusUnderReview)
	s.repo.On("Get", mock.Anything, c.ID).Return(c, nil)

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/causes/"+c.ID.String(), "", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/causes/"+c.ID.String(), "", s.token(uuid.New(), false))
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/causes/"+c.ID.String(), "", s.token(organizer, false))
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/causes/"+c.ID.String(), "", s.token(uuid.New(), true))
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestCreate() {
	userID := uuid.New()
	s.repo.On("ExistsByName", mock.Anything, "Clean Water").Return(false, nil).Once()
	s.repo.On("Create", mock.Anything, mock.AnythingOfType("*cause.Cause")).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/causes",
		`{"name":"Clean Water","description":"Wells","target_amount":"1000"}`, s.token(userID, false))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal("under_review", data["status"])
	s.Equal(userID.String(), data["organizer_id"])
	s.Equal("clean-water", data["slug"])
}

func (s *CauseRoutesSuite) TestCreateValidation() {
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/causes", `{"description":"x"}`, s.token(uuid.New(), false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/causes",
		`{"name":"A","description":"x","target_amount":0}`, s.token(uuid.New(), false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/causes", `{"name":"A"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestCreateDuplicateName() {
	s.repo.On("ExistsByName", mock.Anything, "Clean Water").Return(true, nil).Once()
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/causes",
		`{"name":"Clean Water","description":"Wells","target_amount":50}`, s.token(uuid.New(), false))
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestListMine() {
	userID := uuid.New()
	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f causerepo.Filter) bool {
		return f.OrganizerID != nil && *f.OrganizerID == userID
	}), mock.Anything).Return([]*cause.Cause{newCause(userID, cause.StatusRejected)}, int64(1), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/causes/mine", "", s.token(userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(1, testutils.DecodeData(s.T(), resp)["count"])
}

func (s *CauseRoutesSuite) TestDelete() {
	organizer := uuid.New()
	c := newCause(organizer, cause.StatusOngoing)
	s.repo.On("Get", mock.Anything, c.ID).Return(c, nil)

	resp := testutils.MakeRequestWithApp(s.app, "DELETE", "/causes/"+c.ID.String(), "", s.token(uuid.New(), false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)

	s.repo.On("Delete", mock.Anything, c.ID).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "DELETE", "/causes/"+c.ID.String(), "", s.token(organizer, false))
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestAdminRequiresStaff() {
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/causes", "", s.token(uuid.New(), false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestAdminListStatus() {
	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f causerepo.Filter) bool {
		return len(f.Statuses) == 1 && f.Statuses[0] == cause.StatusUnderReview
	}), mock.Anything).Return([]*cause.Cause{}, int64(0), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/causes?status=under_review", "", s.token(uuid.New(), true))
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/causes?status=bogus", "", s.token(uuid.New(), true))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *CauseRoutesSuite) TestApproveAndReject() {
	c := newCause(uuid.New(), cause.StatusUnderReview)
	s.repo.On("Get", mock.Anything, c.ID).Return(c, nil)
	s.repo.On("Update", mock.Anything, c).Return(nil)

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/admin/causes/"+c.ID.String()+"/reject", `{}`, s.token(uuid.New(), true))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/admin/causes/"+c.ID.String()+"/approve", "", s.token(uuid.New(), true))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("ongoing", testutils.DecodeData(s.T(), resp)["status"])

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/admin/causes/"+c.ID.String()+"/reject",
		`{"reason":"duplicate"}`, s.token(uuid.New(), true))
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func TestCauseRoutesSuite(t *testing.T) {
	suite.Run(t, new(CauseRoutesSuite))
}

func TestToCauseDTO(t *testing.T) {
	c := newCause(uuid.New(), cause.StatusCompleted)
	c.CurrentAmount = decimal.NewFromInt(5000)
	out := causeweb.ToCauseDTO(c)
	require.NotNil(t, out)
	assert.True(t, out.ProgressPercentage.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "completed", out.Status)
}
