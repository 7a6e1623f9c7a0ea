package testimonial_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	testimonialrepo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	testimonialsvc "github.com/amirasaad/causehive/pkg/service/testimonial"
	"github.com/amirasaad/causehive/webapi/testutils"
	testimonialweb "github.com/amirasaad/causehive/webapi/testimonial"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TestimonialRoutesSuite struct {
	suite.Suite
	app       *fiber.App
	cfg       *config.App
	repo      *mocks.MockTestimonialRepository
	causes    *mocks.MockCauseRepository
	donations *mocks.MockDonationRepository
	userID    uuid.UUID
}

func (s *TestimonialRoutesSuite) SetupTest() {
	s.cfg = testutils.Config()
	s.repo = mocks.NewMockTestimonialRepository(s.T())
	s.causes = mocks.NewMockCauseRepository(s.T())
	s.donations = mocks.NewMockDonationRepository(s.T())
	uow := mocks.NewMockUnitOfWork(s.T()).Passthrough().
		Provide((*testimonialrepo.Repository)(nil), s.repo).
		Provide((*causerepo.Repository)(nil), s.causes).
		Provide((*donationrepo.Repository)(nil), s.donations)
	s.app = testutils.NewApp()
	testimonialweb.Routes(s.app, testimonialsvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil))), s.cfg)
	s.userID = uuid.New()
}

func (s *TestimonialRoutesSuite) token(userID uuid.UUID, staff bool) string {
	return testutils.Token(s.T(), s.cfg, userID, staff)
}

func (s *TestimonialRoutesSuite) testimonial(owner uuid.UUID) *testimonial.Testimonial {
	t, err := testimonial.New(uuid.New(), owner, 4, "Great work", false)
	s.Require().NoError(err)
	return t
}

func (s *TestimonialRoutesSuite) TestCreateVerifiedDonation() {
	c := &cause.Cause{ID: uuid.New(), Status: cause.StatusOngoing}
	s.causes.On("Get", mock.Anything, c.ID).Return(c, nil).Once()
	s.repo.On("Exists", mock.Anything, c.ID, s.userID).Return(false, nil).Once()
	s.donations.On("HasCompleted", mock.Anything, s.userID, c.ID).Return(true, nil).Once()
	s.repo.On("Create", mock.Anything, mock.AnythingOfType("*testimonial.Testimonial")).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/testimonials",
		`{"cause_id":"`+c.ID.String()+`","rating":5,"review_text":"  Helped my village  "}`, s.token(s.userID, false))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal(true, data["is_verified_donation"])
	s.Equal("Helped my village", data["review_text"])
}

func (s *TestimonialRoutesSuite) TestCreateRejections() {
	token := s.token(s.userID, false)
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/testimonials",
		`{"cause_id":"`+uuid.NewString()+`","rating":6,"review_text":"x"}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	hidden := &cause.Cause{ID: uuid.New(), Status: cause.StatusUnderReview}
	s.causes.On("Get", mock.Anything, hidden.ID).Return(hidden, nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/testimonials",
		`{"cause_id":"`+hidden.ID.String()+`","rating":3,"review_text":"ok"}`, token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	live := &cause.Cause{ID: uuid.New(), Status: cause.StatusCompleted}
	s.causes.On("Get", mock.Anything, live.ID).Return(live, nil).Once()
	s.repo.On("Exists", mock.Anything, live.ID, s.userID).Return(true, nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/testimonials",
		`{"cause_id":"`+live.ID.String()+`","rating":3,"review_text":"again"}`, token)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestUpdateAndDeleteOwnership() {
	t := s.testimonial(s.userID)
	s.repo.On("Get", mock.Anything, t.ID).Return(t, nil)

	resp := testutils.MakeRequestWithApp(s.app, "PATCH", "/testimonials/"+t.ID.String(),
		`{"rating":2,"review_text":"changed"}`, s.token(uuid.New(), false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)

	s.repo.On("Update", mock.Anything, t).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "PATCH", "/testimonials/"+t.ID.String(),
		`{"rating":2,"review_text":"changed"}`, s.token(s.userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(2, testutils.DecodeData(s.T(), resp)["rating"])

	s.repo.On("Delete", mock.Anything, t.ID).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "DELETE", "/testimonials/"+t.ID.String(), "", s.token(uuid.New(), true))
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestToggleLike() {
	t := s.testimonial(uuid.New())
	s.repo.On("Get", mock.Anything, t.ID).Return(t, nil).Twice()
	s.repo.On("ToggleLike", mock.Anything, t.ID, s.userID).Return(true, int64(1), nil).Once()
	s.repo.On("ToggleLike", mock.Anything, t.ID, s.userID).Return(false, int64(0), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/like", "", s.token(s.userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal(true, data["liked"])
	s.EqualValues(1, data["likes_count"])

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/like", "", s.token(s.userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(false, testutils.DecodeData(s.T(), resp)["liked"])
}

func (s *TestimonialRoutesSuite) TestLikeUnapproved() {
	t := s.testimonial(uuid.New())
	t.IsApproved = false
	s.repo.On("Get", mock.Anything, t.ID).Return(t, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/like", "", s.token(s.userID, false))
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestReport() {
	t := s.testimonial(uuid.New())
	token := s.token(s.userID, false)

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/report",
		`{"reason":"boring"}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.repo.On("Get", mock.Anything, t.ID).Return(t, nil)
	s.repo.On("ReportExists", mock.Anything, t.ID, s.userID).Return(false, nil).Once()
	s.repo.On("CreateReport", mock.Anything, mock.AnythingOfType("*testimonial.Report")).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/report",
		`{"reason":"spam","description":"link farm"}`, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal("spam", testutils.DecodeData(s.T(), resp)["reason"])

	s.repo.On("ReportExists", mock.Anything, t.ID, s.userID).Return(true, nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/testimonials/"+t.ID.String()+"/report",
		`{"reason":"spam"}`, token)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestListForCauseNormalisesSort() {
	causeID := uuid.New()
	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f testimonialrepo.Filter) bool {
		return *f.CauseID == causeID && *f.Approved && f.FeaturedOnly && f.Sort == testimonialrepo.SortNewest
	}), mock.Anything).Return([]*testimonial.Testimonial{}, int64(0), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET",
		"/causes/"+causeID.String()+"/testimonials?sort=random&featured=true", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestStats() {
	causeID := uuid.New()
	s.repo.On("Stats", mock.Anything, causeID).Return(&testimonial.Stats{
		AverageRating: 4.5,
		Distribution:  map[int]int64{1: 0, 2: 0, 3: 0, 4: 1, 5: 1},
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/causes/"+causeID.String()+"/testimonials/stats", "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(4.5, data["average_rating"])
	s.EqualValues(1, data["rating_distribution"].(map[string]any)["5"])
}

func (s *TestimonialRoutesSuite) TestModeration() {
	staff := s.token(uuid.New(), true)
	t := s.testimonial(uuid.New())
	s.repo.On("Get", mock.Anything, t.ID).Return(t, nil).Once()
	s.repo.On("Update", mock.Anything, t).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "PATCH", "/admin/testimonials/"+t.ID.String(),
		`{"is_approved":false,"moderation_notes":" spam "}`, staff)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal(false, data["is_approved"])
	s.Equal("spam", data["moderation_notes"])

	reported := true
	s.repo.On("List", mock.Anything, testimonialrepo.Filter{Reported: &reported, Sort: testimonialrepo.SortNewest}, mock.Anything).
		Return([]*testimonial.Testimonial{t}, int64(1), nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/testimonials?reported=true", "", staff)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/testimonials", "", s.token(s.userID, false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *TestimonialRoutesSuite) TestReports() {
	staff := s.token(uuid.New(), true)
	r, err := testimonial.NewReport(uuid.New(), s.userID, testimonial.ReasonFake, "")
	s.Require().NoError(err)
	unresolved := false
	s.repo.On("ListReports", mock.Anything, &unresolved, mock.Anything).
		Return([]*testimonial.Report{r}, int64(1), nil).Once()
	s.repo.On("GetReport", mock.Anything, r.ID).Return(r, nil).Once()
	s.repo.On("UpdateReport", mock.Anything, r).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/testimonials/reports?resolved=false", "", staff)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(1, testutils.DecodeData(s.T(), resp)["count"])

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/admin/testimonials/reports/"+r.ID.String()+"/resolve", "", staff)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(true, testutils.DecodeData(s.T(), resp)["is_resolved"])
}

func TestTestimonialRoutesSuite(t *testing.T) {
	suite.Run(t, new(TestimonialRoutesSuite))
}
