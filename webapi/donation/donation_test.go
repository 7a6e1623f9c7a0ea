package donation_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/dto"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	donationsvc "github.com/amirasaad/causehive/pkg/service/donation"
	donationweb "github.com/amirasaad/causehive/webapi/donation"
	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DonationRoutesSuite struct {
	suite.Suite
	app  *fiber.App
	cfg  *config.App
	repo *mocks.MockDonationRepository
}

func (s *DonationRoutesSuite) SetupTest() {
	s.cfg = testutils.Config()
	s.repo = mocks.NewMockDonationRepository(s.T())
	uow := mocks.NewMockUnitOfWork(s.T()).Passthrough().Provide((*donationrepo.Repository)(nil), s.repo)
	s.app = testutils.NewApp()
	donationweb.Routes(s.app, donationsvc.New(uow, slog.New(slog.NewTextHandler(io.Discard, nil))), s.cfg)
}

func (s *DonationRoutesSuite) donation(donor *uuid.UUID, recipient uuid.UUID) *donation.Donation {
	d, err := donation.New(donor, uuid.New(), recipient, decimal.NewFromInt(20), "GHS", "donor@example.com")
	s.Require().NoError(err)
	return d
}

func (s *DonationRoutesSuite) TestListMineForcesUser() {
	userID := uuid.New()
	s.repo.On("List", mock.Anything, mock.MatchedBy(func(f donationrepo.Filter) bool {
		return f.UserID != nil && *f.UserID == userID && f.Status == donation.StatusCompleted && f.Ordering == "-amount"
	}), mock.Anything).Return([]*donation.Donation{s.donation(&userID, uuid.New())}, int64(1), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET",
		"/donations?status=completed&ordering=-amount&user="+uuid.NewString(), "",
		testutils.Token(s.T(), s.cfg, userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(1, data["count"])
	s.Equal("20", data["results"].([]any)[0].(map[string]any)["amount"])
}

func (s *DonationRoutesSuite) TestListInvalidFilter() {
	token := testutils.Token(s.T(), s.cfg, uuid.New(), false)
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/donations?status=refunded", "", token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/donations?cause=xyz", "", token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *DonationRoutesSuite) TestGetVisibility() {
	donor, recipient := uuid.New(), uuid.New()
	d := s.donation(&donor, recipient)
	s.repo.On("Get", mock.Anything, d.ID).Return(d, nil)

	for _, tc := range []struct {
		user   uuid.UUID
		staff  bool
		status int
	}{
		{donor, false, fiber.StatusOK},
		{recipient, false, fiber.StatusOK},
		{uuid.New(), true, fiber.StatusOK},
		{uuid.New(), false, fiber.StatusNotFound},
	} {
		resp := testutils.MakeRequestWithApp(s.app, "GET", "/donations/"+d.ID.String(), "",
			testutils.Token(s.T(), s.cfg, tc.user, tc.staff))
		s.Equal(tc.status, resp.StatusCode)
	}
}

func (s *DonationRoutesSuite) TestStatistics() {
	userID := uuid.New()
	s.repo.On("Stats", mock.Anything, donationrepo.Filter{UserID: &userID}).Return(&dto.DonationStats{
		TotalDonations:  3,
		TotalAmount:     decimal.NewFromInt(75),
		CausesSupported: 2,
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/donations/statistics", "",
		testutils.Token(s.T(), s.cfg, userID, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(3, data["total_donations"])
	s.Equal("75", data["total_amount"])
}

func (s *DonationRoutesSuite) TestAdminRoutes() {
	causeID := uuid.New()
	s.repo.On("Stats", mock.Anything, donationrepo.Filter{CauseID: &causeID}).
		Return(&dto.DonationStats{TotalAmount: decimal.Zero}, nil).Once()
	s.repo.On("List", mock.Anything, donationrepo.Filter{Search: "bob"}, mock.Anything).
		Return([]*donation.Donation{}, int64(0), nil).Once()

	staff := testutils.Token(s.T(), s.cfg, uuid.New(), true)
	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/donations/statistics?cause="+causeID.String(), "", staff)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/donations?search=bob", "", staff)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/donations", "",
		testutils.Token(s.T(), s.cfg, uuid.New(), false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func TestDonationRoutesSuite(t *testing.T) {
	suite.Run(t, new(DonationRoutesSuite))
}
