package withdrawal_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/causehive/internal/fixtures/mocks"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	withdrawalrepo "github.com/amirasaad/causehive/pkg/repository/withdrawal"
	withdrawalsvc "github.com/amirasaad/causehive/pkg/service/withdrawal"
	"github.com/amirasaad/causehive/webapi/testutils"
	withdrawalweb "github.com/amirasaad/causehive/webapi/withdrawal"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WithdrawalRoutesSuite struct {
	suite.Suite
	app         *fiber.App
	cfg         *config.App
	causes      *mocks.MockCauseRepository
	users       *mocks.MockUserRepository
	withdrawals *mocks.MockWithdrawalRepository
	gateway     *mocks.MockGateway
	organizer   uuid.UUID
	cause       *cause.Cause
}

func (s *WithdrawalRoutesSuite) SetupTest() {
	s.cfg = testutils.Config()
	s.causes = mocks.NewMockCauseRepository(s.T())
	s.users = mocks.NewMockUserRepository(s.T())
	s.withdrawals = mocks.NewMockWithdrawalRepository(s.T())
	s.gateway = mocks.NewMockGateway(s.T())
	bus := mocks.NewMockBus(s.T())
	bus.On("Emit", mock.Anything, mock.Anything).Return(nil).Maybe()
	uow := mocks.NewMockUnitOfWork(s.T()).Passthrough().
		Provide((*causerepo.Repository)(nil), s.causes).
		Provide((*userrepo.Repository)(nil), s.users).
		Provide((*withdrawalrepo.Repository)(nil), s.withdrawals)
	svc := withdrawalsvc.New(uow, s.gateway, bus, 0.01, "GHS", slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.app = testutils.NewApp()
	withdrawalweb.Routes(s.app, svc, s.cfg)

	s.organizer = uuid.New()
	s.cause = &cause.Cause{
		ID:            uuid.New(),
		OrganizerID:   s.organizer,
		Status:        cause.StatusOngoing,
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(500),
	}
}

func (s *WithdrawalRoutesSuite) token(userID uuid.UUID, staff bool) string {
	return testutils.Token(s.T(), s.cfg, userID, staff)
}

func (s *WithdrawalRoutesSuite) request(status withdrawal.Status) *withdrawal.Request {
	w, err := withdrawal.New(s.organizer, s.cause.ID, decimal.NewFromInt(100), 0.01, "GHS",
		user.WithdrawalMethodMobileMoney, map[string]string{"provider": "MTN"})
	s.Require().NoError(err)
	w.Status = status
	return w
}

func (s *WithdrawalRoutesSuite) TestRequest() {
	s.causes.On("GetForUpdate", mock.Anything, s.cause.ID).Return(s.cause, nil).Once()
	s.withdrawals.On("ReservedAmount", mock.Anything, s.cause.ID).Return(decimal.NewFromInt(100), nil).Once()
	s.users.On("GetProfile", mock.Anything, s.organizer).Return(&user.Profile{
		UserID:              s.organizer,
		WithdrawalMethod:    user.WithdrawalMethodMobileMoney,
		MobileMoneyProvider: "MTN",
		MobileMoneyNumber:   "0241234567",
	}, nil).Once()
	s.withdrawals.On("Create", mock.Anything, mock.AnythingOfType("*withdrawal.Request")).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals",
		`{"cause_id":"`+s.cause.ID.String()+`","amount":200}`, s.token(s.organizer, false))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal("200", data["amount"])
	s.Equal("2", data["fee"])
	s.Equal("198", data["net_amount"])
	s.Equal("processing", data["status"])
	s.Equal("mobile_money", data["payment_method"])
}

func (s *WithdrawalRoutesSuite) TestRequestInsufficientFunds() {
	s.causes.On("GetForUpdate", mock.Anything, s.cause.ID).Return(s.cause, nil).Once()
	s.withdrawals.On("ReservedAmount", mock.Anything, s.cause.ID).Return(decimal.NewFromInt(450), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals",
		`{"cause_id":"`+s.cause.ID.String()+`","amount":"100"}`, s.token(s.organizer, false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestRequestNotOrganizer() {
	s.causes.On("GetForUpdate", mock.Anything, s.cause.ID).Return(s.cause, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals",
		`{"cause_id":"`+s.cause.ID.String()+`","amount":10}`, s.token(uuid.New(), false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestRequestValidation() {
	token := s.token(s.organizer, false)
	resp := testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals",
		`{"cause_id":"`+s.cause.ID.String()+`","amount":10,"payment_method":"cheque"}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals",
		`{"cause_id":"`+s.cause.ID.String()+`","amount":-5}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestGetAndCancel() {
	w := s.request(withdrawal.StatusPending)
	s.withdrawals.On("Get", mock.Anything, w.ID).Return(w, nil).Once()
	s.withdrawals.On("GetForUpdate", mock.Anything, w.ID).Return(w, nil).Twice()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/withdrawals/"+w.ID.String(), "", s.token(uuid.New(), false))
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals/"+w.ID.String()+"/cancel", "", s.token(uuid.New(), false))
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	s.withdrawals.On("Update", mock.Anything, w).Return(nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals/"+w.ID.String()+"/cancel", "", s.token(s.organizer, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("cancelled", testutils.DecodeData(s.T(), resp)["status"])
}

func (s *WithdrawalRoutesSuite) TestCancelInFlight() {
	w := s.request(withdrawal.StatusProcessing)
	w.TransactionID = "TRF_1"
	s.withdrawals.On("GetForUpdate", mock.Anything, w.ID).Return(w, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals/"+w.ID.String()+"/cancel", "", s.token(s.organizer, false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	queued := s.request(withdrawal.StatusProcessing)
	s.withdrawals.On("GetForUpdate", mock.Anything, queued.ID).Return(queued, nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/withdrawals/"+queued.ID.String()+"/cancel", "", s.token(s.organizer, false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal(withdrawal.StatusProcessing, queued.Status)
}

func (s *WithdrawalRoutesSuite) TestListMine() {
	s.withdrawals.On("List", mock.Anything, mock.MatchedBy(func(f withdrawalrepo.Filter) bool {
		return f.UserID != nil && *f.UserID == s.organizer && f.Status == withdrawal.StatusFailed
	}), mock.Anything).Return([]*withdrawal.Request{s.request(withdrawal.StatusFailed)}, int64(1), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/withdrawals?status=failed", "", s.token(s.organizer, false))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(1, testutils.DecodeData(s.T(), resp)["count"])

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/withdrawals?status=lost", "", s.token(s.organizer, false))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestAdminRetry() {
	staff := s.token(uuid.New(), true)
	failed := s.request(withdrawal.StatusFailed)
	failed.TransactionID = "TRF_OLD"
	s.withdrawals.On("GetForUpdate", mock.Anything, failed.ID).Return(failed, nil).Once()
	s.causes.On("GetForUpdate", mock.Anything, s.cause.ID).Return(s.cause, nil).Once()
	s.withdrawals.On("ReservedAmount", mock.Anything, s.cause.ID).Return(decimal.NewFromInt(400), nil).Once()
	s.withdrawals.On("Update", mock.Anything, failed).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/admin/withdrawals/"+failed.ID.String()+"/retry", "", staff)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.Equal("processing", data["status"])
	s.Nil(data["transaction_id"])

	done := s.request(withdrawal.StatusCompleted)
	s.withdrawals.On("GetForUpdate", mock.Anything, done.ID).Return(done, nil).Once()
	resp = testutils.MakeRequestWithApp(s.app, "POST", "/admin/withdrawals/"+done.ID.String()+"/retry", "", staff)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestAdminRetryInsufficientFunds() {
	failed := s.request(withdrawal.StatusFailed)
	s.withdrawals.On("GetForUpdate", mock.Anything, failed.ID).Return(failed, nil).Once()
	s.causes.On("GetForUpdate", mock.Anything, s.cause.ID).Return(s.cause, nil).Once()
	s.withdrawals.On("ReservedAmount", mock.Anything, s.cause.ID).Return(decimal.NewFromInt(450), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/admin/withdrawals/"+failed.ID.String()+"/retry", "",
		s.token(uuid.New(), true))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WithdrawalRoutesSuite) TestAdminVerify() {
	w := s.request(withdrawal.StatusProcessing)
	w.TransactionID = "TRF_1"
	s.withdrawals.On("Get", mock.Anything, w.ID).Return(w, nil).Once()
	s.withdrawals.On("GetForUpdate", mock.Anything, w.ID).Return(w, nil).Once()
	s.gateway.On("VerifyPayout", mock.Anything, "TRF_1").
		Return(&provider.VerifyPayoutResponse{Reference: "TRF_1", Status: provider.PayoutSuccess}, nil).Once()
	s.withdrawals.On("Update", mock.Anything, w).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/admin/withdrawals/"+w.ID.String()+"/verify", "",
		s.token(uuid.New(), true))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("completed", testutils.DecodeData(s.T(), resp)["status"])
}

func (s *WithdrawalRoutesSuite) TestAdminVerifyPending() {
	w := s.request(withdrawal.StatusProcessing)
	w.TransactionID = "TRF_2"
	s.withdrawals.On("ListInFlight", mock.Anything, 10).Return([]*withdrawal.Request{w}, nil).Once()
	s.gateway.On("VerifyPayout", mock.Anything, "TRF_2").
		Return(&provider.VerifyPayoutResponse{Reference: "TRF_2", Status: provider.PayoutFailed, Reason: "bad account"}, nil).Once()
	s.withdrawals.On("GetForUpdate", mock.Anything, w.ID).Return(w, nil).Once()
	s.withdrawals.On("Update", mock.Anything, w).Return(nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "POST", "/admin/withdrawals/verify-pending?limit=10", "",
		s.token(uuid.New(), true))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutils.DecodeData(s.T(), resp)
	s.EqualValues(1, data["checked"])
	s.EqualValues(1, data["failed"])
	s.Equal("bad account", w.FailureReason)
}

func (s *WithdrawalRoutesSuite) TestAdminStatistics() {
	s.withdrawals.On("Stats", mock.Anything).Return(&dto.WithdrawalStats{
		TotalRequests: 4,
		Completed:     3,
		TotalAmount:   decimal.NewFromInt(400),
		AverageAmount: decimal.NewFromInt(100),
		SuccessRate:   75,
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, "GET", "/admin/withdrawals/statistics", "", s.token(uuid.New(), true))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(75, testutils.DecodeData(s.T(), resp)["success_rate"])

	resp = testutils.MakeRequestWithApp(s.app, "GET", "/admin/withdrawals/statistics", "", s.token(s.organizer, false))
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func TestWithdrawalRoutesSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalRoutesSuite))
}
