package webapi_test

import (
	"fmt"
	"testing"

	"github.com/amirasaad/causehive/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type DonationFlowSuite struct {
	testutils.E2ETestSuite
}

func (s *DonationFlowSuite) TestDonationCreditsCause() {
	_, staffToken := s.SignupAndLogin(true)
	organizerID, organizerToken := s.SignupAndLogin(false)

	resp := s.MakeRequest(fiber.MethodPost, "/admin/categories", `{"name":"Water"}`, staffToken)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	categoryID := s.Data(resp)["id"].(string)

	resp = s.MakeRequest(fiber.MethodPost, "/causes", fmt.Sprintf(
		`{"name":"Borehole for Tamale","description":"Clean water","category_id":%q,"target_amount":"200"}`,
		categoryID), organizerToken)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	cause := s.Data(resp)
	causeID := cause["id"].(string)
	s.Equal(organizerID.String(), cause["organizer_id"])
	s.Equal("under_review", cause["status"])

	resp = s.MakeRequest(fiber.MethodGet, "/causes/"+causeID, "", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, "/admin/causes/"+causeID+"/approve", "", staffToken)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, "/causes/"+causeID+"/donate",
		`{"amount":"50","email":"donor@example.com"}`, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	reference := s.Data(resp)["reference"].(string)
	s.NotEmpty(reference)

	resp = s.MakeRequest(fiber.MethodGet, "/payments/verify/"+reference, "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("completed", s.Data(resp)["status"])

	resp = s.MakeRequest(fiber.MethodGet, "/causes/"+causeID, "", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	cause = s.Data(resp)
	s.Equal("50", cause["current_amount"])
	s.Equal("25", cause["progress_percentage"])

	resp = s.MakeRequest(fiber.MethodGet, "/admin/donations?cause="+causeID, "", staffToken)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(1, s.Data(resp)["count"])
}

func (s *DonationFlowSuite) TestLoginRejectsWrongPassword() {
	_, token := s.SignupAndLogin(false)
	s.NotEmpty(token)

	resp := s.MakeRequest(fiber.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, "/user/me", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func TestDonationFlowSuite(t *testing.T) {
	suite.Run(t, new(DonationFlowSuite))
}
