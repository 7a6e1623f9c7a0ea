package donation

import (
	"time"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	donationsvc "github.com/amirasaad/causehive/pkg/service/donation"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DonationDTO struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	CauseID     uuid.UUID       `json:"cause_id"`
	RecipientID uuid.UUID       `json:"recipient_id"`
	PaymentID   *uuid.UUID      `json:"payment_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	Email       string          `json:"email"`
	DonatedAt   time.Time       `json:"donated_at"`
}

func toDonationDTO(d *donation.Donation) *DonationDTO {
	return &DonationDTO{
		ID:          d.ID,
		UserID:      d.UserID,
		CauseID:     d.CauseID,
		RecipientID: d.RecipientID,
		PaymentID:   d.PaymentID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Status:      string(d.Status),
		Email:       d.Email,
		DonatedAt:   d.DonatedAt,
	}
}

// Routes registers donation history and statistics routes.
// Static segments are registered before /donations/:id.
func Routes(app *fiber.App, donationSvc *donationsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Get("/donations", protected, ListMine(donationSvc))
	app.Get("/donations/statistics", protected, Statistics(donationSvc))
	app.Get("/donations/:id", protected, Get(donationSvc))

	app.Get("/admin/donations", append(admin, AdminList(donationSvc))...)
	app.Get("/admin/donations/statistics", append(admin, AdminStatistics(donationSvc))...)
}

// filter reads the shared donation query parameters.
func filter(c *fiber.Ctx) (donationrepo.Filter, error) {
	f := donationrepo.Filter{
		Status:   donation.Status(c.Query("status")),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	switch f.Status {
	case "", donation.StatusPending, donation.StatusCompleted, donation.StatusFailed:
	default:
		return f, fiber.NewError(fiber.StatusBadRequest, "unknown donation status")
	}
	causeID, err := common.UUIDQuery(c, "cause")
	if err != nil {
		return f, err
	}
	f.CauseID = causeID
	userID, err := common.UUIDQuery(c, "user")
	if err != nil {
		return f, err
	}
	f.UserID = userID
	return f, nil
}

// ListMine returns the caller's donations.
// @Summary List my donations
// @Tags donations
// @Produce json
// @Param status query string false "pending, completed or failed"
// @Param cause query string false "Cause ID"
// @Param ordering query string false "e.g. -amount, donated_at"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /donations [get]
// @Security Bearer
func ListMine(donationSvc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := donationSvc.ListMine(c.Context(), actor.UserID, f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list donations", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donations fetched", dto.MapPage(p, toDonationDTO))
	}
}

// Get returns a donation visible to its donor or recipient.
// @Summary Get donation
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /donations/{id} [get]
// @Security Bearer
func Get(donationSvc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		d, err := donationSvc.Get(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Donation not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donation found", toDonationDTO(d))
	}
}

// Statistics summarises the caller's completed donations.
// @Summary My donation statistics
// @Tags donations
// @Produce json
// @Success 200 {object} common.Response{data=dto.DonationStats}
// @Failure 401 {object} common.ProblemDetails
// @Router /donations/statistics [get]
// @Security Bearer
func Statistics(donationSvc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		stats, err := donationSvc.Statistics(c.Context(), actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load statistics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statistics fetched", stats)
	}
}

// AdminList returns donations platform wide.
// @Summary List donations
// @Tags admin
// @Produce json
// @Param status query string false "pending, completed or failed"
// @Param cause query string false "Cause ID"
// @Param user query string false "Donor ID"
// @Param search query string false "Email or reference"
// @Param ordering query string false "e.g. -amount"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/donations [get]
// @Security Bearer
func AdminList(donationSvc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := donationSvc.AdminList(c.Context(), f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list donations", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donations fetched", dto.MapPage(p, toDonationDTO))
	}
}

// AdminStatistics summarises completed donations, optionally per cause or donor.
// @Summary Donation statistics
// @Tags admin
// @Produce json
// @Param cause query string false "Cause ID"
// @Param user query string false "Donor ID"
// @Success 200 {object} common.Response{data=dto.DonationStats}
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/donations/statistics [get]
// @Security Bearer
func AdminStatistics(donationSvc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		stats, err := donationSvc.AdminStatistics(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load statistics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statistics fetched", stats)
	}
}
