package withdrawal

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	withdrawalrepo "github.com/amirasaad/causehive/pkg/repository/withdrawal"
	withdrawalsvc "github.com/amirasaad/causehive/pkg/service/withdrawal"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const defaultVerifyLimit = 50

// Routes registers organizer payout routes and the staff payout console.
func Routes(app *fiber.App, withdrawalSvc *withdrawalsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Post("/withdrawals", protected, Request(withdrawalSvc))
	app.Get("/withdrawals", protected, ListMine(withdrawalSvc))
	app.Get("/withdrawals/:id", protected, Get(withdrawalSvc))
	app.Post("/withdrawals/:id/cancel", protected, Cancel(withdrawalSvc))

	app.Get("/admin/withdrawals", append(admin, AdminList(withdrawalSvc))...)
	app.Get("/admin/withdrawals/statistics", append(admin, AdminStatistics(withdrawalSvc))...)
	app.Post("/admin/withdrawals/verify-pending", append(admin, VerifyPending(withdrawalSvc))...)
	app.Post("/admin/withdrawals/:id/retry", append(admin, Retry(withdrawalSvc))...)
	app.Post("/admin/withdrawals/:id/verify", append(admin, Verify(withdrawalSvc))...)
}

func filter(c *fiber.Ctx) (withdrawalrepo.Filter, error) {
	f := withdrawalrepo.Filter{Status: withdrawal.Status(c.Query("status"))}
	if f.Status != "" && !f.Status.Valid() {
		return f, fiber.NewError(fiber.StatusBadRequest, "unknown withdrawal status")
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

// Request reserves funds from a cause for payout to its organizer.
// @Summary Request withdrawal
// @Description The transfer starts in the background; poll the request or wait for the notification.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body RequestInput true "Withdrawal"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /withdrawals [post]
// @Security Bearer
func Request(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[RequestInput](c)
		if input == nil {
			return err
		}
		var method *user.WithdrawalMethod
		if input.PaymentMethod != "" {
			m := user.WithdrawalMethod(input.PaymentMethod)
			method = &m
		}
		w, err := withdrawalSvc.Request(c.Context(), actor.UserID, input.CauseID, input.Amount, method)
		if err != nil {
			log.Errorf("Failed to request withdrawal: %v", err)
			return common.ProblemDetailsJSON(c, "Withdrawal request failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Withdrawal requested", toWithdrawalDTO(w))
	}
}

// ListMine returns the caller's withdrawal requests.
// @Summary List my withdrawals
// @Tags withdrawals
// @Produce json
// @Param status query string false "Status"
// @Param cause query string false "Cause ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /withdrawals [get]
// @Security Bearer
func ListMine(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := withdrawalSvc.ListMine(c.Context(), actor.UserID, f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list withdrawals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawals fetched", dto.MapPage(p, toWithdrawalDTO))
	}
}

// Get returns one withdrawal request.
// @Summary Get withdrawal
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /withdrawals/{id} [get]
// @Security Bearer
func Get(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		w, err := withdrawalSvc.Get(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Withdrawal not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal found", toWithdrawalDTO(w))
	}
}

// Cancel releases the reserved funds while no transfer is in flight.
// @Summary Cancel withdrawal
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /withdrawals/{id}/cancel [post]
// @Security Bearer
func Cancel(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		w, err := withdrawalSvc.Cancel(c.Context(), id, actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to cancel withdrawal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal cancelled", toWithdrawalDTO(w))
	}
}

// AdminList returns withdrawal requests platform wide.
// @Summary List withdrawals
// @Tags admin
// @Produce json
// @Param status query string false "Status"
// @Param cause query string false "Cause ID"
// @Param user query string false "Organizer ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/withdrawals [get]
// @Security Bearer
func AdminList(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := withdrawalSvc.AdminList(c.Context(), f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list withdrawals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawals fetched", dto.MapPage(p, toWithdrawalDTO))
	}
}

// AdminStatistics summarises payouts.
// @Summary Withdrawal statistics
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response{data=dto.WithdrawalStats}
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/withdrawals/statistics [get]
// @Security Bearer
func AdminStatistics(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := withdrawalSvc.AdminStatistics(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load statistics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statistics fetched", stats)
	}
}

// Retry requeues a failed payout.
// @Summary Retry withdrawal
// @Tags admin
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/withdrawals/{id}/retry [post]
// @Security Bearer
func Retry(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		w, err := withdrawalSvc.Retry(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to retry withdrawal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal queued for retry", toWithdrawalDTO(w))
	}
}

// Verify checks one transfer with the gateway.
// @Summary Verify withdrawal transfer
// @Tags admin
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /admin/withdrawals/{id}/verify [post]
// @Security Bearer
func Verify(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		w, err := withdrawalSvc.Verify(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to verify withdrawal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal "+string(w.Status), toWithdrawalDTO(w))
	}
}

// VerifyPending checks every in-flight transfer, up to limit.
// @Summary Verify pending transfers
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum requests to check"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/withdrawals/verify-pending [post]
// @Security Bearer
func VerifyPending(withdrawalSvc *withdrawalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", defaultVerifyLimit)
		if limit <= 0 {
			limit = defaultVerifyLimit
		}
		summary, err := withdrawalSvc.VerifyPending(c.Context(), limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to verify withdrawals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pending withdrawals verified", summary)
	}
}
