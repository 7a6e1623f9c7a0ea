package analytics

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/middleware"
	analyticssvc "github.com/amirasaad/causehive/pkg/service/analytics"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the public metrics route and the staff analytics routes.
func Routes(app *fiber.App, analyticsSvc *analyticssvc.Service, cfg *config.App) {
	admin := []fiber.Handler{middleware.JwtProtected(cfg.Auth.Jwt), middleware.AdminOnly()}

	app.Get("/analytics/metrics", PlatformMetrics(analyticsSvc))
	app.Get("/admin/analytics/dashboard", append(admin, Dashboard(analyticsSvc))...)
	app.Get("/admin/analytics/donations", append(admin, DonationChart(analyticsSvc))...)
	app.Get("/admin/analytics/causes", append(admin, CauseProgress(analyticsSvc))...)
	app.Get("/admin/analytics/users", append(admin, UserActivity(analyticsSvc))...)
}

// PlatformMetrics returns the public headline numbers.
// @Summary Platform metrics
// @Tags analytics
// @Produce json
// @Success 200 {object} common.Response{data=dto.PlatformMetrics}
// @Router /analytics/metrics [get]
func PlatformMetrics(analyticsSvc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := analyticsSvc.PlatformMetrics(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load metrics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Platform metrics", m)
	}
}

// Dashboard returns the staff overview.
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response{data=dto.Dashboard}
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/analytics/dashboard [get]
// @Security Bearer
func Dashboard(analyticsSvc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := analyticsSvc.Dashboard(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dashboard", d)
	}
}

// DonationChart returns six months of completed donation totals.
// @Summary Donation chart
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response{data=[]dto.MonthlyTotal}
// @Router /admin/analytics/donations [get]
// @Security Bearer
func DonationChart(analyticsSvc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chart, err := analyticsSvc.DonationChart(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load donation chart", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donation chart", chart)
	}
}

// CauseProgress returns the top causes by amount raised.
// @Summary Cause progress
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response{data=[]dto.CauseProgress}
// @Router /admin/analytics/causes [get]
// @Security Bearer
func CauseProgress(analyticsSvc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := analyticsSvc.CauseProgress(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load cause progress", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cause progress", rows)
	}
}

// UserActivity returns daily signups for the last thirty days.
// @Summary User activity
// @Tags admin
// @Produce json
// @Success 200 {object} common.Response{data=[]dto.DailyCount}
// @Router /admin/analytics/users [get]
// @Security Bearer
func UserActivity(analyticsSvc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := analyticsSvc.UserActivity(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load user activity", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User activity", rows)
	}
}
