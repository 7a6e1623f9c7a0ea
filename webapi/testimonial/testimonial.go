package testimonial

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	testimonialrepo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	testimonialsvc "github.com/amirasaad/causehive/pkg/service/testimonial"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers public reviews, review authoring and moderation routes.
func Routes(app *fiber.App, testimonialSvc *testimonialsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Get("/causes/:id/testimonials", ListForCause(testimonialSvc))
	app.Get("/causes/:id/testimonials/stats", Stats(testimonialSvc))

	app.Post("/testimonials", protected, Create(testimonialSvc))
	app.Get("/testimonials/mine", protected, ListMine(testimonialSvc))
	app.Patch("/testimonials/:id", protected, Update(testimonialSvc))
	app.Delete("/testimonials/:id", protected, Delete(testimonialSvc))
	app.Post("/testimonials/:id/like", protected, ToggleLike(testimonialSvc))
	app.Post("/testimonials/:id/report", protected, Report(testimonialSvc))

	app.Get("/admin/testimonials", append(admin, ModerationList(testimonialSvc))...)
	app.Get("/admin/testimonials/reports", append(admin, ReportsList(testimonialSvc))...)
	app.Post("/admin/testimonials/reports/:id/resolve", append(admin, ResolveReport(testimonialSvc))...)
	app.Patch("/admin/testimonials/:id", append(admin, Moderate(testimonialSvc))...)
}

// ListForCause returns the approved reviews of a cause.
// @Summary List cause testimonials
// @Tags testimonials
// @Produce json
// @Param id path string true "Cause ID"
// @Param sort query string false "newest, oldest or highest_rated"
// @Param featured query bool false "Only featured"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Router /causes/{id}/testimonials [get]
func ListForCause(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		causeID, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		p, err := testimonialSvc.ListForCause(c.Context(), causeID,
			testimonialrepo.Sort(c.Query("sort")), c.QueryBool("featured"),
			common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list testimonials", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonials fetched", dto.MapPage(p, toTestimonialDTO))
	}
}

// Stats returns the rating summary of a cause.
// @Summary Cause testimonial statistics
// @Tags testimonials
// @Produce json
// @Param id path string true "Cause ID"
// @Success 200 {object} common.Response
// @Router /causes/{id}/testimonials/stats [get]
func Stats(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		causeID, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		stats, err := testimonialSvc.Stats(c.Context(), causeID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load statistics", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statistics fetched", stats)
	}
}

// Create reviews a cause. One review per user and cause.
// @Summary Create testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body CreateInput true "Review"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /testimonials [post]
// @Security Bearer
func Create(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		t, err := testimonialSvc.Create(c.Context(), actor.UserID, input.CauseID, input.Rating, input.ReviewText)
		if err != nil {
			log.Errorf("Failed to create testimonial: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Testimonial created", toTestimonialDTO(t))
	}
}

// ListMine returns the caller's reviews including unapproved ones.
// @Summary List my testimonials
// @Tags testimonials
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Router /testimonials/mine [get]
// @Security Bearer
func ListMine(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		p, err := testimonialSvc.ListMine(c.Context(), actor.UserID, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list testimonials", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonials fetched", dto.MapPage(p, toTestimonialDTO))
	}
}

// Update edits the caller's review.
// @Summary Update testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body UpdateInput true "Review"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /testimonials/{id} [patch]
// @Security Bearer
func Update(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		t, err := testimonialSvc.Update(c.Context(), id, middleware.Actor(c), input.Rating, input.ReviewText)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonial updated", toTestimonialDTO(t))
	}
}

// Delete removes the caller's review.
// @Summary Delete testimonial
// @Tags testimonials
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /testimonials/{id} [delete]
// @Security Bearer
func Delete(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := testimonialSvc.Delete(c.Context(), id, middleware.Actor(c)); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete testimonial", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleLike likes a review, or unlikes it when already liked.
// @Summary Toggle testimonial like
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /testimonials/{id}/like [post]
// @Security Bearer
func ToggleLike(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		res, err := testimonialSvc.ToggleLike(c.Context(), id, actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to like testimonial", err)
		}
		msg := "Testimonial unliked"
		if res.Liked {
			msg = "Testimonial liked"
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, msg, res)
	}
}

// Report files an abuse report against a review.
// @Summary Report testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body ReportInput true "Report"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /testimonials/{id}/report [post]
// @Security Bearer
func Report(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[ReportInput](c)
		if input == nil {
			return err
		}
		r, err := testimonialSvc.Report(c.Context(), id, actor.UserID,
			testimonial.ReportReason(input.Reason), input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to report testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Testimonial reported", toReportDTO(r))
	}
}

// ModerationList is the staff review queue.
// @Summary List testimonials for moderation
// @Tags admin
// @Produce json
// @Param approved query bool false "Approval state"
// @Param reported query bool false "Has unresolved reports"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/testimonials [get]
// @Security Bearer
func ModerationList(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := testimonialSvc.ModerationList(c.Context(),
			common.BoolQuery(c, "approved"), common.BoolQuery(c, "reported"),
			common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list testimonials", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonials fetched", dto.MapPage(p, toAdminDTO))
	}
}

// Moderate approves, hides or features a review.
// @Summary Moderate testimonial
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body ModerationInput true "Decision"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/testimonials/{id} [patch]
// @Security Bearer
func Moderate(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[ModerationInput](c)
		if input == nil {
			return err
		}
		t, err := testimonialSvc.Moderate(c.Context(), id, testimonialsvc.Moderation{
			Approve: input.IsApproved,
			Feature: input.IsFeatured,
			Notes:   input.ModerationNotes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to moderate testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonial moderated", toAdminDTO(t))
	}
}

// ReportsList returns abuse reports.
// @Summary List testimonial reports
// @Tags admin
// @Produce json
// @Param resolved query bool false "Resolution state"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/testimonials/reports [get]
// @Security Bearer
func ReportsList(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := testimonialSvc.ReportsList(c.Context(), common.BoolQuery(c, "resolved"),
			common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list reports", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Reports fetched", dto.MapPage(p, toReportDTO))
	}
}

// ResolveReport closes an abuse report.
// @Summary Resolve testimonial report
// @Tags admin
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/testimonials/reports/{id}/resolve [post]
// @Security Bearer
func ResolveReport(testimonialSvc *testimonialsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		r, err := testimonialSvc.ResolveReport(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to resolve report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Report resolved", toReportDTO(r))
	}
}
