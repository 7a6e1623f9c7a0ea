package cause

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	causesvc "github.com/amirasaad/causehive/pkg/service/cause"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the public catalogue, organizer and moderation routes.
// /causes/mine is registered before /causes/:id so it is not read as an id.
func Routes(app *fiber.App, causeSvc *causesvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Get("/causes", ListPublic(causeSvc))
	app.Post("/causes", protected, Create(causeSvc))
	app.Get("/causes/mine", protected, ListMine(causeSvc))
	app.Get("/causes/:id", middleware.OptionalJwt(cfg.Auth.Jwt), Get(causeSvc))
	app.Delete("/causes/:id", protected, Delete(causeSvc))

	app.Get("/admin/causes", append(admin, AdminList(causeSvc))...)
	app.Patch("/admin/causes/:id", append(admin, AdminUpdate(causeSvc))...)
	app.Post("/admin/causes/:id/approve", append(admin, Approve(causeSvc))...)
	app.Post("/admin/causes/:id/reject", append(admin, Reject(causeSvc))...)
}

func page(c *fiber.Ctx, p *dto.Page[*cause.Cause], msg string) error {
	return common.SuccessResponseJSON(c, fiber.StatusOK, msg, dto.MapPage(p, ToCauseDTO))
}

// ListPublic returns live and finished causes.
// @Summary List causes
// @Tags causes
// @Produce json
// @Param category query string false "Category ID"
// @Param search query string false "Name or description"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /causes [get]
func ListPublic(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, err := common.UUIDQuery(c, "category")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category", err)
		}
		p, err := causeSvc.ListPublic(c.Context(), causesvc.ListFilter{
			CategoryID: categoryID,
			Search:     c.Query("search"),
		}, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list causes", err)
		}
		return page(c, p, "Causes fetched")
	}
}

// Create submits a cause for review.
// @Summary Create cause
// @Description The cause starts under review and becomes public once approved.
// @Tags causes
// @Accept json
// @Produce json
// @Param request body CreateCauseRequest true "Cause"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /causes [post]
// @Security Bearer
func Create(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateCauseRequest](c)
		if input == nil {
			return err
		}
		created, err := causeSvc.Create(c.Context(), actor.UserID, causesvc.CreateInput{
			Name:          input.Name,
			Description:   input.Description,
			CategoryID:    input.CategoryID,
			TargetAmount:  input.TargetAmount,
			CoverImageURL: input.CoverImageURL,
		})
		if err != nil {
			log.Errorf("Failed to create cause: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create cause", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Cause submitted for review", ToCauseDTO(created))
	}
}

// ListMine returns the caller's causes in every status.
// @Summary List my causes
// @Tags causes
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /causes/mine [get]
// @Security Bearer
func ListMine(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		p, err := causeSvc.ListMine(c.Context(), actor.UserID, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list causes", err)
		}
		return page(c, p, "Causes fetched")
	}
}

// Get returns one cause. Unpublished causes are visible to their organizer and staff only.
// @Summary Get cause
// @Tags causes
// @Produce json
// @Param id path string true "Cause ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /causes/{id} [get]
func Get(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		found, err := causeSvc.Get(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Cause not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cause found", ToCauseDTO(found))
	}
}

// Delete removes a cause owned by the caller.
// @Summary Delete cause
// @Tags causes
// @Param id path string true "Cause ID"
// @Success 204
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /causes/{id} [delete]
// @Security Bearer
func Delete(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := causeSvc.Delete(c.Context(), id, middleware.Actor(c)); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete cause", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AdminList returns causes in any status.
// @Summary List causes for moderation
// @Tags admin
// @Produce json
// @Param status query string false "Status"
// @Param organizer query string false "Organizer ID"
// @Param category query string false "Category ID"
// @Param search query string false "Name or description"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/causes [get]
// @Security Bearer
func AdminList(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizer, err := common.UUIDQuery(c, "organizer")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid organizer", err)
		}
		categoryID, err := common.UUIDQuery(c, "category")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid category", err)
		}
		filter := causerepo.Filter{
			OrganizerID: organizer,
			CategoryID:  categoryID,
			Search:      c.Query("search"),
		}
		if status := cause.Status(c.Query("status")); status != "" {
			if !status.Valid() {
				return common.ProblemDetailsJSON(c, "Invalid status", nil, "unknown cause status", fiber.StatusBadRequest)
			}
			filter.Statuses = []cause.Status{status}
		}
		p, err := causeSvc.AdminList(c.Context(), filter, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list causes", err)
		}
		return page(c, p, "Causes fetched")
	}
}

// AdminUpdate edits any cause field, including its status.
// @Summary Update cause
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Cause ID"
// @Param request body AdminUpdateRequest true "Fields"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/causes/{id} [patch]
// @Security Bearer
func AdminUpdate(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[AdminUpdateRequest](c)
		if input == nil {
			return err
		}
		update := causesvc.AdminUpdate{
			Name:          input.Name,
			Description:   input.Description,
			CategoryID:    input.CategoryID,
			TargetAmount:  input.TargetAmount,
			CoverImageURL: input.CoverImageURL,
		}
		if input.Status != nil {
			status := cause.Status(*input.Status)
			update.Status = &status
		}
		updated, err := causeSvc.AdminUpdate(c.Context(), id, update)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update cause", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cause updated", ToCauseDTO(updated))
	}
}

// Approve puts a cause live.
// @Summary Approve cause
// @Tags admin
// @Produce json
// @Param id path string true "Cause ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /admin/causes/{id}/approve [post]
// @Security Bearer
func Approve(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		approved, err := causeSvc.Approve(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to approve cause", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cause approved", ToCauseDTO(approved))
	}
}

// Reject returns a cause to its organizer.
// @Summary Reject cause
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Cause ID"
// @Param request body RejectRequest true "Reason"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/causes/{id}/reject [post]
// @Security Bearer
func Reject(causeSvc *causesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[RejectRequest](c)
		if input == nil {
			return err
		}
		rejected, err := causeSvc.Reject(c.Context(), id, input.Reason)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reject cause", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cause rejected", ToCauseDTO(rejected))
	}
}
