package category

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/category"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	categorysvc "github.com/amirasaad/causehive/pkg/service/category"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CategoryInput is the body for creating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// CategoryUpdateInput is a partial category update.
type CategoryUpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// CategoryDTO is the API representation of a category.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CauseCount  int64     `json:"cause_count"`
}

func toDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CauseCount:  c.CauseCount,
	}
}

func Routes(app *fiber.App, categorySvc *categorysvc.Service, cfg *config.App) {
	admin := []fiber.Handler{middleware.JwtProtected(cfg.Auth.Jwt), middleware.AdminOnly()}

	app.Get("/categories", List(categorySvc))
	app.Get("/categories/:id", Get(categorySvc))
	app.Post("/admin/categories", append(admin, Create(categorySvc))...)
	app.Patch("/admin/categories/:id", append(admin, Update(categorySvc))...)
	app.Delete("/admin/categories/:id", append(admin, Delete(categorySvc))...)
}

// List returns every category with its public cause count.
// @Summary List categories
// @Tags categories
// @Produce json
// @Param page_size query int false "Truncate the result"
// @Success 200 {object} common.Response
// @Router /categories [get]
func List(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := categorySvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list categories", err)
		}
		items := make([]*CategoryDTO, 0, len(categories))
		for _, cat := range categories {
			items = append(items, toDTO(cat))
		}
		size := c.QueryInt("page_size", len(items))
		if size > 0 && size < len(items) {
			items = items[:size]
		}
		page := dto.NewPage(items, int64(len(categories)), dto.PageRequest{Page: 1, PageSize: len(items)})
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories fetched", page)
	}
}

// Get returns one category.
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /categories/{id} [get]
func Get(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		cat, err := categorySvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Category not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category found", toDTO(cat))
	}
}

// Create adds a category.
// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CategoryInput true "Category"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /admin/categories [post]
// @Security Bearer
func Create(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CategoryInput](c)
		if input == nil {
			return err
		}
		cat, err := categorySvc.Create(c.Context(), input.Name, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category created", toDTO(cat))
	}
}

// Update renames or re-describes a category.
// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body CategoryUpdateInput true "Fields"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/categories/{id} [patch]
// @Security Bearer
func Update(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[CategoryUpdateInput](c)
		if input == nil {
			return err
		}
		cat, err := categorySvc.Update(c.Context(), id, input.Name, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category updated", toDTO(cat))
	}
}

// Delete removes a category. Its causes become uncategorised.
// @Summary Delete category
// @Tags admin
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/categories/{id} [delete]
// @Security Bearer
func Delete(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := categorySvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete category", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
