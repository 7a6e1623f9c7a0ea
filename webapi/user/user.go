package user

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	usersvc "github.com/amirasaad/causehive/pkg/service/user"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for the current user, payout directories
// and user administration.
//
// Routes:
//   - GET    /user/me               : Current user.
//   - PATCH  /user/me               : Update names.
//   - DELETE /user/me               : Delete the account after a password check.
//   - GET    /user/profile          : Current profile.
//   - PATCH  /user/profile          : Partial profile update.
//   - GET    /banks                 : Payout banks of a country.
//   - GET    /mobile-money          : Mobile money networks.
//   - POST   /banks/resolve         : Resolve an account holder name.
//   - GET    /admin/users           : Staff user listing.
//   - GET    /admin/users/:id       : Staff user detail.
//   - PATCH  /admin/users/:id/status: Enable or disable a user.
func Routes(app *fiber.App, userSvc *usersvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Get("/user/me", protected, GetMe(userSvc))
	app.Patch("/user/me", protected, UpdateMe(userSvc))
	app.Delete("/user/me", protected, DeleteMe(userSvc))
	app.Get("/user/profile", protected, GetProfile(userSvc))
	app.Patch("/user/profile", protected, UpdateProfile(userSvc))

	app.Get("/banks", protected, ListBanks(userSvc))
	app.Get("/mobile-money", protected, ListMobileMoney(userSvc))
	app.Post("/banks/resolve", protected, ResolveAccount(userSvc))

	app.Get("/admin/users", append(admin, AdminList(userSvc))...)
	app.Get("/admin/users/:id", append(admin, AdminGet(userSvc))...)
	app.Patch("/admin/users/:id/status", append(admin, AdminSetActive(userSvc))...)
}

func unauthorized(c *fiber.Ctx) error {
	return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
}

// GetMe returns the authenticated user.
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security Bearer
func GetMe(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return unauthorized(c)
		}
		u, err := userSvc.GetMe(c.Context(), actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", ToUserDTO(u))
	}
}

// UpdateMe changes the caller's names.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserInput true "Names"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [patch]
// @Security Bearer
func UpdateMe(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return unauthorized(c)
		}
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.UpdateUser(c.Context(), actor.UserID, dto.UserUpdate{
			FirstName: input.FirstName,
			LastName:  input.LastName,
		})
		if err != nil {
			log.Errorf("Failed to update user: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", ToUserDTO(u))
	}
}

// DeleteMe deletes the caller's account.
// @Summary Delete current user
// @Tags users
// @Accept json
// @Param request body PasswordInput true "Password confirmation"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [delete]
// @Security Bearer
func DeleteMe(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return unauthorized(c)
		}
		input, err := common.BindAndValidate[PasswordInput](c)
		if input == nil {
			return err
		}
		if err := userSvc.DeleteAccount(c.Context(), actor.UserID, input.Password); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetProfile returns the caller's profile.
// @Summary Get profile
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /user/profile [get]
// @Security Bearer
func GetProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return unauthorized(c)
		}
		p, err := userSvc.GetProfile(c.Context(), actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile found", toProfileDTO(p))
	}
}

// UpdateProfile applies a partial profile update.
// @Summary Update profile
// @Description Only the fields present in the body are changed.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ProfileUpdate true "Profile fields"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/profile [patch]
// @Security Bearer
func UpdateProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return unauthorized(c)
		}
		input, err := common.BindAndValidate[dto.ProfileUpdate](c)
		if input == nil {
			return err
		}
		p, err := userSvc.UpdateProfile(c.Context(), actor.UserID, *input)
		if err != nil {
			log.Errorf("Failed to update profile: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", toProfileDTO(p))
	}
}

// ListBanks returns payout banks.
// @Summary List banks
// @Tags banks
// @Produce json
// @Param country query string false "Country (default ghana)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /banks [get]
// @Security Bearer
func ListBanks(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		banks, err := userSvc.ListBanks(c.Context(), c.Query("country"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list banks", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Banks fetched", banks)
	}
}

// ListMobileMoney returns the mobile money networks.
// @Summary List mobile money providers
// @Tags banks
// @Produce json
// @Success 200 {object} common.Response
// @Failure 502 {object} common.ProblemDetails
// @Router /mobile-money [get]
// @Security Bearer
func ListMobileMoney(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		providers, err := userSvc.ListMobileMoneyProviders(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list mobile money providers", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Mobile money providers fetched", providers)
	}
}

// ResolveAccount returns the name on a bank account.
// @Summary Validate bank account
// @Tags banks
// @Accept json
// @Produce json
// @Param request body ResolveAccountInput true "Account"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /banks/resolve [post]
// @Security Bearer
func ResolveAccount(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ResolveAccountInput](c)
		if input == nil {
			return err
		}
		acct, err := userSvc.ResolveBankAccount(c.Context(), input.AccountNumber, input.BankCode)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to resolve account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account resolved", acct)
	}
}

// AdminList returns a page of users.
// @Summary List users
// @Tags admin
// @Produce json
// @Param search query string false "Email or name"
// @Param is_active query bool false "Active filter"
// @Param is_staff query bool false "Staff filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/users [get]
// @Security Bearer
func AdminList(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := userSvc.AdminList(c.Context(), dto.UserFilter{
			Search:   c.Query("search"),
			IsActive: common.BoolQuery(c, "is_active"),
			IsStaff:  common.BoolQuery(c, "is_staff"),
		}, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users fetched", dto.MapPage(page, ToUserDTO))
	}
}

// AdminGet returns one user.
// @Summary Get user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/users/{id} [get]
// @Security Bearer
func AdminGet(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		u, err := userSvc.AdminGet(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", ToUserDTO(u))
	}
}

// AdminSetActive enables or disables an account.
// @Summary Set user active flag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetActiveInput true "Flag"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /admin/users/{id}/status [patch]
// @Security Bearer
func AdminSetActive(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[SetActiveInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.AdminSetActive(c.Context(), id, *input.IsActive)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", ToUserDTO(u))
	}
}
