package auth

import (
	"errors"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/middleware"
	authsvc "github.com/amirasaad/causehive/pkg/service/auth"
	"github.com/amirasaad/causehive/webapi/common"
	userweb "github.com/amirasaad/causehive/webapi/user"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/auth/signup", Signup(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", middleware.JwtProtected(cfg.Auth.Jwt), Logout())
	app.Post("/auth/password-reset", RequestPasswordReset(authSvc))
	app.Post("/auth/password-reset/confirm", ConfirmPasswordReset(authSvc))
}

// Signup registers a new account.
// @Summary Register
// @Description Create an account with an email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupInput true "Account details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/signup [post]
func Signup(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Signup(c.Context(), input.Email, input.Password, input.FirstName, input.LastName)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", userweb.ToUserDTO(u))
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		token, u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if errors.Is(err, user.ErrUserUnauthorized) {
			return common.ProblemDetailsJSON(
				c, "Invalid email or password", nil, "Email or password is incorrect", fiber.StatusUnauthorized,
			)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{
			"token": token,
			"user":  userweb.ToUserDTO(u),
		})
	}
}

// Logout acknowledges a logout. Tokens are stateless, so clients drop them.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/logout [post]
// @Security Bearer
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}

// RequestPasswordReset mails a reset link. The response is the same whether
// or not the address is registered.
// @Summary Request password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetInput true "Email"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /auth/password-reset [post]
func RequestPasswordReset(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PasswordResetInput](c)
		if input == nil {
			return err
		}
		if err := authSvc.RequestPasswordReset(c.Context(), input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to request password reset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"If an account exists for this email, a reset link has been sent", nil)
	}
}

// ConfirmPasswordReset sets a new password.
// @Summary Confirm password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetConfirmInput true "Token and new password"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /auth/password-reset/confirm [post]
func ConfirmPasswordReset(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PasswordResetConfirmInput](c)
		if input == nil {
			return err
		}
		if err := authSvc.ConfirmPasswordReset(c.Context(), input.Token, input.NewPassword); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reset password", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Password has been reset", nil)
	}
}
