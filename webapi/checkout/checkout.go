package checkout

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/middleware"
	checkoutsvc "github.com/amirasaad/causehive/pkg/service/checkout"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers checkout routes. Both accept anonymous donors.
func Routes(app *fiber.App, checkoutSvc *checkoutsvc.Service, cfg *config.App) {
	optional := middleware.OptionalJwt(cfg.Auth.Jwt)
	app.Post("/checkout", optional, Checkout(checkoutSvc))
	app.Post("/causes/:id/donate", optional, Donate(checkoutSvc))
}

// Checkout charges every line of a cart in one gateway transaction.
// @Summary Check out cart
// @Description Creates pending donations and returns the gateway URL the donor pays at.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Checkout"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /checkout [post]
func Checkout(checkoutSvc *checkoutsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CheckoutRequest](c)
		if input == nil {
			return err
		}
		res, err := checkoutSvc.Checkout(c.Context(), middleware.Actor(c), input.CartID, input.Email)
		if err != nil {
			log.Errorf("Checkout failed: %v", err)
			return common.ProblemDetailsJSON(c, "Checkout failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Payment initiated", res)
	}
}

// Donate charges a single donation without touching the donor's cart
// beyond dropping the same cause from it.
// @Summary Donate to cause
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Cause ID"
// @Param request body DonateRequest true "Donation"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /causes/{id}/donate [post]
func Donate(checkoutSvc *checkoutsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		causeID, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[DonateRequest](c)
		if input == nil {
			return err
		}
		res, err := checkoutSvc.Donate(c.Context(), middleware.Actor(c), causeID, input.Amount, input.Email)
		if err != nil {
			log.Errorf("Donate failed: %v", err)
			return common.ProblemDetailsJSON(c, "Donation failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Payment initiated", res)
	}
}
