package newsletter

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	newslettersvc "github.com/amirasaad/causehive/pkg/service/newsletter"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EmailInput struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriptionDTO struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

func toSubscriptionDTO(s *newsletter.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		ID:             s.ID,
		Email:          s.Email,
		IsActive:       s.IsActive,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
	}
}

// Routes registers the public newsletter routes.
func Routes(app *fiber.App, newsletterSvc *newslettersvc.Service) {
	app.Post("/newsletter/subscribe", Subscribe(newsletterSvc))
	app.Post("/newsletter/unsubscribe", Unsubscribe(newsletterSvc))
}

// Subscribe signs an email address up for the newsletter.
// @Summary Subscribe to newsletter
// @Description Subscribing an address that is already active is not an error.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body EmailInput true "Email"
// @Success 201 {object} common.Response "New subscription"
// @Success 200 {object} common.Response "Already subscribed or reactivated"
// @Failure 400 {object} common.ProblemDetails
// @Router /newsletter/subscribe [post]
func Subscribe(newsletterSvc *newslettersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[EmailInput](c)
		if input == nil {
			return err
		}
		sub, created, err := newsletterSvc.Subscribe(c.Context(), input.Email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to subscribe", err)
		}
		if created {
			return common.SuccessResponseJSON(c, fiber.StatusCreated, "Subscribed", toSubscriptionDTO(sub))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Already subscribed", toSubscriptionDTO(sub))
	}
}

// Unsubscribe deactivates a subscription.
// @Summary Unsubscribe from newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body EmailInput true "Email"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /newsletter/unsubscribe [post]
func Unsubscribe(newsletterSvc *newslettersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[EmailInput](c)
		if input == nil {
			return err
		}
		if err := newsletterSvc.Unsubscribe(c.Context(), input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to unsubscribe", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Unsubscribed", nil)
	}
}
