package payment

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	paymentrepo "github.com/amirasaad/causehive/pkg/repository/payment"
	paymentsvc "github.com/amirasaad/causehive/pkg/service/payment"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Signature headers, one per supported gateway.
const (
	paystackSignatureHeader = "X-Paystack-Signature"
	stripeSignatureHeader   = "Stripe-Signature"
)

// Routes registers payment verification, webhook and lookup routes.
func Routes(app *fiber.App, paymentSvc *paymentsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)

	app.Get("/payments/verify/:reference", Verify(paymentSvc))
	app.Get("/payments/:id", protected, Get(paymentSvc))
	app.Post("/webhooks/paystack", Webhook(paymentSvc))
	app.Post("/webhooks/stripe", Webhook(paymentSvc))

	app.Get("/admin/payments", protected, middleware.AdminOnly(), AdminList(paymentSvc))
}

// Verify settles a payment from the gateway's view of it. Donors land here
// from the gateway callback, so the route is public.
// @Summary Verify payment
// @Tags payments
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /payments/verify/{reference} [get]
func Verify(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := paymentSvc.Verify(c.Context(), c.Params("reference"))
		if err != nil {
			log.Errorf("Failed to verify payment: %v", err)
			return common.ProblemDetailsJSON(c, "Payment verification failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment "+string(tx.Status), toPaymentDTO(tx))
	}
}

// Webhook accepts signed gateway notifications.
// @Summary Payment gateway webhook
// @Tags payments
// @Accept json
// @Produce json
// @Success 200
// @Failure 400 {object} common.ProblemDetails
// @Router /webhooks/paystack [post]
// @Router /webhooks/stripe [post]
func Webhook(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(paystackSignatureHeader)
		if signature == "" {
			signature = c.Get(stripeSignatureHeader)
		}
		if signature == "" {
			return common.ProblemDetailsJSON(c, "Invalid webhook", nil, "missing signature header", fiber.StatusBadRequest)
		}
		payload := c.Body()
		if len(payload) == 0 {
			return common.ProblemDetailsJSON(c, "Invalid webhook", nil, "empty request body", fiber.StatusBadRequest)
		}
		if err := paymentSvc.HandleWebhook(c.Context(), payload, signature); err != nil {
			return common.ProblemDetailsJSON(c, "Webhook processing failed", err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// Get returns one of the caller's payments.
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /payments/{id} [get]
// @Security Bearer
func Get(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		tx, err := paymentSvc.Get(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment found", toPaymentDTO(tx))
	}
}

// AdminList returns payments across all donors.
// @Summary List payments
// @Tags admin
// @Produce json
// @Param status query string false "pending, completed or failed"
// @Param user query string false "User ID"
// @Param search query string false "Reference or email"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/payments [get]
// @Security Bearer
func AdminList(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.UUIDQuery(c, "user")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user", err)
		}
		filter := paymentrepo.Filter{
			Status: payment.Status(c.Query("status")),
			UserID: userID,
			Search: c.Query("search"),
		}
		switch filter.Status {
		case "", payment.StatusPending, payment.StatusCompleted, payment.StatusFailed:
		default:
			return common.ProblemDetailsJSON(c, "Invalid status", nil, "unknown payment status", fiber.StatusBadRequest)
		}
		p, err := paymentSvc.AdminList(c.Context(), filter, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list payments", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payments fetched", dto.MapPage(p, toPaymentDTO))
	}
}
