// Package webapi wires the HTTP surface of CauseHive. Each domain has its
// own sub-package exposing a Routes function:
//   - auth, user: accounts, tokens and profiles
//   - category, cause: the catalogue and organiser workflow
//   - cart, checkout, payment: giving and gateway callbacks
//   - donation, withdrawal: ledgers and payouts
//   - notification, testimonial, newsletter, analytics
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/causehive/docs"
	"github.com/amirasaad/causehive/pkg/app"
	analyticsweb "github.com/amirasaad/causehive/webapi/analytics"
	authweb "github.com/amirasaad/causehive/webapi/auth"
	cartweb "github.com/amirasaad/causehive/webapi/cart"
	categoryweb "github.com/amirasaad/causehive/webapi/category"
	causeweb "github.com/amirasaad/causehive/webapi/cause"
	checkoutweb "github.com/amirasaad/causehive/webapi/checkout"
	"github.com/amirasaad/causehive/webapi/common"
	donationweb "github.com/amirasaad/causehive/webapi/donation"
	newsletterweb "github.com/amirasaad/causehive/webapi/newsletter"
	notificationweb "github.com/amirasaad/causehive/webapi/notification"
	paymentweb "github.com/amirasaad/causehive/webapi/payment"
	testimonialweb "github.com/amirasaad/causehive/webapi/testimonial"
	userweb "github.com/amirasaad/causehive/webapi/user"
	withdrawalweb "github.com/amirasaad/causehive/webapi/withdrawal"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// ClientIP keys rate limiting on the first X-Forwarded-For hop, then
// X-Real-IP, then the socket address.
func ClientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if first, _, found := strings.Cut(forwardedFor, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
		OAuth2RedirectUrl:    "/auth/login",
	}))

	fiberApp.Use(limiter.New(limiter.Config{
		Max:          cfg.RateLimit.MaxRequests,
		Expiration:   cfg.RateLimit.Window,
		KeyGenerator: ClientIP,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CauseHive API is running! 🐝")
	})

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routeList []map[string]any
		for _, route := range fiberApp.GetRoutes(true) {
			if route.Path != "" {
				routeList = append(routeList, map[string]any{
					"method": route.Method,
					"path":   route.Path,
				})
			}
		}
		return c.JSON(routeList)
	})

	authweb.Routes(fiberApp, a.AuthService, cfg)
	userweb.Routes(fiberApp, a.UserService, cfg)
	categoryweb.Routes(fiberApp, a.CategoryService, cfg)
	causeweb.Routes(fiberApp, a.CauseService, cfg)
	cartweb.Routes(fiberApp, a.CartService, cfg)
	checkoutweb.Routes(fiberApp, a.CheckoutService, cfg)
	paymentweb.Routes(fiberApp, a.PaymentService, cfg)
	donationweb.Routes(fiberApp, a.DonationService, cfg)
	withdrawalweb.Routes(fiberApp, a.WithdrawalService, cfg)
	notificationweb.Routes(fiberApp, a.NotificationService, cfg)
	testimonialweb.Routes(fiberApp, a.TestimonialService, cfg)
	newsletterweb.Routes(fiberApp, a.NewsletterService)
	analyticsweb.Routes(fiberApp, a.AnalyticsService, cfg)
	return fiberApp
}
