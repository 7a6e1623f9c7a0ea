package app

import (
	"log/slog"

	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/amirasaad/causehive/pkg/provider/mail"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
	analyticssvc "github.com/amirasaad/causehive/pkg/service/analytics"
	"github.com/amirasaad/causehive/pkg/service/auth"
	cartsvc "github.com/amirasaad/causehive/pkg/service/cart"
	categorysvc "github.com/amirasaad/causehive/pkg/service/category"
	causesvc "github.com/amirasaad/causehive/pkg/service/cause"
	checkoutsvc "github.com/amirasaad/causehive/pkg/service/checkout"
	donationsvc "github.com/amirasaad/causehive/pkg/service/donation"
	newslettersvc "github.com/amirasaad/causehive/pkg/service/newsletter"
	notificationsvc "github.com/amirasaad/causehive/pkg/service/notification"
	paymentsvc "github.com/amirasaad/causehive/pkg/service/payment"
	testimonialsvc "github.com/amirasaad/causehive/pkg/service/testimonial"
	"github.com/amirasaad/causehive/pkg/service/user"
	withdrawalsvc "github.com/amirasaad/causehive/pkg/service/withdrawal"
)

// Deps contains the infrastructure every service is built from.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Gateway  payment.Gateway
	Mailer   mail.Mailer
	Cache    cache.Cache
	Logger   *slog.Logger
}

type App struct {
	Deps                *Deps
	Config              *config.App
	AuthService         *auth.Service
	UserService         *user.Service
	CategoryService     *categorysvc.Service
	CauseService        *causesvc.Service
	CartService         *cartsvc.Service
	CheckoutService     *checkoutsvc.Service
	PaymentService      *paymentsvc.Service
	DonationService     *donationsvc.Service
	WithdrawalService   *withdrawalsvc.Service
	NotificationService *notificationsvc.Service
	TestimonialService  *testimonialsvc.Service
	NewsletterService   *newslettersvc.Service
	AnalyticsService    *analyticssvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	currency := cfg.Donation.Currency

	app.AuthService = auth.New(deps.Uow, deps.EventBus, deps.Mailer, cfg.Auth, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Gateway, deps.Cache, cfg.Cache, deps.Logger)
	app.CategoryService = categorysvc.New(deps.Uow, deps.Logger)
	app.CauseService = causesvc.New(deps.Uow, deps.EventBus, deps.Logger)
	app.CartService = cartsvc.New(deps.Uow, deps.Logger)
	app.CheckoutService = checkoutsvc.New(deps.Uow, deps.Gateway, currency, deps.Logger)
	app.WithdrawalService = withdrawalsvc.New(
		deps.Uow,
		deps.Gateway,
		deps.EventBus,
		cfg.Fee.WithdrawalFeePercentage,
		currency,
		deps.Logger,
	)
	app.PaymentService = paymentsvc.New(
		deps.Uow,
		deps.Gateway,
		app.WithdrawalService,
		deps.EventBus,
		deps.Logger,
	)
	app.DonationService = donationsvc.New(deps.Uow, deps.Logger)
	app.NotificationService = notificationsvc.New(deps.Uow, deps.Logger)
	app.TestimonialService = testimonialsvc.New(deps.Uow, deps.Logger)
	app.NewsletterService = newslettersvc.New(deps.Uow, deps.Logger)
	app.AnalyticsService = analyticssvc.New(deps.Uow, deps.Cache, cfg.Cache, deps.Logger)

	app.setupEventBus()
	return app
}
