package config

import (
	"log/slog"

	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/amirasaad/causehive/pkg/provider/mail"
	"github.com/amirasaad/causehive/pkg/provider/payment"
	"github.com/amirasaad/causehive/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow            repository.UnitOfWork
	PaymentGateway payment.Gateway
	Mailer         mail.Mailer
	Cache          cache.Cache
	EventBus       eventbus.Bus
	Logger         *slog.Logger
	Config         *App
}
