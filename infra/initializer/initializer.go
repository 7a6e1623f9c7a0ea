package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/causehive/infra"
	infracache "github.com/amirasaad/causehive/infra/cache"
	infraeventbus "github.com/amirasaad/causehive/infra/eventbus"
	"github.com/amirasaad/causehive/infra/provider/logmail"
	"github.com/amirasaad/causehive/infra/provider/mockpayment"
	"github.com/amirasaad/causehive/infra/provider/paystack"
	"github.com/amirasaad/causehive/infra/provider/stripepayment"
	infrarepository "github.com/amirasaad/causehive/infra/repository"
	"github.com/amirasaad/causehive/pkg/app"
	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/amirasaad/causehive/pkg/provider/payment"
)

// InitializeDependencies builds every dependency the application needs.
// cleanup closes the bus and cache connections.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	logger := NewLogger(cfg.Log)
	var closers []io.Closer
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				logger.Warn("Failed to close resource", "error", err)
			}
		}
	}
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}

	bus, err := NewEventBus(cfg.EventBus, logger)
	if err != nil {
		return nil, nil, err
	}
	if c, ok := bus.(io.Closer); ok {
		closers = append(closers, c)
	}

	c, err := NewCache(cfg.Cache, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	if cl, ok := c.(io.Closer); ok {
		closers = append(closers, cl)
	}

	gateway, err := NewGateway(cfg.PaymentProviders, logger)
	if err != nil {
		return nil, nil, err
	}

	deps = &app.Deps{
		Uow:      infrarepository.NewUoW(db),
		EventBus: bus,
		Gateway:  gateway,
		Mailer:   logmail.New(logger),
		Cache:    c,
		Logger:   logger,
	}
	logger.Info("Dependencies initialized",
		"event_bus", cfg.EventBus.Driver,
		"cache", cfg.Cache.Driver,
		"gateway", gateway.Name(),
	)
	return deps, cleanup, nil
}

// NewEventBus selects the bus implementation named by cfg.Driver. A
// distributed bus that cannot connect falls back to the async in-memory bus.
func NewEventBus(cfg *config.EventBus, logger *slog.Logger) (eventbus.Bus, error) {
	switch cfg.Driver {
	case "", "memory":
		return infraeventbus.NewWithMemory(logger), nil
	case "memory-async":
		return infraeventbus.NewWithMemoryAsync(logger), nil
	case "redis":
		if strings.TrimSpace(cfg.RedisURL) == "" {
			return nil, fmt.Errorf("redis event bus requires EVENT_BUS_REDIS_URL")
		}
		bus, err := infraeventbus.NewWithRedis(cfg.RedisURL, logger, &infraeventbus.RedisEventBusConfig{
			DLQRetryInterval: cfg.DLQRetryInterval,
			DLQBatchSize:     cfg.DLQBatchSize,
		})
		if err != nil {
			logger.Warn("Redis event bus unavailable, using memory-async", "error", err)
			return infraeventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("kafka event bus requires EVENT_BUS_KAFKA_BROKERS")
		}
		kcfg := infraeventbus.DefaultKafkaEventBusConfig()
		kcfg.GroupID = cfg.KafkaGroupID
		kcfg.TopicPrefix = cfg.KafkaPrefix
		kcfg.DLQRetryInterval = cfg.DLQRetryInterval
		kcfg.DLQBatchSize = cfg.DLQBatchSize
		kcfg.SASLUsername = cfg.KafkaSASLUsername
		kcfg.SASLPassword = cfg.KafkaSASLPassword
		kcfg.TLSEnabled = cfg.KafkaTLS
		bus, err := infraeventbus.NewWithKafka(strings.Join(cfg.KafkaBrokers, ","), logger, kcfg)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, using memory-async", "error", err)
			return infraeventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	}
	return nil, fmt.Errorf("unknown event bus driver %q", cfg.Driver)
}

// NewCache selects the cache named by cfg.Driver.
func NewCache(cfg *config.Cache, redisCfg *config.Redis, logger *slog.Logger) (cache.Cache, error) {
	switch cfg.Driver {
	case "", "memory":
		return infracache.NewMemoryCache(time.Minute), nil
	case "redis":
		c, err := infracache.NewRedisCache(redisCfg.URL, redisCfg.KeyPrefix, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis cache: %w", err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
}

// NewGateway selects the payment gateway named by cfg.Driver.
func NewGateway(cfg *config.PaymentProviders, logger *slog.Logger) (payment.Gateway, error) {
	switch cfg.Driver {
	case "", "paystack":
		if cfg.Paystack == nil || cfg.Paystack.SecretKey == "" {
			return nil, fmt.Errorf("paystack secret key is not set")
		}
		return paystack.New(cfg.Paystack, logger), nil
	case "stripe":
		if cfg.Stripe == nil || cfg.Stripe.ApiKey == "" {
			return nil, fmt.Errorf("stripe api key is not set")
		}
		return stripepayment.New(cfg.Stripe, logger), nil
	case "mock":
		logger.Warn("Using mock payment gateway")
		return mockpayment.NewMockPaymentProvider(), nil
	}
	return nil, fmt.Errorf("unknown payment provider %q", cfg.Driver)
}
