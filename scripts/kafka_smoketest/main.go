// Command kafka_smoketest round-trips a User.Registered event through the
// Kafka event bus against a local cluster.
//
//	BROKERS=localhost:9092 go run ./scripts/kafka_smoketest
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	infraeventbus "github.com/amirasaad/causehive/infra/eventbus"
	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/google/uuid"
)

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// RunSmokeTest emits one event and waits for the registered handler.
func RunSmokeTest(ctx context.Context, logger *slog.Logger) error {
	bus, err := infraeventbus.NewWithKafka(env("BROKERS", "localhost:9092"), logger, &infraeventbus.KafkaEventBusConfig{
		GroupID:     env("GROUP_ID", "causehive-smoketest-"+uuid.NewString()[:8]),
		TopicPrefix: env("TOPIC_PREFIX", "causehive.smoketest"),
	})
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	want := &events.UserRegistered{
		FlowEvent: events.NewFlowEvent(uuid.Nil),
		UserID:    uuid.New(),
		Email:     "smoketest@causehive.local",
	}
	received := make(chan *events.UserRegistered, 1)
	bus.Register(events.EventTypeUserRegistered, func(_ context.Context, e events.Event) error {
		if ur, ok := e.(*events.UserRegistered); ok && ur.UserID == want.UserID {
			received <- ur
		}
		return nil
	})

	if err := bus.Emit(ctx, want); err != nil {
		return err
	}
	logger.Info("produced", "event", want.Type(), "user_id", want.UserID)

	select {
	case got := <-received:
		logger.Info("consumed", "event", got.Type(), "email", got.Email)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := RunSmokeTest(ctx, logger); err != nil {
		logger.Error("kafka smoke test failed", "error", err)
		os.Exit(1)
	}
	logger.Info("kafka smoke test passed")
}
