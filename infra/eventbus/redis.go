package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"

	"github.com/redis/go-redis/v9"
)

// RedisEventBusConfig holds tuning options for the Redis Streams bus.
type RedisEventBusConfig struct {
	DLQRetryInterval time.Duration
	DLQBatchSize     int
}

// DefaultRedisEventBusConfig returns default configuration for RedisEventBus.
func DefaultRedisEventBusConfig() *RedisEventBusConfig {
	return &RedisEventBusConfig{
		DLQRetryInterval: 5 * time.Minute,
		DLQBatchSize:     10,
	}
}

// RedisEventBus implements an event bus on top of Redis Streams. Each event
// type gets its own stream, consumer group and dead letter stream.
type RedisEventBus struct {
	client *redis.Client
	logger *slog.Logger
	config *RedisEventBusConfig

	handlers    map[events.EventType][]eventbus.HandlerFunc
	handlersMtx sync.RWMutex
	consumers   map[events.EventType]struct{}
	consumerMtx sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a new Redis-backed event bus.
// url: Redis connection URL (e.g., "redis://localhost:6379")
func NewWithRedis(url string, logger *slog.Logger, config *RedisEventBusConfig) (*RedisEventBus, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("redis event bus: url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}

	if config == nil {
		config = DefaultRedisEventBusConfig()
	}
	if config.DLQBatchSize <= 0 {
		config.DLQBatchSize = 10
	}
	if config.DLQRetryInterval <= 0 {
		config.DLQRetryInterval = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus := &RedisEventBus{
		client:    client,
		logger:    logger.With("bus", "redis"),
		config:    config,
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		consumers: make(map[events.EventType]struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}
	bus.startDLQRetryWorker(ctx)

	logger.Info("🚀 Redis event bus initialized",
		"dlq_retry_interval", config.DLQRetryInterval,
		"dlq_batch_size", config.DLQBatchSize,
	)
	return bus, nil
}

// Close stops the consumers and closes the client.
func (b *RedisEventBus) Close() error {
	if b == nil {
		return nil
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	return b.client.Close()
}

// Emit publishes an event to the stream for its type.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	if b.client == nil {
		return fmt.Errorf("redis event bus: client not initialized")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis event bus: marshal failed: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return fmt.Errorf("redis event bus: envelope marshal failed: %w", err)
	}

	stream := streamNameFor(events.EventType(event.Type()))
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(envBytes)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}

	b.logger.Debug("event emitted", "type", event.Type(), "stream", stream)
	return nil
}

// Register adds a handler and starts one consumer per event type.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()

	b.ensureConsumer(eventType)
}

func (b *RedisEventBus) ensureConsumer(eventType events.EventType) {
	b.consumerMtx.Lock()
	defer b.consumerMtx.Unlock()
	if _, ok := b.consumers[eventType]; ok {
		return
	}

	stream := streamNameFor(eventType)
	group := groupNameFor(eventType)
	err := b.client.XGroupCreateMkStream(b.ctx, stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
		return
	}
	b.consumers[eventType] = struct{}{}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(b.ctx, eventType)
	}()
	b.logger.Info("handler registered", "event_type", eventType, "stream", stream)
}

func (b *RedisEventBus) consumeLoop(ctx context.Context, eventType events.EventType) {
	stream := streamNameFor(eventType)
	group := groupNameFor(eventType)
	consumer := consumerNameFor(eventType)

	for {
		if ctx.Err() != nil {
			return
		}
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    2 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			b.logger.Error("error reading from stream", "error", err, "stream", stream)
			time.Sleep(time.Second)
			continue
		}

		for _, s := range res {
			for _, msg := range s.Messages {
				b.processMessage(ctx, eventType, msg)
				if err := b.client.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
					b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
				}
			}
		}
	}
}

func (b *RedisEventBus) processMessage(ctx context.Context, eventType events.EventType, msg redis.XMessage) {
	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.logger.Error("message without event payload", "msg_id", msg.ID)
		return
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		b.logger.Error("failed to unmarshal envelope", "error", err, "msg_id", msg.ID)
		return
	}

	constructor, ok := events.EventTypes[env.Type]
	if !ok {
		b.logger.Error("unknown event type", "event_type", env.Type)
		b.pushToDLQ(ctx, eventType, raw)
		return
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		b.logger.Error("failed to unmarshal payload", "error", err, "event_type", env.Type)
		b.pushToDLQ(ctx, eventType, raw)
		return
	}

	if !executeHandlers(ctx, b.logger, eventType, evt, b.getHandlers(eventType), msg.ID) {
		b.pushToDLQ(ctx, eventType, raw)
	}
}

func (b *RedisEventBus) getHandlers(eventType events.EventType) []eventbus.HandlerFunc {
	b.handlersMtx.RLock()
	defer b.handlersMtx.RUnlock()
	return append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
}

// pushToDLQ stores the raw envelope on the dead letter stream of its type.
func (b *RedisEventBus) pushToDLQ(ctx context.Context, eventType events.EventType, raw string) {
	dlq := dlqStreamName(eventType)
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: dlq,
		Values: map[string]any{"event": raw, "failed_at": time.Now().UTC().Format(time.RFC3339)},
	}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlq)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq, "event_type", eventType)
}

func (b *RedisEventBus) startDLQRetryWorker(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.config.DLQRetryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.processAllDLQs(ctx)
			}
		}
	}()
}

// processAllDLQs moves up to DLQBatchSize dead letters per registered type
// back onto their original streams.
func (b *RedisEventBus) processAllDLQs(ctx context.Context) {
	b.consumerMtx.Lock()
	types := make([]events.EventType, 0, len(b.consumers))
	for t := range b.consumers {
		types = append(types, t)
	}
	b.consumerMtx.Unlock()

	for _, t := range types {
		b.retryDLQ(ctx, t)
	}
}

func (b *RedisEventBus) retryDLQ(ctx context.Context, eventType events.EventType) {
	dlq := dlqStreamName(eventType)
	msgs, err := b.client.XRangeN(ctx, dlq, "-", "+", int64(b.config.DLQBatchSize)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			b.logger.Error("failed to read DLQ", "error", err, "stream", dlq)
		}
		return
	}

	for _, msg := range msgs {
		raw, ok := msg.Values["event"].(string)
		if ok {
			if err := b.client.XAdd(ctx, &redis.XAddArgs{
				Stream: streamNameFor(eventType),
				Values: map[string]any{"event": raw},
			}).Err(); err != nil {
				b.logger.Error("failed to republish DLQ message", "error", err, "event_type", eventType)
				return
			}
		}
		if err := b.client.XDel(ctx, dlq, msg.ID).Err(); err != nil {
			b.logger.Error("failed to delete DLQ message", "error", err, "msg_id", msg.ID)
		}
	}
	if len(msgs) > 0 {
		b.logger.Info("republished DLQ messages", "event_type", eventType, "count", len(msgs))
	}
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
