package eventbus

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	defaultKafkaGroupID     = "causehive"
	defaultKafkaTopicPrefix = "causehive.events"
	kafkaDialTimeout        = 5 * time.Second
	headerEventType         = "event_type"
	headerCorrelationID     = "correlation_id"
)

// KafkaEventBusConfig holds configuration for the Kafka event bus.
type KafkaEventBusConfig struct {
	GroupID          string
	TopicPrefix      string
	DLQRetryInterval time.Duration
	DLQBatchSize     int
	SASLUsername     string
	SASLPassword     string
	TLSEnabled       bool
	TLSSkipVerify    bool
}

// DefaultKafkaEventBusConfig returns default configuration for KafkaEventBus.
func DefaultKafkaEventBusConfig() *KafkaEventBusConfig {
	return &KafkaEventBusConfig{
		GroupID:          defaultKafkaGroupID,
		TopicPrefix:      defaultKafkaTopicPrefix,
		DLQRetryInterval: 5 * time.Minute,
		DLQBatchSize:     10,
	}
}

func (c *KafkaEventBusConfig) withDefaults() *KafkaEventBusConfig {
	out := DefaultKafkaEventBusConfig()
	if c == nil {
		return out
	}
	*out = *c
	if strings.TrimSpace(out.GroupID) == "" {
		out.GroupID = defaultKafkaGroupID
	}
	if strings.TrimSpace(out.TopicPrefix) == "" {
		out.TopicPrefix = defaultKafkaTopicPrefix
	}
	if out.DLQBatchSize <= 0 {
		out.DLQBatchSize = 10
	}
	if out.DLQRetryInterval <= 0 {
		out.DLQRetryInterval = 5 * time.Minute
	}
	return out
}

// KafkaEventBus publishes each event type to its own topic; one consumer
// group reader per registered type runs the handlers. Events that fail
// every handler go to a per-type DLQ topic and are replayed periodically.
type KafkaEventBus struct {
	brokers []string
	writer  *kafka.Writer
	dialer  *kafka.Dialer
	ctx     context.Context

	handlers    map[events.EventType][]eventbus.HandlerFunc
	handlersMtx sync.RWMutex

	readers    map[events.EventType]*kafka.Reader
	readersMtx sync.Mutex
	topics     map[string]struct{}
	topicsMtx  sync.Mutex

	logger *slog.Logger
	config *KafkaEventBusConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithKafka connects to the comma-separated brokers, provisions a topic
// for every known event type and starts the DLQ replay worker.
func NewWithKafka(
	brokers string,
	logger *slog.Logger,
	config *KafkaEventBusConfig,
) (*KafkaEventBus, error) {
	parsedBrokers := parseBrokers(brokers)
	if len(parsedBrokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	config = config.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	dialer, transport, err := newKafkaClients(config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus := &KafkaEventBus{
		brokers: parsedBrokers,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(parsedBrokers...),
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			Transport:              transport,
		},
		dialer:   dialer,
		ctx:      ctx,
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		readers:  make(map[events.EventType]*kafka.Reader),
		topics:   make(map[string]struct{}),
		logger:   logger.With("bus", "kafka"),
		config:   config,
		cancel:   cancel,
	}

	if err := bus.provisionTopics(ctx, knownEventTypes()...); err != nil {
		_ = bus.Close()
		return nil, err
	}

	bus.startDLQRetryWorker(ctx)
	bus.logger.Info("🚀 Kafka event bus initialized",
		"group_id", config.GroupID,
		"brokers", parsedBrokers,
		"topic_prefix", config.TopicPrefix,
		"tls_enabled", dialer.TLS != nil,
		"sasl_enabled", dialer.SASLMechanism != nil,
	)
	return bus, nil
}

// Close stops the consumers and the DLQ worker, then flushes the writer.
func (b *KafkaEventBus) Close() error {
	if b == nil {
		return nil
	}
	if b.cancel != nil {
		b.cancel()
	}

	b.readersMtx.Lock()
	for _, r := range b.readers {
		_ = r.Close()
	}
	b.readersMtx.Unlock()

	b.wg.Wait()

	if b.writer != nil {
		return b.writer.Close()
	}
	return nil
}

// Register adds a handler and starts the consumer for its type on first use.
func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()

	b.ensureConsumer(eventType)
}

// Emit publishes the event to its type's topic, keyed by correlation ID so
// one donation or withdrawal flow stays on a single partition.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	if b == nil || b.writer == nil {
		return fmt.Errorf("kafka event bus: writer not initialized")
	}

	value, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}

	eventType := events.EventType(event.Type())
	topic := topicNameFor(b.config.TopicPrefix, eventType)
	if err := b.provisionTopics(ctx, eventType); err != nil {
		return err
	}

	key := partitionKey(event)
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(eventType.String())},
			{Key: headerCorrelationID, Value: []byte(key)},
		},
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: publish %s: %w", eventType, err)
	}
	return nil
}

func (b *KafkaEventBus) ensureConsumer(eventType events.EventType) {
	b.readersMtx.Lock()
	defer b.readersMtx.Unlock()

	if _, exists := b.readers[eventType]; exists {
		return
	}
	if err := b.provisionTopics(b.ctx, eventType); err != nil {
		b.logger.Error("Kafka topic provisioning failed", "error", err, "event_type", eventType)
		return
	}

	reader := b.newReader(topicNameFor(b.config.TopicPrefix, eventType), b.config.GroupID, time.Second)
	b.readers[eventType] = reader

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(b.ctx, eventType, reader)
	}()
}

func (b *KafkaEventBus) newReader(topic, groupID string, maxWait time.Duration) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     groupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     maxWait,
		Dialer:      b.dialer,
	})
}

func (b *KafkaEventBus) consumeLoop(ctx context.Context, eventType events.EventType, reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errorsIsContextCanceled(err) {
				return
			}
			b.logger.Error("Kafka fetch failed", "error", err, "event_type", eventType)
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		if err := b.handleMessage(ctx, eventType, msg); err != nil {
			// left uncommitted; redelivered after a rebalance or restart
			b.logger.Error("Kafka message not acknowledged", "error", err,
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			b.logger.Error("Kafka commit failed", "error", err,
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		}
	}
}

// handleMessage returns an error only when the message must be redelivered.
// Undecodable messages are dropped; handler failures are parked in the DLQ.
func (b *KafkaEventBus) handleMessage(ctx context.Context, expected events.EventType, msg kafka.Message) error {
	msgID := fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
	eventType, evt, err := decodeEnvelope(msg.Value)
	if err != nil {
		b.logger.Error("Dropping undecodable Kafka message", "error", err, "msg_id", msgID)
		return nil
	}
	if eventType != expected {
		b.logger.Warn("Event type does not match topic", "expected", expected, "actual", eventType, "msg_id", msgID)
	}

	handlers := b.getHandlers(eventType)
	if len(handlers) == 0 {
		b.logger.Warn("No handlers registered", "event_type", eventType, "msg_id", msgID)
		return nil
	}
	if executeHandlers(ctx, b.logger, eventType, evt, handlers, msgID) {
		return nil
	}
	return b.publishToDLQ(ctx, eventType, msg)
}

func (b *KafkaEventBus) publishToDLQ(ctx context.Context, eventType events.EventType, src kafka.Message) error {
	topic := dlqTopicNameFor(b.config.TopicPrefix, eventType)
	if err := b.ensureTopics(ctx, topic); err != nil {
		return err
	}
	msg := kafka.Message{
		Topic:   topic,
		Key:     src.Key,
		Value:   src.Value,
		Headers: src.Headers,
		Time:    time.Now().UTC(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: dlq publish failed: %w", err)
	}
	b.logger.Warn("Event parked in DLQ", "event_type", eventType, "dlq_topic", topic)
	return nil
}

func (b *KafkaEventBus) getHandlers(eventType events.EventType) []eventbus.HandlerFunc {
	b.handlersMtx.RLock()
	defer b.handlersMtx.RUnlock()
	out := make([]eventbus.HandlerFunc, len(b.handlers[eventType]))
	copy(out, b.handlers[eventType])
	return out
}

func (b *KafkaEventBus) registeredTypes() []events.EventType {
	b.handlersMtx.RLock()
	defer b.handlersMtx.RUnlock()
	out := make([]events.EventType, 0, len(b.handlers))
	for t := range b.handlers {
		out = append(out, t)
	}
	return out
}

// provisionTopics creates the main and DLQ topics for the given types.
func (b *KafkaEventBus) provisionTopics(ctx context.Context, types ...events.EventType) error {
	topics := make([]string, 0, len(types)*2)
	for _, t := range types {
		topics = append(topics,
			topicNameFor(b.config.TopicPrefix, t),
			dlqTopicNameFor(b.config.TopicPrefix, t),
		)
	}
	return b.ensureTopics(ctx, topics...)
}

func (b *KafkaEventBus) ensureTopics(ctx context.Context, topics ...string) error {
	b.topicsMtx.Lock()
	defer b.topicsMtx.Unlock()

	missing := make([]kafka.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		if _, ok := b.topics[topic]; !ok {
			missing = append(missing, kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
		}
	}
	if len(missing) == 0 {
		return nil
	}

	conn, err := b.controllerConn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	for _, tc := range missing {
		if err := conn.CreateTopics(tc); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
			return fmt.Errorf("kafka event bus: create topic %s: %w", tc.Topic, err)
		}
		b.topics[tc.Topic] = struct{}{}
	}
	return nil
}

// controllerConn dials the cluster controller, the only broker that accepts
// topic creation.
func (b *KafkaEventBus) controllerConn(ctx context.Context) (*kafka.Conn, error) {
	conn, err := b.dialer.DialContext(ctx, "tcp", b.brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	controller, err := conn.Controller()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("kafka event bus: lookup controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	if addr == conn.RemoteAddr().String() {
		return conn, nil
	}
	_ = conn.Close()
	conn, err = b.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("kafka event bus: dial controller: %w", err)
	}
	return conn, nil
}

func (b *KafkaEventBus) startDLQRetryWorker(ctx context.Context) {
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

// processAllDLQs replays parked events of every type that has handlers.
func (b *KafkaEventBus) processAllDLQs(ctx context.Context) {
	for _, eventType := range b.registeredTypes() {
		if ctx.Err() != nil {
			return
		}
		b.retryDLQ(ctx, eventType)
	}
}

func (b *KafkaEventBus) retryDLQ(ctx context.Context, eventType events.EventType) {
	reader := b.newReader(
		dlqTopicNameFor(b.config.TopicPrefix, eventType),
		b.config.GroupID+"-dlq-retry",
		250*time.Millisecond,
	)
	defer func() { _ = reader.Close() }()

	replayed := 0
	for i := 0; i < b.config.DLQBatchSize; i++ {
		fetchCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		msg, err := reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			break
		}
		if err := b.writer.WriteMessages(ctx, kafka.Message{
			Topic:   topicNameFor(b.config.TopicPrefix, eventType),
			Key:     msg.Key,
			Value:   msg.Value,
			Headers: msg.Headers,
			Time:    time.Now().UTC(),
		}); err != nil {
			b.logger.Error("DLQ replay failed", "error", err, "event_type", eventType)
			break
		}
		_ = reader.CommitMessages(ctx, msg)
		replayed++
	}
	if replayed > 0 {
		b.logger.Info("DLQ events replayed", "event_type", eventType, "count", replayed)
	}
}

func newKafkaClients(config *KafkaEventBusConfig) (*kafka.Dialer, *kafka.Transport, error) {
	var tlsConfig *tls.Config
	if config.TLSEnabled {
		tlsConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: config.TLSSkipVerify, //nolint:gosec
		}
	}
	mechanism, err := saslMechanism(config)
	if err != nil {
		return nil, nil, err
	}

	dialer := &kafka.Dialer{
		ClientID:      config.GroupID,
		Timeout:       kafkaDialTimeout,
		DualStack:     true,
		TLS:           tlsConfig,
		SASLMechanism: mechanism,
	}
	transport := &kafka.Transport{
		ClientID:    config.GroupID,
		DialTimeout: kafkaDialTimeout,
		TLS:         tlsConfig,
		SASL:        mechanism,
	}
	return dialer, transport, nil
}

func saslMechanism(config *KafkaEventBusConfig) (sasl.Mechanism, error) {
	username := strings.TrimSpace(config.SASLUsername)
	password := strings.TrimSpace(config.SASLPassword)
	switch {
	case username == "" && password == "":
		return nil, nil
	case username == "" || password == "":
		return nil, fmt.Errorf("kafka event bus: sasl username and password are required")
	}
	return plain.Mechanism{Username: username, Password: password}, nil
}

func encodeEnvelope(event events.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", event.Type(), err)
	}
	return json.Marshal(envelope{Type: event.Type(), Payload: payload})
}

func decodeEnvelope(raw []byte) (events.EventType, events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	constructor, ok := events.EventTypes[env.Type]
	if !ok {
		return "", nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return "", nil, fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}
	return events.EventType(env.Type), evt, nil
}

// partitionKey is the flow's correlation ID, or the event type for events
// that carry no flow metadata.
func partitionKey(event events.Event) string {
	if c, ok := event.(interface{ Correlation() uuid.UUID }); ok && c.Correlation() != uuid.Nil {
		return c.Correlation().String()
	}
	return event.Type()
}

func knownEventTypes() []events.EventType {
	out := make([]events.EventType, 0, len(events.EventTypes))
	for name := range events.EventTypes {
		out = append(out, events.EventType(name))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func topicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.%s", topicPrefix(prefix), strings.ToLower(eventType.String()))
}

func dlqTopicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.dlq.%s", topicPrefix(prefix), strings.ToLower(eventType.String()))
}

func topicPrefix(prefix string) string {
	if prefix = strings.TrimSpace(prefix); prefix == "" {
		return defaultKafkaTopicPrefix
	}
	return prefix
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
