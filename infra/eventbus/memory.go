package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to the handlers registered
// for their type. Handler errors are logged and never returned to the emitter.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryEventBus{
		handlers:  make(map[events.EventType][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := events.EventType(event.Type())

	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
	b.published = append(b.published, event)
	b.mu.Unlock()

	for _, handler := range handlers {
		b.safeHandle(ctx, eventType, event, handler)
	}
	return nil
}

func (b *MemoryEventBus) safeHandle(
	ctx context.Context,
	eventType events.EventType,
	event events.Event,
	handler eventbus.HandlerFunc,
) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "type", eventType, "panic", r)
		}
	}()
	if err := handler(ctx, event); err != nil {
		b.logger.Error("failed to process event", "type", eventType, "error", err)
	}
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of every event emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event{}, b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

type queuedEvent struct {
	ctx   context.Context
	event events.Event
}

// MemoryAsyncEventBus queues events on a buffered channel and runs each
// one's handlers on its own goroutine.
type MemoryAsyncEventBus struct {
	handlers map[events.EventType][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan queuedEvent
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewWithMemoryAsync creates a new asynchronous in-memory event bus.
func NewWithMemoryAsync(logger *slog.Logger) *MemoryAsyncEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &MemoryAsyncEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		eventCh:  make(chan queuedEvent, 100),
		log:      logger.With("bus", "memory-async"),
	}
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// Emit enqueues the event. Handlers run with a context detached from the
// caller's cancellation so an HTTP request finishing does not abort them.
func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	b.wg.Add(1)
	b.eventCh <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}
	return nil
}

// Wait blocks until every emitted event has been handled.
func (b *MemoryAsyncEventBus) Wait() {
	b.wg.Wait()
}

func (b *MemoryAsyncEventBus) process() {
	for w := range b.eventCh {
		go func(w queuedEvent) {
			defer b.wg.Done()
			eventType := events.EventType(w.event.Type())
			b.mu.RLock()
			handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
			b.mu.RUnlock()
			for _, handler := range handlers {
				func() {
					defer func() {
						if r := recover(); r != nil {
							b.log.Error("panic recovered in event handler", "type", eventType, "panic", r)
						}
					}()
					if err := handler(w.ctx, w.event); err != nil {
						b.log.Error("failed to process event", "type", eventType, "error", err)
					}
				}()
			}
		}(w)
	}
}

var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)
