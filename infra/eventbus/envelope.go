package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func errorsIsContextCanceled(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "context canceled") || strings.Contains(err.Error(), "operation was canceled"))
}

func executeHandlers(
	ctx context.Context,
	logger *slog.Logger,
	eventType events.EventType,
	evt events.Event,
	handlers []eventbus.HandlerFunc,
	msgID string,
) bool {
	var wg sync.WaitGroup
	var mu sync.Mutex
	success := true

	for _, handler := range handlers {
		wg.Add(1)
		go func(h eventbus.HandlerFunc) {
			defer wg.Done()
			if err := h(ctx, evt); err != nil {
				mu.Lock()
				success = false
				mu.Unlock()
				logger.Error("handler error", "error", err, "event_type", eventType, "msg_id", msgID)
			}
		}(handler)
	}

	wg.Wait()
	return success
}
