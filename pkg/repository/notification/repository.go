package notification

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
)

// Filter narrows notification lists. A set UserID matches that user's
// notifications, plus the staff inbox when Staff is set; nil matches all.
type Filter struct {
	UserID          *uuid.UUID
	Staff           bool
	UnreadOnly      bool
	Type            notification.Type
	Priority        notification.Priority
	IncludeArchived bool
}

// Repository defines data access for notifications.
type Repository interface {
	Create(ctx context.Context, n *notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	List(ctx context.Context, filter Filter, page dto.PageRequest) ([]*notification.Notification, int64, error)
	// MarkAllRead marks unread notifications matching filter as read and
	// returns how many changed.
	MarkAllRead(ctx context.Context, filter Filter) (int64, error)
	UnreadCount(ctx context.Context, filter Filter) (int64, error)
}
