package cart

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/google/uuid"
)

// Repository defines data access for carts and their items.
type Repository interface {
	Create(ctx context.Context, c *cart.Cart) error
	// UpdateStatus persists the cart status.
	UpdateStatus(ctx context.Context, c *cart.Cart) error
	// Get returns the cart with its items loaded.
	Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
	// ListActiveByUser returns the user's active carts, newest first,
	// with items loaded.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SaveItem inserts or updates a cart line.
	SaveItem(ctx context.Context, item *cart.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
