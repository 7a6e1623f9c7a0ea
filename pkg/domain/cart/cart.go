package cart

import (
	"errors"
	"time"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCartNotFound is returned when a cart cannot be found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line cannot be found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartEmpty is returned when checking out a cart with no items.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCartNotActive is returned when mutating a completed or abandoned cart.
	ErrCartNotActive = errors.New("cart is not active")
	// ErrCartIDRequired is returned when an anonymous caller omits the cart id.
	ErrCartIDRequired = errors.New("cart_id is required for anonymous users")
	// ErrInvalidQuantity is returned for a quantity below one on insert.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Status is the lifecycle state of a cart.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Item is a single cause line in a cart.
type Item struct {
	ID             uuid.UUID
	CartID         uuid.UUID
	CauseID        uuid.UUID
	DonationAmount decimal.Decimal
	Quantity       int
	CreatedAt      time.Time
}

// Total is the amount charged for the line.
func (i *Item) Total() decimal.Decimal {
	return i.DonationAmount.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds pending donations before checkout. A nil UserID marks an
// anonymous cart addressed only by its ID.
type Cart struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Status    Status
	Items     []*Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates an active cart for the given user (nil for anonymous).
func New(userID *uuid.UUID) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the cart can still be modified.
func (c *Cart) IsActive() bool {
	return c.Status == StatusActive
}

// IsAnonymous reports whether the cart has no owner.
func (c *Cart) IsAnonymous() bool {
	return c.UserID == nil
}

// OwnedBy reports whether the cart belongs to userID. Anonymous carts are
// reachable by anyone holding their ID.
func (c *Cart) OwnedBy(userID *uuid.UUID) bool {
	if c.UserID == nil {
		return true
	}
	return userID != nil && *c.UserID == *userID
}

// TotalAmount is the sum of amount × quantity over all lines.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Total())
	}
	return total
}

// ItemCount is the number of distinct cause lines.
func (c *Cart) ItemCount() int {
	return len(c.Items)
}

// FindItem returns the line for causeID, if any.
func (c *Cart) FindItem(causeID uuid.UUID) *Item {
	for _, item := range c.Items {
		if item.CauseID == causeID {
			return item
		}
	}
	return nil
}

// AddItem adds a donation line. An existing line for the same cause gets
// its quantity increased and its amount replaced. The returned bool is
// true when a new line was created.
func (c *Cart) AddItem(causeID uuid.UUID, amount decimal.Decimal, quantity int) (*Item, bool, error) {
	if !c.IsActive() {
		return nil, false, ErrCartNotActive
	}
	if !amount.IsPositive() {
		return nil, false, domain.ErrAmountMustBePositive
	}
	if quantity < 1 {
		return nil, false, ErrInvalidQuantity
	}
	amount = domain.Amount(amount)
	c.UpdatedAt = time.Now().UTC()
	if existing := c.FindItem(causeID); existing != nil {
		existing.Quantity += quantity
		existing.DonationAmount = amount
		return existing, false, nil
	}
	item := &Item{
		ID:             uuid.New(),
		CartID:         c.ID,
		CauseID:        causeID,
		DonationAmount: amount,
		Quantity:       quantity,
		CreatedAt:      c.UpdatedAt,
	}
	c.Items = append(c.Items, item)
	return item, true, nil
}

// Complete marks the cart as checked out.
func (c *Cart) Complete() error {
	if !c.IsActive() {
		return ErrCartNotActive
	}
	c.Status = StatusCompleted
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Abandon retires an active cart.
func (c *Cart) Abandon() {
	if c.IsActive() {
		c.Status = StatusAbandoned
		c.UpdatedAt = time.Now().UTC()
	}
}
