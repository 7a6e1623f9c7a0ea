package cart

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart represents a cart record in the database.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"size:20;index;not null"`
	Items     []Item     `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Cart model.
func (Cart) TableName() string {
	return "carts"
}

// Item represents a cart line in the database.
type Item struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_cause"`
	CauseID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_cause"`
	DonationAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity       int             `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for the Item model.
func (Item) TableName() string {
	return "cart_items"
}

func mapToModel(c *cart.Cart) *Cart {
	return &Cart{
		ID:        c.ID,
		UserID:    c.UserID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapItemToModel(i *cart.Item) *Item {
	return &Item{
		ID:             i.ID,
		CartID:         i.CartID,
		CauseID:        i.CauseID,
		DonationAmount: i.DonationAmount,
		Quantity:       i.Quantity,
		CreatedAt:      i.CreatedAt,
	}
}

func mapToDomain(m *Cart) *cart.Cart {
	c := &cart.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		Status:    cart.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Items:     make([]*cart.Item, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		c.Items = append(c.Items, &cart.Item{
			ID:             it.ID,
			CartID:         it.CartID,
			CauseID:        it.CauseID,
			DonationAmount: it.DonationAmount,
			Quantity:       it.Quantity,
			CreatedAt:      it.CreatedAt,
		})
	}
	return c
}
