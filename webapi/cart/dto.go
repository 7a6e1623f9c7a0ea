package cart

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds a cause to a cart. Anonymous callers pass the cart_id
// returned by their first add.
type AddItemRequest struct {
	CartID         *uuid.UUID      `json:"cart_id,omitempty"`
	CauseID        uuid.UUID       `json:"cause_id" validate:"required"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	Quantity       int             `json:"quantity" validate:"gte=0,lte=1000"`
}

// UpdateItemRequest changes a line. A quantity of zero removes it.
type UpdateItemRequest struct {
	DonationAmount *decimal.Decimal `json:"donation_amount,omitempty"`
	Quantity       *int             `json:"quantity,omitempty" validate:"omitempty,lte=1000"`
}

type ItemDTO struct {
	ID             uuid.UUID       `json:"id"`
	CauseID        uuid.UUID       `json:"cause_id"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CartDTO struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id,omitempty"`
	Status      string          `json:"status"`
	Items       []*ItemDTO      `json:"items"`
	ItemCount   int             `json:"item_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AddItemResponse carries the line that changed and the cart around it.
type AddItemResponse struct {
	Cart *CartDTO `json:"cart"`
	Item *ItemDTO `json:"item"`
}

func toItemDTO(i *cart.Item) *ItemDTO {
	return &ItemDTO{
		ID:             i.ID,
		CauseID:        i.CauseID,
		DonationAmount: i.DonationAmount,
		Quantity:       i.Quantity,
		Total:          i.Total(),
		CreatedAt:      i.CreatedAt,
	}
}

func toCartDTO(c *cart.Cart) *CartDTO {
	items := make([]*ItemDTO, 0, len(c.Items))
	for _, i := range c.Items {
		items = append(items, toItemDTO(i))
	}
	return &CartDTO{
		ID:          c.ID,
		UserID:      c.UserID,
		Status:      string(c.Status),
		Items:       items,
		ItemCount:   c.ItemCount(),
		TotalAmount: c.TotalAmount(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
