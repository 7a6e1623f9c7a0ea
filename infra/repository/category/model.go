package category

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/category"
	"github.com/google/uuid"
)

// Category represents a category record in the database.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null;size:100"`
	Slug        string    `gorm:"uniqueIndex;not null;size:120"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// row is a category joined with its public cause count.
type row struct {
	Category
	CauseCount int64
}

func mapToModel(c *category.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func mapToDomain(m *Category) *category.Category {
	return &category.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
	}
}
