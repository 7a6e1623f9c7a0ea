package cause

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cause represents a cause record in the database.
type Cause struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"uniqueIndex;not null;size:255"`
	Slug            string          `gorm:"uniqueIndex;not null;size:255"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	Description     string          `gorm:"type:text"`
	OrganizerID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	TargetAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"size:20;index;not null"`
	RejectionReason string          `gorm:"type:text"`
	CoverImageURL   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for the Cause model.
func (Cause) TableName() string {
	return "causes"
}

func mapToModel(c *cause.Cause) *Cause {
	return &Cause{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		CategoryID:      c.CategoryID,
		Description:     c.Description,
		OrganizerID:     c.OrganizerID,
		TargetAmount:    c.TargetAmount,
		CurrentAmount:   c.CurrentAmount,
		Status:          string(c.Status),
		RejectionReason: c.RejectionReason,
		CoverImageURL:   c.CoverImageURL,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func mapToDomain(m *Cause) *cause.Cause {
	return &cause.Cause{
		ID:              m.ID,
		Name:            m.Name,
		Slug:            m.Slug,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		OrganizerID:     m.OrganizerID,
		TargetAmount:    m.TargetAmount,
		CurrentAmount:   m.CurrentAmount,
		Status:          cause.Status(m.Status),
		RejectionReason: m.RejectionReason,
		CoverImageURL:   m.CoverImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
