package cause

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCauseRequest is the body for submitting a cause.
type CreateCauseRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Description   string          `json:"description" validate:"required"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CoverImageURL string          `json:"cover_image_url" validate:"omitempty,url"`
}

// AdminUpdateRequest is a partial staff edit.
type AdminUpdateRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CoverImageURL *string          `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,oneof=under_review approved rejected ongoing completed cancelled"`
}

// RejectRequest carries the reason shown to the organizer.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// CauseDTO is the API representation of a cause.
type CauseDTO struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	CategoryID         *uuid.UUID      `json:"category_id,omitempty"`
	Description        string          `json:"description"`
	OrganizerID        uuid.UUID       `json:"organizer_id"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	Status             string          `json:"status"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	CoverImageURL      string          `json:"cover_image_url,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToCauseDTO maps a domain cause to its API form.
func ToCauseDTO(c *cause.Cause) *CauseDTO {
	return &CauseDTO{
		ID:                 c.ID,
		Name:               c.Name,
		Slug:               c.Slug,
		CategoryID:         c.CategoryID,
		Description:        c.Description,
		OrganizerID:        c.OrganizerID,
		TargetAmount:       c.TargetAmount,
		CurrentAmount:      c.CurrentAmount,
		ProgressPercentage: c.ProgressPercentage(),
		Status:             string(c.Status),
		RejectionReason:    c.RejectionReason,
		CoverImageURL:      c.CoverImageURL,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
