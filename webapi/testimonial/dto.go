package testimonial

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/google/uuid"
)

type CreateInput struct {
	CauseID    uuid.UUID `json:"cause_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string    `json:"review_text" validate:"required,max=1000"`
}

type UpdateInput struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required,max=1000"`
}

type ReportInput struct {
	Reason      string `json:"reason" validate:"required,oneof=spam inappropriate offensive fake other"`
	Description string `json:"description" validate:"max=1000"`
}

// ModerationInput is a staff decision. Omitted fields are left unchanged.
type ModerationInput struct {
	IsApproved      *bool   `json:"is_approved,omitempty"`
	IsFeatured      *bool   `json:"is_featured,omitempty"`
	ModerationNotes *string `json:"moderation_notes,omitempty"`
}

type TestimonialDTO struct {
	ID                 uuid.UUID `json:"id"`
	CauseID            uuid.UUID `json:"cause_id"`
	UserID             uuid.UUID `json:"user_id"`
	Rating             int       `json:"rating"`
	ReviewText         string    `json:"review_text"`
	IsApproved         bool      `json:"is_approved"`
	IsFeatured         bool      `json:"is_featured"`
	IsVerifiedDonation bool      `json:"is_verified_donation"`
	LikesCount         int64     `json:"likes_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AdminTestimonialDTO adds the fields only moderators see.
type AdminTestimonialDTO struct {
	TestimonialDTO
	ModerationNotes string `json:"moderation_notes,omitempty"`
}

type ReportDTO struct {
	ID            uuid.UUID  `json:"id"`
	TestimonialID uuid.UUID  `json:"testimonial_id"`
	ReporterID    uuid.UUID  `json:"reporter_id"`
	Reason        string     `json:"reason"`
	Description   string     `json:"description,omitempty"`
	IsResolved    bool       `json:"is_resolved"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

func toTestimonialDTO(t *testimonial.Testimonial) *TestimonialDTO {
	return &TestimonialDTO{
		ID:                 t.ID,
		CauseID:            t.CauseID,
		UserID:             t.UserID,
		Rating:             t.Rating,
		ReviewText:         t.ReviewText,
		IsApproved:         t.IsApproved,
		IsFeatured:         t.IsFeatured,
		IsVerifiedDonation: t.IsVerifiedDonation,
		LikesCount:         t.LikesCount,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func toAdminDTO(t *testimonial.Testimonial) *AdminTestimonialDTO {
	return &AdminTestimonialDTO{TestimonialDTO: *toTestimonialDTO(t), ModerationNotes: t.ModerationNotes}
}

func toReportDTO(r *testimonial.Report) *ReportDTO {
	return &ReportDTO{
		ID:            r.ID,
		TestimonialID: r.TestimonialID,
		ReporterID:    r.ReporterID,
		Reason:        string(r.Reason),
		Description:   r.Description,
		IsResolved:    r.IsResolved,
		CreatedAt:     r.CreatedAt,
		ResolvedAt:    r.ResolvedAt,
	}
}
