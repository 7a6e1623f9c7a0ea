package testimonial

import (
	"time"

	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/google/uuid"
)

// Testimonial represents a testimonial record in the database.
type Testimonial struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CauseID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_testimonials_cause_user"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_testimonials_cause_user"`
	Rating             int       `gorm:"not null"`
	ReviewText         string    `gorm:"type:text"`
	IsApproved         bool      `gorm:"index;not null"`
	IsFeatured         bool      `gorm:"not null"`
	IsVerifiedDonation bool      `gorm:"not null"`
	ModerationNotes    string    `gorm:"type:text"`
	LikesCount         int64     `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for the Testimonial model.
func (Testimonial) TableName() string {
	return "testimonials"
}

// Like records a user's like of a testimonial.
type Like struct {
	TestimonialID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the Like model.
func (Like) TableName() string {
	return "testimonial_likes"
}

// Report represents a testimonial report record in the database.
type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TestimonialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_testimonial_reports_reporter"`
	ReporterID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_testimonial_reports_reporter"`
	Reason        string    `gorm:"size:20;not null"`
	Description   string    `gorm:"type:text"`
	IsResolved    bool      `gorm:"index;not null"`
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// TableName specifies the table name for the Report model.
func (Report) TableName() string {
	return "testimonial_reports"
}

func mapToModel(t *testimonial.Testimonial) *Testimonial {
	return &Testimonial{
		ID:                 t.ID,
		CauseID:            t.CauseID,
		UserID:             t.UserID,
		Rating:             t.Rating,
		ReviewText:         t.ReviewText,
		IsApproved:         t.IsApproved,
		IsFeatured:         t.IsFeatured,
		IsVerifiedDonation: t.IsVerifiedDonation,
		ModerationNotes:    t.ModerationNotes,
		LikesCount:         t.LikesCount,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func mapToDomain(m *Testimonial) *testimonial.Testimonial {
	return &testimonial.Testimonial{
		ID:                 m.ID,
		CauseID:            m.CauseID,
		UserID:             m.UserID,
		Rating:             m.Rating,
		ReviewText:         m.ReviewText,
		IsApproved:         m.IsApproved,
		IsFeatured:         m.IsFeatured,
		IsVerifiedDonation: m.IsVerifiedDonation,
		ModerationNotes:    m.ModerationNotes,
		LikesCount:         m.LikesCount,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func mapReportToModel(r *testimonial.Report) *Report {
	return &Report{
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

func mapModelToReport(m *Report) *testimonial.Report {
	return &testimonial.Report{
		ID:            m.ID,
		TestimonialID: m.TestimonialID,
		ReporterID:    m.ReporterID,
		Reason:        testimonial.ReportReason(m.Reason),
		Description:   m.Description,
		IsResolved:    m.IsResolved,
		CreatedAt:     m.CreatedAt,
		ResolvedAt:    m.ResolvedAt,
	}
}
