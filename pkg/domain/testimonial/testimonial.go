package testimonial

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	// ErrTestimonialNotFound is returned when a testimonial cannot be found.
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrReportNotFound is returned when a report cannot be found.
	ErrReportNotFound = errors.New("report not found")
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrReviewTooLong is returned when the review exceeds MaxReviewLength.
	ErrReviewTooLong = errors.New("review must be at most 1000 characters")
	// ErrReviewRequired is returned for an empty review.
	ErrReviewRequired = errors.New("review text is required")
	// ErrAlreadyReviewed is returned when a user reviews the same cause twice.
	ErrAlreadyReviewed = errors.New("you have already reviewed this cause")
	// ErrAlreadyReported is returned when a user reports the same testimonial twice.
	ErrAlreadyReported = errors.New("you have already reported this testimonial")
	// ErrInvalidReason is returned for an unknown report reason.
	ErrInvalidReason = errors.New("invalid report reason")
)

// MaxReviewLength is the review limit in characters.
const MaxReviewLength = 1000

// Testimonial is a rated review of a cause by a user.
type Testimonial struct {
	ID                 uuid.UUID
	CauseID            uuid.UUID
	UserID             uuid.UUID
	Rating             int
	ReviewText         string
	IsApproved         bool
	IsFeatured         bool
	IsVerifiedDonation bool
	ModerationNotes    string
	LikesCount         int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks rating and review constraints.
func Validate(rating int, review string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if strings.TrimSpace(review) == "" {
		return ErrReviewRequired
	}
	if utf8.RuneCountInString(review) > MaxReviewLength {
		return ErrReviewTooLong
	}
	return nil
}

// New creates an approved testimonial.
func New(causeID, userID uuid.UUID, rating int, review string, verified bool) (*Testimonial, error) {
	if err := Validate(rating, review); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Testimonial{
		ID:                 uuid.New(),
		CauseID:            causeID,
		UserID:             userID,
		Rating:             rating,
		ReviewText:         strings.TrimSpace(review),
		IsApproved:         true,
		IsVerifiedDonation: verified,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// Edit updates rating and review text.
func (t *Testimonial) Edit(rating int, review string) error {
	if err := Validate(rating, review); err != nil {
		return err
	}
	t.Rating = rating
	t.ReviewText = strings.TrimSpace(review)
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// ReportReason classifies an abuse report.
type ReportReason string

const (
	ReasonSpam          ReportReason = "spam"
	ReasonInappropriate ReportReason = "inappropriate"
	ReasonOffensive     ReportReason = "offensive"
	ReasonFake          ReportReason = "fake"
	ReasonOther         ReportReason = "other"
)

// Valid reports whether r is a known reason.
func (r ReportReason) Valid() bool {
	switch r {
	case ReasonSpam, ReasonInappropriate, ReasonOffensive, ReasonFake, ReasonOther:
		return true
	}
	return false
}

// Report is a user's complaint about a testimonial.
type Report struct {
	ID            uuid.UUID
	TestimonialID uuid.UUID
	ReporterID    uuid.UUID
	Reason        ReportReason
	Description   string
	IsResolved    bool
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// NewReport creates an unresolved report.
func NewReport(testimonialID, reporterID uuid.UUID, reason ReportReason, description string) (*Report, error) {
	if !reason.Valid() {
		return nil, ErrInvalidReason
	}
	return &Report{
		ID:            uuid.New(),
		TestimonialID: testimonialID,
		ReporterID:    reporterID,
		Reason:        reason,
		Description:   strings.TrimSpace(description),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Resolve closes the report.
func (r *Report) Resolve() {
	if r.IsResolved {
		return
	}
	now := time.Now().UTC()
	r.IsResolved = true
	r.ResolvedAt = &now
}

// Stats summarises the approved testimonials of a cause.
type Stats struct {
	AverageRating float64       `json:"average_rating"`
	Total         int64         `json:"total_testimonials"`
	Distribution  map[int]int64 `json:"rating_distribution"`
}
