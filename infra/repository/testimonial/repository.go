package testimonial

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/dto"
	repo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const unresolvedReport = "EXISTS (SELECT 1 FROM testimonial_reports r " +
	"WHERE r.testimonial_id = testimonials.id AND r.is_resolved = false)"

type repository struct {
	db *gorm.DB
}

// New returns a GORM backed testimonial repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *testimonial.Testimonial) error {
	err := r.db.WithContext(ctx).Create(mapToModel(t)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return testimonial.ErrAlreadyReviewed
	}
	return common.MapGormErrorToDomain(err)
}

func (r *repository) Update(ctx context.Context, t *testimonial.Testimonial) error {
	tx := r.db.WithContext(ctx).Model(&Testimonial{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"rating":           t.Rating,
			"review_text":      t.ReviewText,
			"is_approved":      t.IsApproved,
			"is_featured":      t.IsFeatured,
			"moderation_notes": t.ModerationNotes,
			"updated_at":       t.UpdatedAt,
		})
	return common.Affected(tx, testimonial.ErrTestimonialNotFound)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("testimonial_id = ?", id).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("testimonial_id = ?", id).Delete(&Report{}).Error; err != nil {
			return err
		}
		return common.Affected(tx.Delete(&Testimonial{}, "id = ?", id), testimonial.ErrTestimonialNotFound)
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	var m Testimonial
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, testimonial.ErrTestimonialNotFound)
	}
	return mapToDomain(&m), nil
}

func (r *repository) Exists(ctx context.Context, causeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Testimonial{}).
		Where("cause_id = ? AND user_id = ?", causeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) List(
	ctx context.Context,
	filter repo.Filter,
	page dto.PageRequest,
) ([]*testimonial.Testimonial, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.CauseID != nil {
			db = db.Where("cause_id = ?", *filter.CauseID)
		}
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.Approved != nil {
			db = db.Where("is_approved = ?", *filter.Approved)
		}
		if filter.FeaturedOnly {
			db = db.Where("is_featured = ?", true)
		}
		if filter.Reported != nil {
			if *filter.Reported {
				db = db.Where(unresolvedReport)
			} else {
				db = db.Where("NOT " + unresolvedReport)
			}
		}
		return db
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Testimonial{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Testimonial
	q := r.db.WithContext(ctx).Scopes(scope, common.Paginate(page))
	switch filter.Sort {
	case repo.SortOldest:
		q = q.Order("created_at ASC")
	case repo.SortHighestRated:
		q = q.Order("rating DESC").Order("created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, 0, err
	}
	result := make([]*testimonial.Testimonial, 0, len(models))
	for i := range models {
		result = append(result, mapToDomain(&models[i]))
	}
	return result, count, nil
}

type ratingRow struct {
	Rating int
	Total  int64
}

func (r *repository) Stats(ctx context.Context, causeID uuid.UUID) (*testimonial.Stats, error) {
	var rows []ratingRow
	err := r.db.WithContext(ctx).
		Model(&Testimonial{}).
		Select("rating, COUNT(*) AS total").
		Where("cause_id = ? AND is_approved = ?", causeID, true).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := &testimonial.Stats{Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	var sum int64
	for _, row := range rows {
		stats.Distribution[row.Rating] = row.Total
		stats.Total += row.Total
		sum += int64(row.Rating) * row.Total
	}
	if stats.Total > 0 {
		avg := float64(sum) / float64(stats.Total)
		stats.AverageRating = math.Round(avg*100) / 100
	}
	return stats, nil
}

func (r *repository) ToggleLike(
	ctx context.Context,
	testimonialID, userID uuid.UUID,
) (liked bool, likes int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("testimonial_id = ? AND user_id = ?", testimonialID, userID).Delete(&Like{})
		if del.Error != nil {
			return del.Error
		}
		delta := -1
		if del.RowsAffected == 0 {
			like := &Like{TestimonialID: testimonialID, UserID: userID, CreatedAt: time.Now().UTC()}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked, delta = true, 1
		}
		upd := tx.Model(&Testimonial{}).
			Where("id = ?", testimonialID).
			UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count + ?, 0)", delta))
		if err := common.Affected(upd, testimonial.ErrTestimonialNotFound); err != nil {
			return err
		}
		return tx.Model(&Testimonial{}).
			Select("likes_count").
			Where("id = ?", testimonialID).
			Scan(&likes).Error
	})
	if err != nil {
		return false, 0, common.MapGormErrorToDomain(err)
	}
	return liked, likes, nil
}

func (r *repository) CreateReport(ctx context.Context, rep *testimonial.Report) error {
	err := r.db.WithContext(ctx).Create(mapReportToModel(rep)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return testimonial.ErrAlreadyReported
	}
	return common.MapGormErrorToDomain(err)
}

func (r *repository) ReportExists(ctx context.Context, testimonialID, reporterID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("testimonial_id = ? AND reporter_id = ?", testimonialID, reporterID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetReport(ctx context.Context, id uuid.UUID) (*testimonial.Report, error) {
	var m Report
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, common.NotFound(err, testimonial.ErrReportNotFound)
	}
	return mapModelToReport(&m), nil
}

func (r *repository) UpdateReport(ctx context.Context, rep *testimonial.Report) error {
	tx := r.db.WithContext(ctx).Model(&Report{}).
		Where("id = ?", rep.ID).
		Updates(map[string]any{
			"is_resolved": rep.IsResolved,
			"resolved_at": rep.ResolvedAt,
		})
	return common.Affected(tx, testimonial.ErrReportNotFound)
}

func (r *repository) ListReports(
	ctx context.Context,
	resolved *bool,
	page dto.PageRequest,
) ([]*testimonial.Report, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if resolved != nil {
			db = db.Where("is_resolved = ?", *resolved)
		}
		return db
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&Report{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var models []Report
	err := r.db.WithContext(ctx).
		Scopes(scope, common.Paginate(page)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	result := make([]*testimonial.Report, 0, len(models))
	for i := range models {
		result = append(result, mapModelToReport(&models[i]))
	}
	return result, count, nil
}

var _ repo.Repository = (*repository)(nil)
