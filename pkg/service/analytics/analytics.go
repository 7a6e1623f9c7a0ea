package analytics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/repository"
	analyticsrepo "github.com/amirasaad/causehive/pkg/repository/analytics"
	"github.com/shopspring/decimal"
)

const (
	platformMetricsKey = "analytics:platform"
	chartMonths        = 6
	topCauses          = 10
	activityDays       = 30
)

type Service struct {
	uow    repository.UnitOfWork
	cache  cache.Cache
	cfg    *config.Cache
	logger *slog.Logger
	now    func() time.Time
}

func New(
	uow repository.UnitOfWork,
	c cache.Cache,
	cfg *config.Cache,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		cache:  c,
		cfg:    cfg,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) repo() (analyticsrepo.Repository, error) {
	return repository.Resolve[analyticsrepo.Repository](s.uow)
}

// PlatformMetrics returns the public headline numbers, cached for
// PlatformMetricsTTL.
func (s *Service) PlatformMetrics(ctx context.Context) (*dto.PlatformMetrics, error) {
	log := s.logger.With("context", "PlatformMetrics")
	var m dto.PlatformMetrics
	if err := cache.GetJSON(ctx, s.cache, platformMetricsKey, &m); err == nil {
		return &m, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("cache read failed", "error", err)
	}

	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	metrics, err := repo.PlatformMetrics(ctx)
	if err != nil {
		log.Error("failed to compute platform metrics", "error", err)
		return nil, err
	}
	if err := cache.SetJSON(ctx, s.cache, platformMetricsKey, metrics, s.cfg.PlatformMetricsTTL); err != nil {
		log.Warn("cache write failed", "error", err)
	}
	return metrics, nil
}

func (s *Service) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.Dashboard(ctx)
}

// DonationChart returns completed donation totals for the current month and
// the five before it. Months without donations are reported as zero.
func (s *Service) DonationChart(ctx context.Context) ([]dto.MonthlyTotal, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(chartMonths - 1), 0)
	rows, err := repo.DonationsByMonth(ctx, start)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[time.Time]dto.MonthlyTotal, len(rows))
	for _, r := range rows {
		m := r.Month.UTC()
		byMonth[time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)] = r
	}
	out := make([]dto.MonthlyTotal, 0, chartMonths)
	for i := 0; i < chartMonths; i++ {
		month := start.AddDate(0, i, 0)
		row, ok := byMonth[month]
		if !ok {
			row = dto.MonthlyTotal{Amount: decimal.Zero}
		}
		row.Month = month
		out = append(out, row)
	}
	return out, nil
}

// CauseProgress returns the ten causes that raised the most.
func (s *Service) CauseProgress(ctx context.Context) ([]dto.CauseProgress, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.TopCauses(ctx, topCauses)
}

// UserActivity returns signups per day over the last thirty days, today
// included.
func (s *Service) UserActivity(ctx context.Context) ([]dto.DailyCount, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(activityDays - 1))
	rows, err := repo.SignupsByDay(ctx, start)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]int64, len(rows))
	for _, r := range rows {
		d := r.Day.UTC()
		byDay[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] += r.Count
	}
	out := make([]dto.DailyCount, 0, activityDays)
	for i := 0; i < activityDays; i++ {
		day := start.AddDate(0, 0, i)
		out = append(out, dto.DailyCount{Day: day, Count: byDay[day]})
	}
	return out, nil
}
