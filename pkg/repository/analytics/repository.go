package analytics

import (
	"context"
	"time"

	"github.com/amirasaad/causehive/pkg/dto"
)

// Repository runs read-only aggregate queries across the schema.
type Repository interface {
	PlatformMetrics(ctx context.Context) (*dto.PlatformMetrics, error)
	Dashboard(ctx context.Context) (*dto.Dashboard, error)
	// DonationsByMonth totals completed donations per month since since.
	DonationsByMonth(ctx context.Context, since time.Time) ([]dto.MonthlyTotal, error)
	TopCauses(ctx context.Context, limit int) ([]dto.CauseProgress, error)
	// SignupsByDay counts new users per day since since.
	SignupsByDay(ctx context.Context, since time.Time) ([]dto.DailyCount, error)
}
