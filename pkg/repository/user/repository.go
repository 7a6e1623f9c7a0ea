package user

import (
	"context"

	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines data access for users and their profiles.
// Lookups return user.ErrUserNotFound when nothing matches.
type Repository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of users and the total count for filter.
	List(ctx context.Context, filter dto.UserFilter, page dto.PageRequest) ([]*user.User, int64, error)
	// ListStaff returns active staff accounts.
	ListStaff(ctx context.Context) ([]*user.User, error)

	// GetProfile returns the profile, or an empty one when none was stored.
	GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
	// SaveProfile inserts or replaces the profile.
	SaveProfile(ctx context.Context, p *user.Profile) error
}
