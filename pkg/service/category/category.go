package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/causehive/pkg/domain/category"
	"github.com/amirasaad/causehive/pkg/repository"
	categoryrepo "github.com/amirasaad/causehive/pkg/repository/category"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns all categories with their public cause counts.
func (s *Service) List(ctx context.Context) ([]*category.Category, error) {
	repo, err := repository.Resolve[categoryrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	repo, err := repository.Resolve[categoryrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name, description string) (c *category.Category, err error) {
	log := s.logger.With("context", "CreateCategory")
	c, err = category.New(name, description)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		log.Error("CreateCategory failed", "error", err)
		return nil, err
	}
	log.Info("Category created", "categoryID", c.ID, "slug", c.Slug)
	return c, nil
}

// Update renames a category. The slug follows the name.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	name, description *string,
) (c *category.Category, err error) {
	log := s.logger.With("context", "UpdateCategory", "categoryID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if name != nil {
			n := strings.TrimSpace(*name)
			if n == "" {
				return category.ErrNameRequired
			}
			c.Name = n
			c.Slug = utils.Slugify(n)
		}
		if description != nil {
			c.Description = *description
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		log.Error("UpdateCategory failed", "error", err)
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "DeleteCategory", "categoryID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[categoryrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error("DeleteCategory failed", "error", err)
		return err
	}
	log.Info("Category deleted")
	return nil
}
