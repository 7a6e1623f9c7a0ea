package category

import (
	"errors"
	"strings"

	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category cannot be found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrNameRequired is returned when a category has no name.
var ErrNameRequired = errors.New("category name is required")

// Category groups causes for browsing.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	// CauseCount is only populated by listing queries.
	CauseCount int64
}

// New creates a category with a slug derived from its name.
func New(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        utils.Slugify(name),
		Description: description,
	}, nil
}
