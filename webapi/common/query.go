package common

import (
	"strconv"

	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PageQuery reads page and page_size from the query string.
func PageQuery(c *fiber.Ctx, def int) dto.PageRequest {
	return dto.NewPageRequest(c.QueryInt("page", 1), c.QueryInt("page_size", def), def)
}

// BoolQuery returns nil when the parameter is absent or not a boolean.
func BoolQuery(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// UUIDQuery returns nil when the parameter is absent. A malformed value is an error.
func UUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be a valid UUID")
	}
	return &id, nil
}

// ParseID parses a UUID route parameter, writing a 400 problem when it is
// malformed. Callers return the second value when ok is false.
func ParseID(c *fiber.Ctx, param string) (id uuid.UUID, ok bool, err error) {
	id, perr := uuid.Parse(c.Params(param))
	if perr != nil {
		return uuid.Nil, false, ProblemDetailsJSON(
			c, "Invalid ID", nil, param+" must be a valid UUID", fiber.StatusBadRequest,
		)
	}
	return id, true, nil
}
