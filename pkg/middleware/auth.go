package middleware

import (
	"errors"
	"strings"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/dto"
	authsvc "github.com/amirasaad/causehive/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey = "user"
	actorKey = "actor"
)

// JwtProtected rejects requests without a valid bearer token and stores the
// caller under c.Locals so handlers can read it with Actor.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ContextKey:     tokenKey,
		ErrorHandler:   jwtError,
		SuccessHandler: storeActor,
	})
}

// OptionalJwt resolves the caller when a bearer token is present and lets
// anonymous requests through untouched. A present but invalid token is
// rejected.
func OptionalJwt(cfg *config.Jwt) fiber.Handler {
	verify := JwtProtected(cfg)
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return verify(c)
	}
}

// AdminOnly must run after JwtProtected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if actor == nil {
			return problem(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
		}
		if !actor.IsStaff {
			return problem(c, fiber.StatusForbidden, "Forbidden", "staff access required")
		}
		return c.Next()
	}
}

// Actor returns the authenticated caller, or nil for anonymous requests.
func Actor(c *fiber.Ctx) *dto.Actor {
	if actor, ok := c.Locals(actorKey).(*dto.Actor); ok {
		return actor
	}
	token, ok := c.Locals(tokenKey).(*jwt.Token)
	if !ok {
		return nil
	}
	actor, err := authsvc.ActorFromToken(token)
	if err != nil {
		return nil
	}
	return actor
}

func storeActor(c *fiber.Ctx) error {
	token, _ := c.Locals(tokenKey).(*jwt.Token)
	actor, err := authsvc.ActorFromToken(token)
	if err != nil {
		return jwtError(c, err)
	}
	c.Locals(actorKey, actor)
	return c.Next()
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) ||
		strings.EqualFold(err.Error(), jwtware.ErrJWTMissingOrMalformed.Error()) {
		return problem(c, fiber.StatusBadRequest, "Bad Request", "Missing or malformed JWT")
	}
	return problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired JWT")
}

// problem writes an RFC 9457 body without importing webapi/common.
func problem(c *fiber.Ctx, status int, title, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.OriginalURL(),
	})
}
