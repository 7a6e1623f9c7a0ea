package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/eventbus"
	"github.com/amirasaad/causehive/pkg/provider/mail"
	"github.com/amirasaad/causehive/pkg/repository"
	repouser "github.com/amirasaad/causehive/pkg/repository/user"
	"github.com/amirasaad/causehive/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is compared against when the email is unknown so both paths
// cost one bcrypt comparison.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

const resetPurpose = "password_reset"

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	mailer mail.Mailer
	cfg    *config.Auth
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	mailer mail.Mailer,
	cfg *config.Auth,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, bus: bus, mailer: mailer, cfg: cfg, logger: logger}
}

// Signup registers a user with an empty profile.
func (s *Service) Signup(
	ctx context.Context,
	email, password, firstName, lastName string,
) (u *user.User, err error) {
	log := s.logger.With("context", "Signup")
	u, err = user.New(email, password, firstName, lastName)
	if err != nil {
		log.Warn("Signup rejected", "error", err)
		return nil, err
	}
	if err := s.create(ctx, u); err != nil {
		log.Error("Signup failed", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", u.ID)

	if err := s.bus.Emit(ctx, &events.UserRegistered{
		FlowEvent: events.NewFlowEvent(uuid.Nil),
		UserID:    u.ID,
		Email:     u.Email,
		FullName:  u.FullName(),
	}); err != nil {
		log.Error("failed to emit UserRegistered", "error", err)
	}
	return u, nil
}

// CreateSuperuser registers an active staff account. No welcome mail is sent.
func (s *Service) CreateSuperuser(ctx context.Context, email, password string) (*user.User, error) {
	u, err := user.New(email, password, "", "")
	if err != nil {
		return nil, err
	}
	u.IsStaff = true
	if err := s.create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("Superuser created", "userID", u.ID)
	return u, nil
}

func (s *Service) create(ctx context.Context, u *user.User) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[repouser.Repository](uow)
		if err != nil {
			return err
		}
		exists, err := repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrEmailTaken
		}
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
		return repo.SaveProfile(ctx, &user.Profile{UserID: u.ID})
	})
}

// Login checks credentials and returns a signed access token.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (token string, u *user.User, err error) {
	log := s.logger.With("context", "Login")
	email = user.NormalizeEmail(email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[repouser.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.GetByEmail(ctx, email)
		if errors.Is(err, user.ErrUserNotFound) {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return user.ErrUserUnauthorized
		}
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(password, u.Password) {
			return user.ErrUserUnauthorized
		}
		if !u.IsActive {
			return user.ErrUserInactive
		}
		now := time.Now().UTC()
		u.LastLogin = &now
		return repo.Update(ctx, u)
	})
	if err != nil {
		log.Warn("Login failed", "error", err)
		return "", nil, err
	}
	token, err = s.GenerateToken(u)
	if err != nil {
		log.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return token, u, nil
}

// GenerateToken signs an HS256 access token for u.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["is_staff"] = u.IsStaff
	claims["exp"] = time.Now().Add(s.cfg.Jwt.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Jwt.Secret))
}

// ActorFromToken extracts the caller from a verified access token.
func ActorFromToken(token *jwt.Token) (*dto.Actor, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, user.ErrUserUnauthorized
	}
	email, _ := claims["email"].(string)
	staff, _ := claims["is_staff"].(bool)
	return &dto.Actor{UserID: id, Email: email, IsStaff: staff}, nil
}

// RequestPasswordReset mails a reset link to active accounts. Unknown
// addresses get the same silent success.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	log := s.logger.With("context", "RequestPasswordReset")
	email = user.NormalizeEmail(email)

	repo, err := repository.Resolve[repouser.Repository](s.uow)
	if err != nil {
		return err
	}
	u, err := repo.GetByEmail(ctx, email)
	if err != nil || !u.IsActive {
		log.Debug("No active account for reset request")
		return nil
	}

	token, err := s.resetToken(u)
	if err != nil {
		log.Error("failed to sign reset token", "error", err)
		return nil
	}
	link := fmt.Sprintf("%s?token=%s", s.cfg.PasswordResetURL, token)
	if err := s.mailer.Send(ctx, mail.Message{
		To:      u.Email,
		Subject: "Reset your CauseHive password",
		Body: fmt.Sprintf(
			"Hi %s,\n\nUse the link below to choose a new password. It expires in %s.\n\n%s\n",
			u.FullName(), s.cfg.PasswordResetExpiry, link,
		),
	}); err != nil {
		log.Error("failed to send reset email", "userID", u.ID, "error", err)
	}
	return nil
}

// ConfirmPasswordReset sets a new password when token is valid. Tokens
// stop working once the password they were issued for changes.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	log := s.logger.With("context", "ConfirmPasswordReset")
	if err := user.ValidatePassword(newPassword); err != nil {
		return err
	}
	userID, fingerprint, err := s.parseResetToken(token)
	if err != nil {
		log.Warn("invalid reset token", "error", err)
		return user.ErrInvalidResetToken
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Resolve[repouser.Repository](uow)
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrInvalidResetToken
			}
			return err
		}
		if !u.IsActive || passwordFingerprint(u.Password) != fingerprint {
			return user.ErrInvalidResetToken
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		u.Password = hashed
		u.UpdatedAt = time.Now().UTC()
		log.Info("Password reset", "userID", u.ID)
		return repo.Update(ctx, u)
	})
}

func (s *Service) resetToken(u *user.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     u.ID.String(),
		"purpose": resetPurpose,
		"pwh":     passwordFingerprint(u.Password),
		"exp":     time.Now().Add(s.cfg.PasswordResetExpiry).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Jwt.Secret))
}

func (s *Service) parseResetToken(raw string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Jwt.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != resetPurpose {
		return uuid.Nil, "", user.ErrInvalidResetToken
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", err
	}
	fp, _ := claims["pwh"].(string)
	return id, fp, nil
}

func passwordFingerprint(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}
