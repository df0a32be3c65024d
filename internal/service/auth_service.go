package service

import (
	"context"
	"errors"
	"time"

	"github.com/sokobo/storefront/internal/auth"
	"github.com/sokobo/storefront/internal/config"
	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/events"
	"github.com/sokobo/storefront/internal/repository"
	"github.com/sokobo/storefront/internal/store"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new customer account. Email uniqueness is enforced
// here, not in the entity store; the comparison is case-sensitive against
// the stored form.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, string, time.Time, error) {
	details := map[string]any{}
	if name == "" {
		details["name"] = "required"
	}
	if email == "" {
		details["email"] = "required"
	}
	if password == "" {
		details["password"] = "required"
	}
	if len(details) > 0 {
		return domain.User{}, "", time.Time{}, apperrors.NewValidationError("invalid registration", details)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.User{}, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	user, err := s.users.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventUserRegistered,
			SubjectID: user.ID,
			Payload:   events.UserRegisteredPayload{Email: user.Email, Name: user.Name},
		})
	}
	return user, token, exp, nil
}

// Login authenticates an account and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return domain.User{}, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
