package service

import (
	"context"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/repository"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// UserService backs the admin user-management console.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// All returns every account. Password hashes are stripped at the DTO
// layer, never here; the domain value stays complete for callers that
// need it.
func (s *UserService) All(ctx context.Context) ([]domain.User, error) {
	return s.users.All(ctx)
}

// SetRole changes an account's role.
func (s *UserService) SetRole(ctx context.Context, id string, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, apperrors.NewValidationError("invalid role", map[string]any{
			"role": "must be customer or admin",
		})
	}
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return domain.User{}, apperrors.NewNotFound("user", nil)
	}
	return user, nil
}

// Delete removes an account. Orders referencing the user are left in
// place; orphaned references are tolerated.
func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("user", nil)
	}
	return nil
}
