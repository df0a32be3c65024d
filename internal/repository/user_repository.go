package repository

import (
	"context"
	"time"

	"github.com/sokobo/storefront/internal/domain"
	"github.com/sokobo/storefront/internal/store"
)

// UserRepository defines persistence access for accounts. Email lookup is
// exact and case-sensitive, matching stored form.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	All(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)

	Export() []domain.User
	Import(users []domain.User)
}

type userRepository struct {
	users *store.Collection[domain.User]
}

// NewUserRepository returns a memory-backed implementation.
func NewUserRepository() UserRepository {
	return &userRepository{
		users: store.NewCollection(func(u domain.User) string { return u.ID }),
	}
}

func (r *userRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	created := r.users.Create(func(id string, createdAt time.Time) domain.User {
		user.ID = id
		user.CreatedAt = createdAt
		if user.Role == "" {
			user.Role = domain.RoleCustomer
		}
		return user
	})
	return created, nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := r.users.Get(id)
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users.FindOne(func(u domain.User) bool { return u.Email == email })
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) All(_ context.Context) ([]domain.User, error) {
	return r.users.All(), nil
}

func (r *userRepository) UpdateRole(_ context.Context, id string, role domain.Role) (domain.User, error) {
	return r.users.Update(id, func(u domain.User) domain.User {
		u.Role = role
		return u
	})
}

func (r *userRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.users.Delete(id), nil
}

func (r *userRepository) Export() []domain.User {
	return r.users.Export()
}

func (r *userRepository) Import(users []domain.User) {
	r.users.Import(users)
}
