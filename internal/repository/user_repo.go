package repository

import (
	"context"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// UserRepository defines persistence operations for users. Users are
// append-only; there are no update or delete operations.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	Append(ctx context.Context, user models.User) error
}

type userRepository struct {
	users collection[models.User]
}

// NewUserRepository instantiates a store-backed user repository.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{users: newCollection[models.User](s, store.KeyUsers)}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users, _, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	users, _, err := r.users.load(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	// Case-sensitive exact match: the email is the collection key.
	for _, user := range users {
		if user.Email == email {
			return user, true, nil
		}
	}

	return models.User{}, false, nil
}

func (r *userRepository) Append(ctx context.Context, user models.User) error {
	return r.users.mutate(ctx, func(users []models.User) ([]models.User, error) {
		for _, existing := range users {
			if existing.Email == user.Email {
				return nil, ErrDuplicateEmail
			}
		}

		return append(users, user), nil
	})
}
