package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/coursehub/backend/internal/models"
)

// ErrUserNotFound is returned when a user lookup misses
var ErrUserNotFound = errors.New("user not found")

type userRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

// NewUserRepository creates a new in-memory user repository.
// Users live for the lifetime of the process only (mock login, no persistence).
func NewUserRepository() *userRepository {
	return &userRepository{}
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(slices.Clone(r.users), user)
	return nil
}
