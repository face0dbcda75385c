package repositories

import (
	"context"
	"testing"

	"github.com/coursehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetByID(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	user := &models.User{ID: "user-1", Name: "Dana", Email: "dana@example.com", Role: models.RoleStudent}
	require.NoError(t, repo.Create(context.Background(), user))

	byID, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Same(t, user, byID)

	byEmail, err := repo.GetByEmail(context.Background(), "dana@example.com")
	require.NoError(t, err)
	assert.Same(t, user, byEmail)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
