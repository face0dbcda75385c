package repositories

import (
	"context"
	"testing"

	"github.com/coursehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_GetByLesson(t *testing.T) {
	repo := NewCommentRepository()

	comments, err := repo.GetByLesson(context.Background(), "l1")
	require.NoError(t, err)
	assert.Empty(t, comments)

	require.NoError(t, repo.Create(context.Background(), &models.Comment{ID: "cm1", LessonID: "l1", Content: "first"}))
	require.NoError(t, repo.Create(context.Background(), &models.Comment{ID: "cm2", LessonID: "l2", Content: "other lesson"}))
	require.NoError(t, repo.Create(context.Background(), &models.Comment{ID: "cm3", LessonID: "l1", Content: "second"}))

	comments, err = repo.GetByLesson(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// Newest first
	assert.Equal(t, "cm3", comments[0].ID)
	assert.Equal(t, "cm1", comments[1].ID)
}
