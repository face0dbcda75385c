package repositories

import (
	"context"
	"slices"
	"sync"

	"github.com/coursehub/backend/internal/models"
)

type commentRepository struct {
	mu       sync.RWMutex
	comments []*models.Comment
}

// NewCommentRepository creates a new in-memory comment repository
func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

// GetByLesson retrieves all comments for a lesson, newest first
func (r *commentRepository) GetByLesson(ctx context.Context, lessonID string) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Comment
	for i := len(r.comments) - 1; i >= 0; i-- {
		if r.comments[i].LessonID == lessonID {
			result = append(result, r.comments[i])
		}
	}
	return result, nil
}

// Create appends a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments = append(slices.Clone(r.comments), comment)
	return nil
}
