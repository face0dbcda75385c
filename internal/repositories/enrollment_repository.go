package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/coursehub/backend/internal/models"
)

// ErrEnrollmentNotFound is returned when no enrollment exists for a
// (user, course) pair
var ErrEnrollmentNotFound = errors.New("enrollment not found")

type enrollmentRepository struct {
	mu          sync.RWMutex
	enrollments []*models.Enrollment
}

// NewEnrollmentRepository creates a new in-memory enrollment repository
func NewEnrollmentRepository() *enrollmentRepository {
	return &enrollmentRepository{}
}

// GetAll retrieves the current enrollment snapshot
func (r *enrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.enrollments), nil
}

// GetByUserAndCourse retrieves the enrollment for a (user, course) pair
func (r *enrollmentRepository) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, ErrEnrollmentNotFound
}

// GetByUser retrieves all enrollments for a user
func (r *enrollmentRepository) GetByUser(ctx context.Context, userID string) ([]*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Create appends a new enrollment
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enrollments = append(slices.Clone(r.enrollments), enrollment)
	return nil
}

// ReplaceAll swaps the stored snapshot for a new one produced by a pure
// state transition. Entries untouched by the transition keep their identity,
// which lets callers detect change cheaply.
func (r *enrollmentRepository) ReplaceAll(ctx context.Context, enrollments []*models.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enrollments = enrollments
	return nil
}
