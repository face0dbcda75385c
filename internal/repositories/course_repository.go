package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/coursehub/backend/internal/models"
)

// ErrCourseNotFound is returned when a course lookup misses.
// This is a recoverable condition: deep links to deleted courses are expected.
var ErrCourseNotFound = errors.New("course not found")

// ErrLessonNotFound is returned when no course in the catalog contains the
// requested lesson
var ErrLessonNotFound = errors.New("lesson not found")

type courseRepository struct {
	mu      sync.RWMutex
	courses []*models.Course
}

// NewCourseRepository creates a new in-memory course repository seeded with
// the given courses
func NewCourseRepository(seed []*models.Course) *courseRepository {
	return &courseRepository{
		courses: slices.Clone(seed),
	}
}

// GetAll retrieves a snapshot of all courses in insertion order
func (r *courseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.courses), nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCourseNotFound
}

// Create appends a new course. No duplicate-id check is performed; callers
// must supply collision-resistant ids.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses = append(slices.Clone(r.courses), course)
	return nil
}

// Delete removes a course by ID. Enrollments referencing the course are left
// in place; progress math treats the missing course as zero lessons.
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.courses {
		if c.ID == id {
			next := slices.Clone(r.courses)
			r.courses = slices.Delete(next, i, i+1)
			return nil
		}
	}
	return ErrCourseNotFound
}
