package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepository_GetAll(t *testing.T) {
	seed := SeedCourses(time.Now())
	repo := NewCourseRepository(seed)

	courses, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "c2", courses[1].ID)

	// The returned slice is a snapshot; mutating it must not affect the store
	courses[0] = nil
	again, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c1", again[0].ID)
}

func TestCourseRepository_GetByID(t *testing.T) {
	repo := NewCourseRepository(SeedCourses(time.Now()))

	course, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Body Analysis Fundamentals", course.Title)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseRepository_Create(t *testing.T) {
	repo := NewCourseRepository(nil)

	course := &models.Course{ID: "new", Title: "New Course"}
	require.NoError(t, repo.Create(context.Background(), course))

	stored, err := repo.GetByID(context.Background(), "new")
	require.NoError(t, err)
	assert.Same(t, course, stored)
}

func TestCourseRepository_Delete(t *testing.T) {
	repo := NewCourseRepository(SeedCourses(time.Now()))

	require.NoError(t, repo.Delete(context.Background(), "c1"))

	_, err := repo.GetByID(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	remaining, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "c2", remaining[0].ID)

	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), ErrCourseNotFound)
}

func TestSeedCourses(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := SeedCourses(now)

	require.Len(t, seed, 2)

	free := seed[0]
	assert.Equal(t, float64(0), free.Price)
	assert.Equal(t, 2, free.TotalLessons())
	for _, m := range free.Modules {
		for _, l := range m.Lessons {
			assert.Nil(t, l.ReleaseDate)
		}
	}

	paid := seed[1]
	assert.Equal(t, 1997.00, paid.Price)
	dripped := paid.FindLesson("l2-m1-c2")
	require.NotNil(t, dripped)
	require.NotNil(t, dripped.ReleaseDate)
	assert.Equal(t, now.Add(48*time.Hour), *dripped.ReleaseDate)
}
