package services

import (
	"context"
	"testing"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	student := &models.User{ID: "user-1", Name: "Dana", Role: models.RoleStudent}

	t.Run("course not found", func(t *testing.T) {
		courseRepo := &mockCourseRepository{}
		enrollmentRepo := &mockEnrollmentRepository{}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())

		_, err := svc.Enroll(context.Background(), "missing", student)

		assert.ErrorIs(t, err, repositories.ErrCourseNotFound)
	})

	t.Run("paid course without a user requires auth", func(t *testing.T) {
		courseRepo := &mockCourseRepository{courses: []*models.Course{testCourse("c2", 1997.00, "l1")}}
		enrollmentRepo := &mockEnrollmentRepository{}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())

		resp, err := svc.Enroll(context.Background(), "c2", nil)

		require.NoError(t, err)
		assert.True(t, resp.RequiresAuth)
		assert.Equal(t, "c2", resp.CourseID)
		assert.Nil(t, resp.Enrollment)
		assert.False(t, enrollmentRepo.createCalled)
	})

	t.Run("paid course retry after login succeeds", func(t *testing.T) {
		courseRepo := &mockCourseRepository{courses: []*models.Course{testCourse("c2", 1997.00, "l1", "l2")}}
		enrollmentRepo := &mockEnrollmentRepository{}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())
		svc.now = fixedNow(now)

		first, err := svc.Enroll(context.Background(), "c2", nil)
		require.NoError(t, err)
		require.True(t, first.RequiresAuth)

		retry, err := svc.Enroll(context.Background(), "c2", student)
		require.NoError(t, err)
		assert.False(t, retry.RequiresAuth)
		require.NotNil(t, retry.Enrollment)
		assert.Equal(t, "user-1", retry.Enrollment.UserID)
		assert.Equal(t, "l1", retry.RedirectLessonID)
	})

	t.Run("guest enrolls into a free course", func(t *testing.T) {
		courseRepo := &mockCourseRepository{courses: []*models.Course{testCourse("c1", 0, "l1", "l2")}}
		enrollmentRepo := &mockEnrollmentRepository{}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())
		svc.now = fixedNow(now)

		resp, err := svc.Enroll(context.Background(), "c1", nil)

		require.NoError(t, err)
		assert.False(t, resp.RequiresAuth)
		require.NotNil(t, resp.Enrollment)
		assert.Equal(t, models.GuestUserID, resp.Enrollment.UserID)
		assert.Equal(t, "c1", resp.Enrollment.CourseID)
		assert.Equal(t, now, resp.Enrollment.EnrolledAt)
		assert.NotNil(t, resp.Enrollment.CompletedLessonIDs)
		assert.Empty(t, resp.Enrollment.CompletedLessonIDs)
		assert.Equal(t, "l1", resp.RedirectLessonID)
	})

	t.Run("duplicate enrollment reuses the existing record", func(t *testing.T) {
		existing := &models.Enrollment{
			UserID:             "user-1",
			CourseID:           "c1",
			CompletedLessonIDs: []string{"l1"},
			EnrolledAt:         now.Add(-24 * time.Hour),
		}
		courseRepo := &mockCourseRepository{courses: []*models.Course{testCourse("c1", 0, "l1", "l2")}}
		enrollmentRepo := &mockEnrollmentRepository{enrollments: []*models.Enrollment{existing}}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())

		resp, err := svc.Enroll(context.Background(), "c1", student)

		require.NoError(t, err)
		assert.Same(t, existing, resp.Enrollment)
		assert.False(t, enrollmentRepo.createCalled)
	})

	t.Run("course with no lessons has no redirect", func(t *testing.T) {
		courseRepo := &mockCourseRepository{courses: []*models.Course{{ID: "empty", Title: "Empty"}}}
		enrollmentRepo := &mockEnrollmentRepository{}
		svc := NewEnrollmentService(courseRepo, enrollmentRepo, zap.NewNop())

		resp, err := svc.Enroll(context.Background(), "empty", student)

		require.NoError(t, err)
		assert.Empty(t, resp.RedirectLessonID)
	})
}
