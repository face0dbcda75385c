package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"go.uber.org/zap"
)

type enrollmentService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(courseRepo CourseRepository, enrollmentRepo EnrollmentRepository, logger *zap.Logger) *enrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Enroll registers a user (or the guest identity) in a course.
//
// Paid courses require an authenticated user: with a nil user the result
// carries RequiresAuth=true and no enrollment is created; the course id is
// echoed back so the caller can retry the same enrollment after logging in.
// Free courses enroll guests under the fixed guest pseudo-id so anonymous
// progress is still tracked. Enrolling twice in the same course returns the
// existing enrollment instead of creating a duplicate record.
func (s *enrollmentService) Enroll(ctx context.Context, courseID string, user *models.User) (*models.EnrollResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if course.Price > 0 && user == nil {
		return &models.EnrollResponse{
			RequiresAuth: true,
			CourseID:     course.ID,
		}, nil
	}

	userID := models.GuestUserID
	if user != nil {
		userID = user.ID
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil && !errors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if enrollment == nil {
		enrollment = &models.Enrollment{
			UserID:             userID,
			CourseID:           course.ID,
			CompletedLessonIDs: []string{},
			EnrolledAt:         s.now(),
		}
		if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
			return nil, fmt.Errorf("failed to create enrollment: %w", err)
		}
		s.logger.Info("user enrolled",
			zap.String("user_id", userID),
			zap.String("course_id", course.ID),
		)
	}

	resp := &models.EnrollResponse{
		CourseID:   course.ID,
		Enrollment: enrollment,
	}
	if first := course.FirstLesson(); first != nil {
		resp.RedirectLessonID = first.ID
	}
	return resp, nil
}
