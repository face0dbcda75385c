package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
)

type catalogService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	now            func() time.Time
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CourseRepository, enrollmentRepo EnrollmentRepository) *catalogService {
	return &catalogService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		now:            time.Now,
	}
}

// ListCourses retrieves the catalog with the caller's enrollment state and
// progress folded in. userID may be the guest pseudo-id.
func (s *catalogService) ListCourses(ctx context.Context, userID string) ([]models.CourseListItem, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	enrollments, err := s.enrollmentRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}
	byCourse := make(map[string]*models.Enrollment, len(enrollments))
	for _, e := range enrollments {
		byCourse[e.CourseID] = e
	}

	items := make([]models.CourseListItem, 0, len(courses))
	for _, course := range courses {
		enrollment := byCourse[course.ID]

		items = append(items, models.CourseListItem{
			ID:              course.ID,
			Title:           course.Title,
			Description:     course.Description,
			Price:           course.Price,
			Thumbnail:       course.Thumbnail,
			Author:          course.Author,
			Category:        course.Category,
			TotalLessons:    course.TotalLessons(),
			Enrolled:        enrollment != nil,
			ProgressPercent: ProgressPercent(enrollment, course),
		})
	}
	return items, nil
}

// GetCourseContent retrieves a course with per-lesson lock and completion
// state for the caller, evaluated at the current instant. Clients poll this
// endpoint to have drip-released lessons flip open as their release instant
// passes.
func (s *catalogService) GetCourseContent(ctx context.Context, courseID, userID string) (*models.CourseContentResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil && !errors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &models.CourseContentResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Price:           course.Price,
		Thumbnail:       course.Thumbnail,
		Author:          course.Author,
		Category:        course.Category,
		Enrolled:        enrollment != nil,
		ProgressPercent: ProgressPercent(enrollment, course),
		Modules:         lessonStates(course, enrollment, s.now()),
	}, nil
}
