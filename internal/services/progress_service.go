package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"go.uber.org/zap"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetAll retrieves a snapshot of all courses
	//
	// "ctx" is the context for the request.
	//
	// Returns the courses and an error if any.
	GetAll(ctx context.Context) ([]*models.Course, error)
	// GetByID retrieves a course by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and repositories.ErrCourseNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// Create appends a new course
	//
	// "ctx" is the context for the request.
	// "course" is the course to create; its ID must already be assigned.
	//
	// Returns an error if any.
	Create(ctx context.Context, course *models.Course) error
	// Delete removes a course by ID without cascading to enrollments
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns repositories.ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// GetAll retrieves the current enrollment snapshot
	//
	// "ctx" is the context for the request.
	//
	// Returns the enrollments and an error if any.
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	// GetByUserAndCourse retrieves the enrollment for a (user, course) pair
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user (or the guest pseudo-id).
	// "courseID" is the ID of the course.
	//
	// Returns the enrollment and repositories.ErrEnrollmentNotFound if absent.
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error)
	// GetByUser retrieves all enrollments of a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user (or the guest pseudo-id).
	//
	// Returns the enrollments and an error if any.
	GetByUser(ctx context.Context, userID string) ([]*models.Enrollment, error)
	// Create appends a new enrollment
	//
	// "ctx" is the context for the request.
	// "enrollment" is the enrollment to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// ReplaceAll swaps the stored snapshot for a new one
	//
	// "ctx" is the context for the request.
	// "enrollments" is the new snapshot.
	//
	// Returns an error if any.
	ReplaceAll(ctx context.Context, enrollments []*models.Enrollment) error
}

// ProgressPercent returns the completion percentage (0..100) of an enrollment
// against a course. A nil course (orphaned enrollment) or a course with no
// lessons reports 0 rather than dividing by zero.
func ProgressPercent(enrollment *models.Enrollment, course *models.Course) int {
	if enrollment == nil || course == nil {
		return 0
	}
	total := course.TotalLessons()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(enrollment.CompletedLessonIDs)) / float64(total)))
}

// completeLesson applies a lesson-completion event to an enrollment snapshot
// and returns the resulting snapshot.
//
// The transition is a no-op (the input slice is returned unchanged) when no
// enrollment exists for the (user, course) pair or when the lesson is already
// completed, so repeated events are idempotent. When the completed set grows
// to cover every lesson of the course, CompletedAt is stamped with "now";
// once stamped it is never cleared, even if the course changes afterwards.
// Entries other than the affected enrollment keep referential equality in the
// returned slice.
func completeLesson(enrollments []*models.Enrollment, course *models.Course, userID, lessonID string, now time.Time) []*models.Enrollment {
	for i, e := range enrollments {
		if e.UserID != userID || e.CourseID != course.ID {
			continue
		}
		if e.Completed(lessonID) {
			return enrollments
		}

		updated := *e
		updated.CompletedLessonIDs = append(slices.Clone(e.CompletedLessonIDs), lessonID)
		if updated.CompletedAt == nil && len(updated.CompletedLessonIDs) == course.TotalLessons() {
			completedAt := now
			updated.CompletedAt = &completedAt
		}

		next := slices.Clone(enrollments)
		next[i] = &updated
		return next
	}
	return enrollments
}

type progressService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(courseRepo CourseRepository, enrollmentRepo EnrollmentRepository, logger *zap.Logger) *progressService {
	return &progressService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// CompleteLesson marks a lesson completed for the user's enrollment in the
// course. Events for a non-enrolled user are silently ignored: the UI can
// race an enrollment against a completion click and the late event must not
// fail.
func (s *progressService) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}
	if course.FindLesson(lessonID) == nil {
		return repositories.ErrLessonNotFound
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get enrollments: %w", err)
	}

	next := completeLesson(enrollments, course, userID, lessonID, s.now())
	if len(next) == len(enrollments) && sameSnapshot(enrollments, next) {
		return nil
	}

	if err := s.enrollmentRepo.ReplaceAll(ctx, next); err != nil {
		return fmt.Errorf("failed to store enrollments: %w", err)
	}

	s.logger.Info("lesson completed",
		zap.String("user_id", userID),
		zap.String("course_id", courseID),
		zap.String("lesson_id", lessonID),
	)
	return nil
}

// Progress returns the user's progress in a course. Callers with no
// enrollment and orphaned enrollments both report zero progress instead of
// failing.
func (s *progressService) Progress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error) {
	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil && !errors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	// A deleted course leaves its enrollments orphaned; report 0% for those
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if !errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, fmt.Errorf("failed to get course: %w", err)
		}
		if enrollment == nil {
			return nil, err
		}
	}

	total := 0
	if course != nil {
		total = course.TotalLessons()
	}

	resp := &models.ProgressResponse{
		CourseID:        courseID,
		TotalLessons:    total,
		ProgressPercent: ProgressPercent(enrollment, course),
	}
	if enrollment != nil {
		resp.CompletedCount = len(enrollment.CompletedLessonIDs)
		resp.CompletedAt = enrollment.CompletedAt
	}
	return resp, nil
}

// Certificate returns completion certificate data for a finished course.
// It fails with ErrCertificateNotAvailable until every lesson is completed.
func (s *progressService) Certificate(ctx context.Context, user *models.User, courseID string) (*models.CertificateResponse, error) {
	userID := models.GuestUserID
	userName := models.GuestDisplayName
	if user != nil {
		userID = user.ID
		userName = user.Name
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, ErrCertificateNotAvailable
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	if enrollment.CompletedAt == nil {
		return nil, ErrCertificateNotAvailable
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &models.CertificateResponse{
		UserName:    userName,
		CourseTitle: course.Title,
		CompletedAt: *enrollment.CompletedAt,
	}, nil
}

// ErrCertificateNotAvailable is returned when a certificate is requested
// before the course is fully completed
var ErrCertificateNotAvailable = errors.New("certificate not available")

// sameSnapshot reports whether two snapshots are entry-for-entry identical
func sameSnapshot(a, b []*models.Enrollment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
