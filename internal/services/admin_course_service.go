package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrValidation wraps request validation failures so handlers can map them
// to a 400 response
var ErrValidation = errors.New("validation failed")

// Labels applied to generated courses. Generated courses are always free.
const (
	generatedAuthor   = "AI Generator"
	generatedCategory = "General"
	defaultAudience   = "beginners"
)

// OutlineGenerator defines the external collaborator that drafts a course
// outline from a topic and audience
type OutlineGenerator interface {
	// GenerateOutline requests a structured course draft
	//
	// "ctx" is the context for the request.
	// "topic" is the course topic; must be non-empty.
	// "audience" is the target audience label.
	//
	// Returns the outline, clients.ErrGenerationDisabled when no credential is
	// configured, or clients.ErrGenerationFailed for any transport or payload
	// failure.
	GenerateOutline(ctx context.Context, topic, audience string) (*models.CourseOutline, error)
}

type adminCourseService struct {
	courseRepo CourseRepository
	generator  OutlineGenerator
	logger     *zap.Logger
	now        func() time.Time
}

// NewAdminCourseService creates a new admin course service
func NewAdminCourseService(courseRepo CourseRepository, generator OutlineGenerator, logger *zap.Logger) *adminCourseService {
	return &adminCourseService{
		courseRepo: courseRepo,
		generator:  generator,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateCourse validates and stores a manually authored course, assigning
// collision-resistant ids to the course and its modules and lessons
func (s *adminCourseService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	for _, m := range req.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("%w: module title is required", ErrValidation)
		}
		for _, l := range m.Lessons {
			if strings.TrimSpace(l.Title) == "" {
				return nil, fmt.Errorf("%w: lesson title is required", ErrValidation)
			}
		}
	}

	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Author:      req.Author,
		Category:    req.Category,
		CreatedAt:   s.now(),
	}
	for _, m := range req.Modules {
		module := models.Module{
			ID:    uuid.NewString(),
			Title: m.Title,
		}
		for _, l := range m.Lessons {
			module.Lessons = append(module.Lessons, models.Lesson{
				ID:          uuid.NewString(),
				Title:       l.Title,
				Content:     l.Content,
				VideoURL:    l.VideoURL,
				Duration:    l.Duration,
				ReleaseDate: l.ReleaseDate,
			})
		}
		course.Modules = append(course.Modules, module)
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created",
		zap.String("course_id", course.ID),
		zap.String("title", course.Title),
	)
	return course, nil
}

// DeleteCourse removes a course from the catalog. Enrollments referencing it
// are intentionally left in place.
func (s *adminCourseService) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("course deleted", zap.String("course_id", courseID))
	return nil
}

// GenerateCourse drafts a course via the outline generator and commits it to
// the catalog. Nothing is stored unless the whole generation succeeds.
// Generated courses are free, carry fixed author and category labels, and
// their lessons have no release schedule.
func (s *adminCourseService) GenerateCourse(ctx context.Context, req *models.GenerateCourseRequest) (*models.Course, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}
	audience := strings.TrimSpace(req.Audience)
	if audience == "" {
		audience = defaultAudience
	}

	outline, err := s.generator.GenerateOutline(ctx, topic, audience)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       outline.Title,
		Description: outline.Description,
		Price:       0,
		Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%s/800/600", url.QueryEscape(topic)),
		Author:      generatedAuthor,
		Category:    generatedCategory,
		CreatedAt:   s.now(),
	}
	for _, m := range outline.Modules {
		module := models.Module{
			ID:    uuid.NewString(),
			Title: m.Title,
		}
		for _, l := range m.Lessons {
			module.Lessons = append(module.Lessons, models.Lesson{
				ID:       uuid.NewString(),
				Title:    l.Title,
				Content:  l.Content,
				Duration: l.Duration,
			})
		}
		course.Modules = append(course.Modules, module)
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course generated",
		zap.String("course_id", course.ID),
		zap.String("topic", topic),
		zap.String("audience", audience),
	)
	return course, nil
}
