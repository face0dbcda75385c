package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/google/uuid"
)

// CommentRepository defines methods for lesson comment data access
type CommentRepository interface {
	// GetByLesson retrieves all comments for a lesson, newest first
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the comments and an error if any.
	GetByLesson(ctx context.Context, lessonID string) ([]*models.Comment, error)
	// Create appends a new comment
	//
	// "ctx" is the context for the request.
	// "comment" is the comment to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, comment *models.Comment) error
}

type commentService struct {
	courseRepo  CourseRepository
	commentRepo CommentRepository
	now         func() time.Time
}

// NewCommentService creates a new comment service
func NewCommentService(courseRepo CourseRepository, commentRepo CommentRepository) *commentService {
	return &commentService{
		courseRepo:  courseRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// ListComments retrieves all comments for a lesson, newest first
func (s *commentService) ListComments(ctx context.Context, lessonID string) ([]*models.Comment, error) {
	if _, err := s.findLesson(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByLesson(ctx, lessonID)
}

// AddComment posts a comment on a lesson. The lesson must exist; the author
// may be the guest identity.
func (s *commentService) AddComment(ctx context.Context, lessonID string, user *models.User, req *models.CreateCommentRequest) (*models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	if _, err := s.findLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	userID := models.GuestUserID
	userName := models.GuestDisplayName
	if user != nil {
		userID = user.ID
		userName = user.Name
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		LessonID:  lessonID,
		UserID:    userID,
		UserName:  userName,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// findLesson scans the catalog for a lesson by ID
func (s *commentService) findLesson(ctx context.Context, lessonID string) (*models.Lesson, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	for _, course := range courses {
		if lesson := course.FindLesson(lessonID); lesson != nil {
			return lesson, nil
		}
	}
	return nil, repositories.ErrLessonNotFound
}
