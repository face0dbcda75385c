package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CommentService is the interface that wraps methods for lesson comment business logic.
type CommentService interface {
	// Method ListComments retrieves the comments of a lesson, newest first.
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the comments and repositories.ErrLessonNotFound if the lesson
	// does not exist in any course.
	ListComments(ctx context.Context, lessonID string) ([]*models.Comment, error)
	// Method AddComment stores a new comment on a lesson.
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	// "user" is the authenticated user, or nil for guests.
	// "req" carries the comment text.
	//
	// Returns the stored comment and repositories.ErrLessonNotFound if the
	// lesson does not exist in any course.
	AddComment(ctx context.Context, lessonID string, user *models.User, req *models.CreateCommentRequest) (*models.Comment, error)
}

// CommentHandler handles HTTP requests for lesson comments
type CommentHandler struct {
	BaseHandler
	service CommentService
	users   UserService
	tokens  *auth.TokenGenerator
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(svc CommentService, users UserService, tokens *auth.TokenGenerator, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service:     svc,
		users:       users,
		tokens:      tokens,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all comment handler routes
func (h *CommentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/lessons/{lessonID}/comments", func(r chi.Router) {
		r.Use(auth.OptionalMiddleware(h.tokens))
		r.Get("/", h.ListComments)
		r.Post("/", h.AddComment)
	})
}

// ListComments handles GET /api/v1/lessons/{lessonID}/comments
// @Summary List lesson comments
// @Description Get the comments of a lesson, newest first
// @Tags comments
// @Accept json
// @Produce json
// @Param lessonID path string true "Lesson ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{lessonID}/comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonID")

	comments, err := h.service.ListComments(r.Context(), lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, "lesson not found")
			return
		}
		h.logger.Error("failed to list comments", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}

	h.respondJSON(w, http.StatusOK, comments)
}

// AddComment handles POST /api/v1/lessons/{lessonID}/comments
// @Summary Add a lesson comment
// @Description Store a new comment on a lesson
// @Tags comments
// @Accept json
// @Produce json
// @Param lessonID path string true "Lesson ID"
// @Param request body models.CreateCommentRequest true "Comment to add"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{lessonID}/comments [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonID")

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := currentUser(r.Context(), h.users)

	comment, err := h.service.AddComment(r.Context(), lessonID, user, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, repositories.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, "lesson not found")
			return
		}
		h.logger.Error("failed to add comment", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to add comment")
		return
	}

	h.respondJSON(w, http.StatusCreated, comment)
}
