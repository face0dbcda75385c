package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for course catalog business logic.
type CatalogService interface {
	// Method ListCourses retrieves the course catalog with the caller's
	// enrollment state and progress folded into each item.
	//
	// "ctx" is the context for the request.
	// "userID" identifies the caller; guests use models.GuestUserID.
	//
	// Returns the catalog items and an error if any.
	ListCourses(ctx context.Context, userID string) ([]models.CourseListItem, error)
	// Method GetCourseContent retrieves a course with per-lesson lock and
	// completion state for the caller. Content of locked lessons is hidden.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" identifies the caller; guests use models.GuestUserID.
	//
	// Returns the course content and repositories.ErrCourseNotFound if absent.
	GetCourseContent(ctx context.Context, courseID, userID string) (*models.CourseContentResponse, error)
}

// CourseHandler handles HTTP requests for the course catalog. Its routes are
// registered by RegisterCourseRoutes.
type CourseHandler struct {
	BaseHandler
	service CatalogService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CatalogService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// ListCourses handles GET /api/v1/courses
// @Summary List courses
// @Description Get the course catalog with enrollment state and progress for the caller
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} models.CourseListItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r.Context())

	courses, err := h.service.ListCourses(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list courses")
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// GetCourseContent handles GET /api/v1/courses/{courseID}
// @Summary Get course content
// @Description Get a course with per-lesson lock and completion state for the caller
// @Tags courses
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.CourseContentResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{courseID} [get]
func (h *CourseHandler) GetCourseContent(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	userID := callerID(r.Context())

	content, err := h.service.GetCourseContent(r.Context(), courseID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to get course content", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, content)
}

// callerID returns the authenticated user ID or the guest ID.
func callerID(ctx context.Context) string {
	if id, ok := auth.GetUserID(ctx); ok {
		return id
	}
	return models.GuestUserID
}
