package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/clients"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminCourseService is the interface that wraps methods for course administration business logic.
type AdminCourseService interface {
	// Method CreateCourse validates and stores a new course with its modules
	// and lessons. Missing IDs are generated.
	//
	// "ctx" is the context for the request.
	// "req" is the course to create.
	//
	// Returns the stored course, or services.ErrValidation when required
	// fields are missing.
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// Method DeleteCourse removes a course from the catalog.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns repositories.ErrCourseNotFound if absent.
	DeleteCourse(ctx context.Context, courseID string) error
	// Method GenerateCourse builds a course outline for a topic through the
	// configured generator and stores it as a free course.
	//
	// "ctx" is the context for the request.
	// "req" carries the topic and optional audience.
	//
	// Returns the stored course. Returns services.ErrValidation for a
	// missing topic, clients.ErrGenerationDisabled when no generator is
	// configured, and clients.ErrGenerationFailed when the generator
	// produced no usable outline.
	GenerateCourse(ctx context.Context, req *models.GenerateCourseRequest) (*models.Course, error)
}

// AdminCourseHandler handles HTTP requests for course administration
type AdminCourseHandler struct {
	BaseHandler
	service AdminCourseService
	tokens  *auth.TokenGenerator
}

// NewAdminCourseHandler creates a new admin course handler
func NewAdminCourseHandler(svc AdminCourseService, tokens *auth.TokenGenerator, logger *zap.Logger) *AdminCourseHandler {
	return &AdminCourseHandler{
		service:     svc,
		tokens:      tokens,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all admin course handler routes
func (h *AdminCourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/admin/courses", func(r chi.Router) {
		r.Use(auth.RoleMiddleware(h.tokens, models.RoleAdmin))
		r.Post("/", h.CreateCourse)
		r.Post("/generate", h.GenerateCourse)
		r.Delete("/{courseID}", h.DeleteCourse)
	})
}

// CreateCourse handles POST /api/v1/admin/courses
// @Summary Create a course
// @Description Create a new course with modules and lessons
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateCourseRequest true "Course to create"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/courses [post]
func (h *AdminCourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create course", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create course")
		return
	}

	h.respondJSON(w, http.StatusCreated, course)
}

// GenerateCourse handles POST /api/v1/admin/courses/generate
// @Summary Generate a course
// @Description Generate a course outline for a topic and store it as a free course
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.GenerateCourseRequest true "Topic and optional audience"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/courses/generate [post]
func (h *AdminCourseHandler) GenerateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.GenerateCourse(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, clients.ErrGenerationDisabled) {
			h.respondError(w, http.StatusServiceUnavailable, "course generation is disabled")
			return
		}
		if errors.Is(err, clients.ErrGenerationFailed) {
			h.respondError(w, http.StatusBadGateway, "course generation failed")
			return
		}
		h.logger.Error("failed to generate course", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate course")
		return
	}

	h.respondJSON(w, http.StatusCreated, course)
}

// DeleteCourse handles DELETE /api/v1/admin/courses/{courseID}
// @Summary Delete a course
// @Description Remove a course from the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/admin/courses/{courseID} [delete]
func (h *AdminCourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to delete course", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
