package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for progress business logic.
type ProgressService interface {
	// Method CompleteLesson marks a lesson as completed for the user. The
	// call is idempotent and silently ignores users with no enrollment.
	//
	// "ctx" is the context for the request.
	// "userID" identifies the caller; guests use models.GuestUserID.
	// "courseID" is the ID of the course.
	// "lessonID" is the ID of the lesson within the course.
	//
	// Returns repositories.ErrCourseNotFound or repositories.ErrLessonNotFound
	// when the target is absent.
	CompleteLesson(ctx context.Context, userID, courseID, lessonID string) error
	// Method Progress retrieves the caller's progress for a course. Callers
	// with no enrollment get zero progress.
	//
	// "ctx" is the context for the request.
	// "userID" identifies the caller; guests use models.GuestUserID.
	// "courseID" is the ID of the course.
	//
	// Returns the progress and repositories.ErrCourseNotFound if absent.
	Progress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error)
	// Method Certificate retrieves the completion certificate for a course.
	//
	// "ctx" is the context for the request.
	// "user" is the authenticated user, or nil for guests.
	// "courseID" is the ID of the course.
	//
	// Returns services.ErrCertificateNotAvailable until every lesson of the
	// course is completed.
	Certificate(ctx context.Context, user *models.User, courseID string) (*models.CertificateResponse, error)
}

// ProgressHandler handles HTTP requests for lesson progress. Its routes are
// registered by RegisterCourseRoutes.
type ProgressHandler struct {
	BaseHandler
	service ProgressService
	users   UserService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, users UserService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		users:       users,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// CompleteLesson handles POST /api/v1/courses/{courseID}/lessons/{lessonID}/complete
// @Summary Complete a lesson
// @Description Mark a lesson as completed for the caller. Idempotent.
// @Tags progress
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Param lessonID path string true "Lesson ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{courseID}/lessons/{lessonID}/complete [post]
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	lessonID := chi.URLParam(r, "lessonID")
	userID := callerID(r.Context())

	if err := h.service.CompleteLesson(r.Context(), userID, courseID, lessonID); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) || errors.Is(err, repositories.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to complete lesson", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to complete lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Progress handles GET /api/v1/courses/{courseID}/progress
// @Summary Get course progress
// @Description Get the caller's completion progress for a course
// @Tags progress
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.ProgressResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{courseID}/progress [get]
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	userID := callerID(r.Context())

	progress, err := h.service.Progress(r.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to get progress", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// Certificate handles GET /api/v1/courses/{courseID}/certificate
// @Summary Get course certificate
// @Description Get the completion certificate for a course the caller has fully completed
// @Tags progress
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.CertificateResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{courseID}/certificate [get]
func (h *ProgressHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	user := currentUser(r.Context(), h.users)

	cert, err := h.service.Certificate(r.Context(), user, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		if errors.Is(err, services.ErrCertificateNotAvailable) {
			h.respondError(w, http.StatusNotFound, "certificate not available")
			return
		}
		h.logger.Error("failed to get certificate", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get certificate")
		return
	}

	h.respondJSON(w, http.StatusOK, cert)
}
