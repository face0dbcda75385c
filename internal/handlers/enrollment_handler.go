package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EnrollmentService is the interface that wraps methods for enrollment business logic.
type EnrollmentService interface {
	// Method Enroll enrolls the user into the course, reusing an existing
	// enrollment when one is present.
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "user" is the authenticated user, or nil for guests. Guests may only
	// enroll into free courses; for paid courses the response carries
	// RequiresAuth instead of an enrollment.
	//
	// Returns the enrollment outcome and repositories.ErrCourseNotFound if
	// the course is absent.
	Enroll(ctx context.Context, courseID string, user *models.User) (*models.EnrollResponse, error)
}

// EnrollmentHandler handles HTTP requests for enrollments. Its routes are
// registered by RegisterCourseRoutes.
type EnrollmentHandler struct {
	BaseHandler
	service EnrollmentService
	users   UserService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, users UserService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:     svc,
		users:       users,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// Enroll handles POST /api/v1/courses/{courseID}/enroll
// @Summary Enroll into a course
// @Description Enroll the caller into a course. Paid courses require authentication; the 401 response carries requiresAuth so clients can open the login flow.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.EnrollResponse
// @Failure 401 {object} models.EnrollResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{courseID}/enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	user := currentUser(r.Context(), h.users)

	resp, err := h.service.Enroll(r.Context(), courseID, user)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to enroll", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to enroll")
		return
	}

	if resp.RequiresAuth {
		h.respondJSON(w, http.StatusUnauthorized, resp)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
