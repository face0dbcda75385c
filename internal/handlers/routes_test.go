package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockCatalogService is a mock implementation of CatalogService
type mockCatalogService struct{}

func (mockCatalogService) ListCourses(ctx context.Context, userID string) ([]models.CourseListItem, error) {
	return []models.CourseListItem{{ID: "c1"}}, nil
}

func (mockCatalogService) GetCourseContent(ctx context.Context, courseID, userID string) (*models.CourseContentResponse, error) {
	if courseID == "missing" {
		return nil, repositories.ErrCourseNotFound
	}
	return &models.CourseContentResponse{ID: courseID}, nil
}

// mockEnrollmentService is a mock implementation of EnrollmentService
type mockEnrollmentService struct{}

func (mockEnrollmentService) Enroll(ctx context.Context, courseID string, user *models.User) (*models.EnrollResponse, error) {
	return &models.EnrollResponse{CourseID: courseID}, nil
}

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct{}

func (mockProgressService) CompleteLesson(ctx context.Context, userID, courseID, lessonID string) error {
	return nil
}

func (mockProgressService) Progress(ctx context.Context, userID, courseID string) (*models.ProgressResponse, error) {
	return &models.ProgressResponse{CourseID: courseID}, nil
}

func (mockProgressService) Certificate(ctx context.Context, user *models.User, courseID string) (*models.CertificateResponse, error) {
	return &models.CertificateResponse{CourseTitle: "Course " + courseID, CompletedAt: time.Now()}, nil
}

// mockUserService is a mock implementation of UserService
type mockUserService struct{}

func (mockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func newCourseRouter() chi.Router {
	logger := zap.NewNop()
	tokens := auth.NewTokenGenerator("test-secret", time.Hour, time.Hour)

	r := chi.NewRouter()
	RegisterCourseRoutes(r, tokens,
		NewCourseHandler(mockCatalogService{}, logger),
		NewEnrollmentHandler(mockEnrollmentService{}, mockUserService{}, logger),
		NewProgressHandler(mockProgressService{}, mockUserService{}, logger),
	)
	return r
}

func TestRegisterCourseRoutes(t *testing.T) {
	r := newCourseRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{
			name:       "catalog list",
			method:     http.MethodGet,
			target:     "/api/v1/courses",
			wantStatus: http.StatusOK,
		},
		{
			name:       "course content",
			method:     http.MethodGet,
			target:     "/api/v1/courses/c1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "course content for unknown course",
			method:     http.MethodGet,
			target:     "/api/v1/courses/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "enroll",
			method:     http.MethodPost,
			target:     "/api/v1/courses/c1/enroll",
			wantStatus: http.StatusOK,
		},
		{
			name:       "complete lesson",
			method:     http.MethodPost,
			target:     "/api/v1/courses/c1/lessons/l1/complete",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "progress",
			method:     http.MethodGet,
			target:     "/api/v1/courses/c1/progress",
			wantStatus: http.StatusOK,
		},
		{
			name:       "certificate",
			method:     http.MethodGet,
			target:     "/api/v1/courses/c1/certificate",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRegisterCourseRoutes_CourseContentDispatch(t *testing.T) {
	r := newCourseRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/c1", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	// The course ID path segment must reach the catalog handler, not a
	// sibling subrouter with no root route
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"c1"`)
}
