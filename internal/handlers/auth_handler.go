package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for session business logic.
type AuthService interface {
	// Method Login creates or reuses a user for the given name, email and
	// role and issues JWT tokens for it.
	//
	// "ctx" is the context for the request.
	// "req" carries the chosen name, email and role.
	//
	// Returns the session user with tokens, or services.ErrValidation when
	// the request fields are missing or malformed.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler handles HTTP requests for sessions
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
	})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Create or reuse a user for the given name, email and role and issue JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to log in", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
