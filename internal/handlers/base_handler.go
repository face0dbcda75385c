package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/models"
	"go.uber.org/zap"
)

// UserService resolves session users for handlers.
type UserService interface {
	// GetUser resolves a user by ID.
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the user.
	//
	// Returns the user and repositories.ErrUserNotFound if absent.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// currentUser resolves the authenticated user from the request context.
// Returns nil for anonymous visitors and for stale tokens whose user no
// longer exists.
func currentUser(ctx context.Context, users UserService) *models.User {
	id, ok := auth.GetUserID(ctx)
	if !ok {
		return nil
	}
	user, err := users.GetUser(ctx, id)
	if err != nil {
		return nil
	}
	return user
}
