package models

// Role represents a user's role in the portal
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// GuestUserID is the pseudo-user identity used for anonymous free-course
// enrollment and progress tracking.
const GuestUserID = "guest"

// GuestDisplayName is the display name used on certificates for guests
const GuestDisplayName = "Visitor"

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents a portal user for the lifetime of a session
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// LoginRequest represents a mock login request (role selection, no password)
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// LoginResponse represents a successful login with issued tokens
type LoginResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
