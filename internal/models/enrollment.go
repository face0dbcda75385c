package models

import (
	"slices"
	"time"
)

// Enrollment represents a user's registration in a course
//
// The (UserID, CourseID) pair identifies an enrollment; at most one exists
// per pair. CompletedLessonIDs is a membership set; insertion order carries
// no meaning. CompletedAt is present iff every lesson in the course has been
// completed, and once set it is never cleared.
type Enrollment struct {
	UserID             string     `json:"userId"`
	CourseID           string     `json:"courseId"`
	CompletedLessonIDs []string   `json:"completedLessonIds"`
	EnrolledAt         time.Time  `json:"enrolledAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

// Completed reports whether the lesson is in the enrollment's completed set
func (e *Enrollment) Completed(lessonID string) bool {
	return slices.Contains(e.CompletedLessonIDs, lessonID)
}

// EnrollResponse represents the outcome of an enroll request
//
// RequiresAuth is true when a paid course was requested without an
// authenticated user; no enrollment is created in that case and CourseID is
// echoed back so the client can retry the same enrollment after logging in.
type EnrollResponse struct {
	RequiresAuth     bool        `json:"requiresAuth,omitempty"`
	CourseID         string      `json:"courseId"`
	Enrollment       *Enrollment `json:"enrollment,omitempty"`
	RedirectLessonID string      `json:"redirectLessonId,omitempty"`
}

// ProgressResponse represents a user's progress in a course
type ProgressResponse struct {
	CourseID        string     `json:"courseId"`
	CompletedCount  int        `json:"completedCount"`
	TotalLessons    int        `json:"totalLessons"`
	ProgressPercent int        `json:"progressPercent"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// CertificateResponse represents completion certificate data for a finished
// course
type CertificateResponse struct {
	UserName    string    `json:"userName"`
	CourseTitle string    `json:"courseTitle"`
	CompletedAt time.Time `json:"completedAt"`
}
