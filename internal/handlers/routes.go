package handlers

import (
	"github.com/coursehub/backend/internal/auth"
	"github.com/go-chi/chi/v5"
)

// RegisterCourseRoutes mounts the catalog, enrollment and progress handlers
// under a single /api/v1/courses subtree. The per-course routes share one
// {courseID} subrouter; separate top-level mounts on overlapping patterns
// would shadow each other and make GET /api/v1/courses/{courseID}
// unreachable.
func RegisterCourseRoutes(r chi.Router, tokens *auth.TokenGenerator, courses *CourseHandler, enrollments *EnrollmentHandler, progress *ProgressHandler) {
	r.Route("/api/v1/courses", func(r chi.Router) {
		r.Use(auth.OptionalMiddleware(tokens))
		r.Get("/", courses.ListCourses)
		r.Route("/{courseID}", func(r chi.Router) {
			r.Get("/", courses.GetCourseContent)
			r.Post("/enroll", enrollments.Enroll)
			r.Post("/lessons/{lessonID}/complete", progress.CompleteLesson)
			r.Get("/progress", progress.Progress)
			r.Get("/certificate", progress.Certificate)
		})
	})
}
