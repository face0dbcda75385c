package services

import (
	"time"

	"github.com/coursehub/backend/internal/models"
)

// IsLessonLocked reports whether a lesson is locked for the given enrollment
// at the given instant.
//
// A nil enrollment always locks the lesson: this is the access-control gate,
// independent of any release schedule. For an enrolled user the lesson is
// locked only while its release timestamp lies strictly in the future; a
// release timestamp equal to "now" is already unlocked. The function is pure
// so callers can re-evaluate it on a timer and have lessons flip open as
// wall-clock time passes the release instant.
func IsLessonLocked(lesson *models.Lesson, enrollment *models.Enrollment, now time.Time) bool {
	if enrollment == nil {
		return true
	}
	if lesson.ReleaseDate == nil {
		return false
	}
	return lesson.ReleaseDate.After(now)
}

// IsLessonCompleted reports whether the lesson is in the enrollment's
// completed set. A nil enrollment has no completions.
func IsLessonCompleted(enrollment *models.Enrollment, lessonID string) bool {
	if enrollment == nil {
		return false
	}
	return enrollment.Completed(lessonID)
}

// lessonStates computes the per-lesson availability of a course for the
// given enrollment at the given instant
func lessonStates(course *models.Course, enrollment *models.Enrollment, now time.Time) []models.ModuleContent {
	modules := make([]models.ModuleContent, 0, len(course.Modules))
	for _, m := range course.Modules {
		mc := models.ModuleContent{
			ID:      m.ID,
			Title:   m.Title,
			Lessons: make([]models.LessonState, 0, len(m.Lessons)),
		}
		for i := range m.Lessons {
			lesson := &m.Lessons[i]
			locked := IsLessonLocked(lesson, enrollment, now)
			state := models.LessonState{
				ID:          lesson.ID,
				Title:       lesson.Title,
				Duration:    lesson.Duration,
				ReleaseDate: lesson.ReleaseDate,
				Locked:      locked,
				Completed:   IsLessonCompleted(enrollment, lesson.ID),
			}
			// Content and video stay hidden until the lesson unlocks
			if !locked {
				state.Content = lesson.Content
				state.VideoURL = lesson.VideoURL
			}
			mc.Lessons = append(mc.Lessons, state)
		}
		modules = append(modules, mc)
	}
	return modules
}
