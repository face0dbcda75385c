package repositories

import (
	"time"

	"github.com/coursehub/backend/internal/models"
)

// SeedCourses returns the demo catalog the service boots with: a free course
// available immediately and a paid course with one drip-released lesson.
func SeedCourses(now time.Time) []*models.Course {
	drip := now.Add(48 * time.Hour)

	return []*models.Course{
		{
			ID:          "c1",
			Title:       "Body Analysis Fundamentals",
			Description: "An introduction to the fundamentals of body analysis therapy.",
			Price:       0,
			Thumbnail:   "https://images.unsplash.com/photo-1544027993-37dbfe43562a?w=800&h=600&fit=crop",
			Author:      "Priscilla Moreira",
			Category:    "Beginner",
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
			Modules: []models.Module{
				{
					ID:    "m1-c1",
					Title: "Foundations and Practice",
					Lessons: []models.Lesson{
						{
							ID:       "l1-m1-c1",
							Title:    "Lesson 01: Foundations of Body Analysis",
							Content:  "**Topic:** How body shape reveals the mind and hidden emotions.",
							VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
							Duration: "60:00",
						},
						{
							ID:       "l2-m1-c1",
							Title:    "Lesson 02: Reading Everyday Gestures",
							Content:  "**Topic:** Spotting repeated gestures and what they signal.",
							Duration: "45:00",
						},
					},
				},
			},
		},
		{
			ID:          "c2",
			Title:       "Professional Body Analyst Certification",
			Description: "The complete certification track for professional body analysts.",
			Price:       1997.00,
			Thumbnail:   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=800&h=600&fit=crop",
			Author:      "Priscilla Moreira",
			Category:    "Professional",
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			Modules: []models.Module{
				{
					ID:    "m1-c2",
					Title: "Certification Module 1",
					Lessons: []models.Lesson{
						{
							ID:       "l1-m1-c2",
							Title:    "Orientation and Method Overview",
							Content:  "Welcome to the certification track.",
							Duration: "20:00",
						},
						{
							ID:          "l2-m1-c2",
							Title:       "Live Session: Character Structures",
							Content:     "Released on schedule with the live cohort.",
							Duration:    "90:00",
							ReleaseDate: &drip,
						},
					},
				},
			},
		},
	}
}
