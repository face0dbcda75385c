package models

import "time"

// Lesson represents a single lesson inside a module
//
// ReleaseDate is optional: a nil value means the lesson is available
// immediately once the user is enrolled.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Duration    string     `json:"duration"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
}

// Module represents an ordered group of lessons belonging to one course
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course represents a course in the catalog
//
// Price 0 means the course is free; any positive price gates enrollment
// behind an authenticated user.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Thumbnail   string    `json:"thumbnail"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	Modules     []Module  `json:"modules"`
}

// TotalLessons returns the total lesson count across all modules.
// This is the denominator for completion percentage.
func (c *Course) TotalLessons() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

// FirstLesson returns the first lesson of the first module, or nil if the
// course has no lessons. Used as the redirect target after enrollment.
func (c *Course) FirstLesson() *Lesson {
	for _, m := range c.Modules {
		if len(m.Lessons) > 0 {
			return &m.Lessons[0]
		}
	}
	return nil
}

// FindLesson returns the lesson with the given ID, or nil if absent
func (c *Course) FindLesson(lessonID string) *Lesson {
	for mi := range c.Modules {
		for li := range c.Modules[mi].Lessons {
			if c.Modules[mi].Lessons[li].ID == lessonID {
				return &c.Modules[mi].Lessons[li]
			}
		}
	}
	return nil
}

// CreateLessonRequest represents a lesson inside a course creation request
type CreateLessonRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Duration    string     `json:"duration"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
}

// CreateModuleRequest represents a module inside a course creation request
type CreateModuleRequest struct {
	Title   string                `json:"title"`
	Lessons []CreateLessonRequest `json:"lessons"`
}

// CreateCourseRequest represents a request to create a course manually
type CreateCourseRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	Thumbnail   string                `json:"thumbnail"`
	Author      string                `json:"author"`
	Category    string                `json:"category"`
	Modules     []CreateModuleRequest `json:"modules"`
}

// CourseListItem represents a course in catalog list responses
type CourseListItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Thumbnail       string  `json:"thumbnail"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	TotalLessons    int     `json:"totalLessons"`
	Enrolled        bool    `json:"enrolled"`
	ProgressPercent int     `json:"progressPercent"`
}

// LessonState represents a lesson with its availability for a given caller
// at a given instant
type LessonState struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content,omitempty"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Duration    string     `json:"duration"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	Locked      bool       `json:"locked"`
	Completed   bool       `json:"completed"`
}

// ModuleContent represents a module with per-lesson availability
type ModuleContent struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Lessons []LessonState `json:"lessons"`
}

// CourseContentResponse represents a course with per-lesson lock and
// completion state for the requesting user
type CourseContentResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Thumbnail       string          `json:"thumbnail"`
	Author          string          `json:"author"`
	Category        string          `json:"category"`
	Enrolled        bool            `json:"enrolled"`
	ProgressPercent int             `json:"progressPercent"`
	Modules         []ModuleContent `json:"modules"`
}
