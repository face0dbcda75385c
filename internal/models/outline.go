package models

// OutlineLesson represents a lesson in a generated course outline
type OutlineLesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Content  string `json:"content"`
}

// OutlineModule represents a module in a generated course outline
type OutlineModule struct {
	Title   string          `json:"title"`
	Lessons []OutlineLesson `json:"lessons"`
}

// CourseOutline represents a structured course draft returned by the outline
// generator
type CourseOutline struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Modules     []OutlineModule `json:"modules"`
}

// GenerateCourseRequest represents a request to draft a course from a topic
// and target audience
type GenerateCourseRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
}
