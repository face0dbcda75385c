package models

import "time"

// Comment represents a user comment on a lesson
type Comment struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lessonId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest represents a request to post a comment on a lesson
type CreateCommentRequest struct {
	Content string `json:"content"`
}
