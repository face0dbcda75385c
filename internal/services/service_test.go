package services

import (
	"context"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
)

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses      []*models.Course
	err          error
	createErr    error
	deleteErr    error
	created      []*models.Course
	deletedIDs   []string
	createCalled bool
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrCourseNotFound
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, course)
	m.courses = append(m.courses, course)
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, c := range m.courses {
		if c.ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			m.deletedIDs = append(m.deletedIDs, id)
			return nil
		}
	}
	return repositories.ErrCourseNotFound
}

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrollments   []*models.Enrollment
	err           error
	createErr     error
	replaceErr    error
	createCalled  bool
	replaceCalled bool
	replaced      []*models.Enrollment
}

func (m *mockEnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.enrollments, nil
}

func (m *mockEnrollmentRepository) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, repositories.ErrEnrollmentNotFound
}

func (m *mockEnrollmentRepository) GetByUser(ctx context.Context, userID string) ([]*models.Enrollment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*models.Enrollment
	for _, e := range m.enrollments {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	m.enrollments = append(m.enrollments, enrollment)
	return nil
}

func (m *mockEnrollmentRepository) ReplaceAll(ctx context.Context, enrollments []*models.Enrollment) error {
	m.replaceCalled = true
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = enrollments
	m.enrollments = enrollments
	return nil
}

// mockCommentRepository is a mock implementation of CommentRepository
type mockCommentRepository struct {
	comments  []*models.Comment
	err       error
	createErr error
}

func (m *mockCommentRepository) GetByLesson(ctx context.Context, lessonID string) ([]*models.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.comments, nil
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.comments = append(m.comments, comment)
	return nil
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users     []*models.User
	err       error
	createErr error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users = append(m.users, user)
	return nil
}

// mockOutlineGenerator is a mock implementation of OutlineGenerator
type mockOutlineGenerator struct {
	outline   *models.CourseOutline
	err       error
	lastTopic string
	lastAud   string
	callCount int
}

func (m *mockOutlineGenerator) GenerateOutline(ctx context.Context, topic, audience string) (*models.CourseOutline, error) {
	m.callCount++
	m.lastTopic = topic
	m.lastAud = audience
	if m.err != nil {
		return nil, m.err
	}
	return m.outline, nil
}

// testCourse builds a course with the given lesson ids spread over one module
func testCourse(id string, price float64, lessonIDs ...string) *models.Course {
	lessons := make([]models.Lesson, 0, len(lessonIDs))
	for _, lid := range lessonIDs {
		lessons = append(lessons, models.Lesson{
			ID:      lid,
			Title:   "Lesson " + lid,
			Content: "content of " + lid,
		})
	}
	return &models.Course{
		ID:          id,
		Title:       "Course " + id,
		Description: "description",
		Price:       price,
		Modules: []models.Module{
			{ID: id + "-m1", Title: "Module 1", Lessons: lessons},
		},
	}
}

// fixedNow pins a service clock to a known instant
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
