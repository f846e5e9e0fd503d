package service

import (
	"context"
	"strings"

	"coursehub/internal/apperr"
	"coursehub/internal/models"
	"coursehub/internal/repository"
)

// Hand-written in-memory doubles for the repository interfaces. They mimic
// the store's behavior closely enough for service-level tests: identity
// assignment, uniqueness conflicts and not-found failures. An injectable
// forcedErr simulates connectivity failures.

type mockUserRepo struct {
	users     map[int64]*models.User
	nextID    int64
	forcedErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperr.Conflict("duplicate record", nil)
		}
	}
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("record not found", nil)
}

func (m *mockUserRepo) FindByID(id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.NotFound("record not found", nil)
}

func (m *mockUserRepo) Authenticate(username, password string) (bool, error) {
	if m.forcedErr != nil {
		return false, m.forcedErr
	}
	user, err := m.FindByUsername(username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Password == password, nil
}

type mockCourseRepo struct {
	courses   map[int64]*models.Course
	nextID    int64
	forcedErr error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*models.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *models.Course) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	course.Subject = strings.ToUpper(course.Subject)
	for _, c := range m.courses {
		if c.Subject == course.Subject && c.Number == course.Number && c.Title == course.Title {
			return apperr.Conflict("duplicate record", nil)
		}
	}
	course.ID = m.nextID
	m.nextID++
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

func (m *mockCourseRepo) ListAll(_ context.Context) ([]models.Course, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	var out []models.Course
	for _, c := range m.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) Search(_ context.Context, filter repository.SearchFilter) ([]models.Course, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	var out []models.Course
	for _, c := range m.courses {
		if filter.Subject != "" && !strings.EqualFold(c.Subject, filter.Subject) {
			continue
		}
		if filter.Number != nil && c.Number != *filter.Number {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Title)) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(_ context.Context, id int64) (*models.Course, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	if c, ok := m.courses[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperr.NotFound("record not found", nil)
}

func (m *mockCourseRepo) ListReviewedBy(_ context.Context, userID int64) ([]models.Course, error) {
	return nil, apperr.NotFound("not used by these tests", nil)
}

type mockReviewRepo struct {
	reviews   map[int64]*models.Review
	nextID    int64
	forcedErr error
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[int64]*models.Review), nextID: 1}
}

func (m *mockReviewRepo) Create(_ context.Context, review *models.Review) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	for _, r := range m.reviews {
		if r.UserID == review.UserID && r.CourseID == review.CourseID {
			return apperr.Conflict("duplicate record", nil)
		}
	}
	review.ID = m.nextID
	m.nextID++
	copied := *review
	m.reviews[review.ID] = &copied
	return nil
}

func (m *mockReviewRepo) Update(_ context.Context, review *models.Review) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	stored, ok := m.reviews[review.ID]
	if !ok {
		return apperr.NotFound("review not found", nil)
	}
	stored.Rating = review.Rating
	stored.Comment = review.Comment
	stored.Timestamp = review.Timestamp
	return nil
}

func (m *mockReviewRepo) Delete(_ context.Context, reviewID int64) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.reviews[reviewID]; !ok {
		return apperr.NotFound("review not found", nil)
	}
	delete(m.reviews, reviewID)
	return nil
}

func (m *mockReviewRepo) FindByUserAndCourse(_ context.Context, userID, courseID int64) (*models.Review, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	for _, r := range m.reviews {
		if r.UserID == userID && r.CourseID == courseID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("review not found", nil)
}

func (m *mockReviewRepo) ListForCourse(_ context.Context, courseID int64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.CourseID == courseID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) ListByUser(_ context.Context, userID int64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}
