package repository

import (
	"context"
	"strings"

	"coursehub/internal/models"

	"gorm.io/gorm"
)

// SearchFilter carries the optional course search criteria. Empty Subject and
// Title mean "no filter"; a nil Number means "no filter". Supplied filters
// are combined with AND, so a zero-value filter matches every course.
type SearchFilter struct {
	Subject string
	Number  *int
	Title   string
}

// CourseRepository defines the interface for course data operations. Every
// read joins the course with its aggregate rating; result order is
// unspecified, callers sort when presenting.
type CourseRepository interface {
	ListAll(ctx context.Context) ([]models.Course, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	ListReviewedBy(ctx context.Context, userID int64) ([]models.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// withAverage joins courses with their reviews and computes the mean rating
// at query time. Courses without reviews report 0, never NULL or NaN.
func (r *courseRepository) withAverage(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Course{}).
		Select("courses.id, courses.subject, courses.number, courses.title, IFNULL(AVG(reviews.rating), 0) AS average_rating").
		Joins("LEFT JOIN reviews ON reviews.course_id = courses.id").
		Group("courses.id")
}

func (r *courseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.withAverage(ctx).Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Search applies each supplied filter: subject is a case-insensitive exact
// match, number an exact match, title a case-insensitive substring match.
// With no filters it behaves like ListAll.
func (r *courseRepository) Search(ctx context.Context, filter SearchFilter) ([]models.Course, error) {
	q := r.withAverage(ctx)

	if filter.Subject != "" {
		q = q.Where("UPPER(courses.subject) = UPPER(?)", filter.Subject)
	}
	if filter.Number != nil {
		q = q.Where("courses.number = ?", *filter.Number)
	}
	if filter.Title != "" {
		q = q.Where("UPPER(courses.title) LIKE UPPER(?)", "%"+filter.Title+"%")
	}

	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Create stores a new course. The subject is normalized to uppercase; a
// duplicate (subject, number, title) triple comes back as a conflict.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	course.Subject = strings.ToUpper(course.Subject)
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return translate(err)
	}
	// GORM populates course.ID
	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := r.withAverage(ctx).Where("courses.id = ?", id).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// ListReviewedBy returns one course per review the user wrote. AverageRating
// carries that review's rating, not the global mean: the caller is asking
// "what did I give this course", so the personal value is the right one.
func (r *courseRepository) ListReviewedBy(ctx context.Context, userID int64) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Select("courses.id, courses.subject, courses.number, courses.title, reviews.rating AS average_rating").
		Joins("JOIN reviews ON reviews.course_id = courses.id").
		Where("reviews.user_id = ?", userID).
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}
