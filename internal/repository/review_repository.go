package repository

import (
	"context"

	"coursehub/internal/apperr"
	"coursehub/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations. Rating
// range validation happens above this layer; the repository only guards the
// invariants the store itself enforces.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, reviewID int64) error
	FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Review, error)
	ListForCourse(ctx context.Context, courseID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create stores a new review. A second review for the same (user, course)
// pair violates the unique index and comes back as a conflict without
// touching the existing row.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

// Update replaces rating, comment and timestamp for the row identified by
// review.ID. A missing id reports zero rows affected as a not-found failure.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":    review.Rating,
			"comment":   review.Comment,
			"timestamp": review.Timestamp,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("review not found", nil)
	}
	return nil
}

// Delete removes a review by id, failing when no row matched.
func (r *reviewRepository) Delete(ctx context.Context, reviewID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("review not found", nil)
	}
	return nil
}

// FindByUserAndCourse returns the user's review for the course. The unique
// index guarantees at most one row.
func (r *reviewRepository) FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&review).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListForCourse(ctx context.Context, courseID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}
