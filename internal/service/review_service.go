package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"coursehub/internal/apperr"
	"coursehub/internal/models"
	"coursehub/internal/repository"
)

var (
	ErrAlreadyReviewed = errors.New("you have already reviewed this course")
	ErrNotReviewed     = errors.New("you have not reviewed this course")
)

// ReviewService handles review submission, editing and deletion for the
// current user. Rating range checks happen here, on the collaborator-facing
// surface; the repository below trusts its callers.
type ReviewService interface {
	Submit(ctx context.Context, userID, courseID int64, rating int, comment string) (*models.Review, error)
	Edit(ctx context.Context, userID, courseID int64, rating int, comment string) (*models.Review, error)
	Remove(ctx context.Context, userID, courseID int64) error
	UserReview(ctx context.Context, userID, courseID int64) (*models.Review, error)
	ListForCourse(ctx context.Context, courseID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, courseRepo repository.CourseRepository, logger *slog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}
	return nil
}

// Submit creates the user's review of the course, stamped with the current
// instant. Submitting twice for the same course fails without touching the
// first review.
func (s *reviewService) Submit(ctx context.Context, userID, courseID int64, rating int, comment string) (*models.Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:    userID,
		CourseID:  courseID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Timestamp: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("creating review failed", "error", err)
		return nil, err
	}
	return review, nil
}

// Edit replaces the rating and comment of the user's existing review and
// refreshes its timestamp. Only the owning user's review is reachable here,
// since lookup is keyed by (user, course).
func (s *reviewService) Edit(ctx context.Context, userID, courseID int64, rating int, comment string) (*models.Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, ErrNotReviewed
		}
		s.logger.Error("loading review failed", "error", err)
		return nil, err
	}

	review.Rating = rating
	review.Comment = strings.TrimSpace(comment)
	review.Timestamp = time.Now()
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.logger.Error("updating review failed", "error", err)
		return nil, err
	}
	return review, nil
}

// Remove deletes the user's review of the course.
func (s *reviewService) Remove(ctx context.Context, userID, courseID int64) error {
	review, err := s.reviewRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return ErrNotReviewed
		}
		s.logger.Error("loading review failed", "error", err)
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		s.logger.Error("deleting review failed", "error", err)
		return err
	}
	return nil
}

// UserReview returns the user's review of the course, or a not-found failure
// when they have not written one.
func (s *reviewService) UserReview(ctx context.Context, userID, courseID int64) (*models.Review, error) {
	review, err := s.reviewRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if !apperr.IsKind(err, apperr.KindNotFound) {
			s.logger.Error("loading review failed", "error", err)
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListForCourse(ctx context.Context, courseID int64) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListForCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("listing course reviews failed", "error", err)
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("listing user reviews failed", "error", err)
		return nil, err
	}
	return reviews, nil
}
