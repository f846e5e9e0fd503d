package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/database"
	"coursehub/internal/repository"
	"coursehub/internal/session"
)

// TestFullUserJourney walks the whole surface against a real in-memory
// store: registration, login, adding a course, then the review lifecycle
// with the average rating tracking each step.
func TestFullUserJourney(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(database.DSN(":memory:")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := testLogger()
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	auth := NewAuthService(userRepo, log)
	courses := NewCourseService(courseRepo, log)
	reviews := NewReviewService(reviewRepo, courseRepo, log)
	sess := session.New()
	ctx := context.Background()

	// Register alice.
	_, err = auth.Register("alice", "password123", "password123")
	require.NoError(t, err)

	// A second registration with the same username fails.
	_, err = auth.Register("alice", "other1234", "other1234")
	assert.ErrorIs(t, err, ErrNameInUse)

	// Login seeds the session.
	alice, err := auth.Login("alice", "password123")
	require.NoError(t, err)
	sess.SetCurrent(alice)
	require.True(t, sess.IsLoggedIn())
	assert.Equal(t, "alice", sess.Current().Username)

	// Add a course.
	course, err := courses.AddCourse(ctx, "CS", "2100", "Data Structures")
	require.NoError(t, err)

	// Submit a review; the average becomes 4.
	_, err = reviews.Submit(ctx, alice.ID, course.ID, 4, "good")
	require.NoError(t, err)

	got, err := courses.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)

	// A second review by alice for the same course fails.
	_, err = reviews.Submit(ctx, alice.ID, course.ID, 5, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// Editing to 2 moves the average to 2.
	_, err = reviews.Edit(ctx, alice.ID, course.ID, 2, "changed my mind")
	require.NoError(t, err)

	got, err = courses.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.AverageRating, 1e-9)

	// My-reviews shows the course with alice's own rating.
	mine, err := courses.ReviewedBy(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.InDelta(t, 2.0, mine[0].AverageRating, 1e-9)

	// Deleting the review reverts the course to "no ratings yet".
	require.NoError(t, reviews.Remove(ctx, alice.ID, course.ID))

	got, err = courses.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AverageRating)
	assert.False(t, got.HasRatings())

	// Logout clears the session.
	sess.Clear()
	assert.False(t, sess.IsLoggedIn())
}
