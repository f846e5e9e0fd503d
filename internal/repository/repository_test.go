package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/database"
	"coursehub/internal/models"
)

// setupTestDB opens a fresh in-memory SQLite database per test so uniqueness
// and foreign keys are enforced by the real store, not simulated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.DSN(":memory:")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "password123"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, subject string, number int, title string) *models.Course {
	t.Helper()
	course := &models.Course{Subject: subject, Number: number, Title: title}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedReview(t *testing.T, db *gorm.DB, userID, courseID int64, rating int) *models.Review {
	t.Helper()
	review := &models.Review{
		UserID:    userID,
		CourseID:  courseID,
		Rating:    rating,
		Timestamp: time.Now(),
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
