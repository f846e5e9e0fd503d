package models

import "time"

// Review is one user's rating of one course. The store enforces at most one
// review per (user, course) pair. Timestamp is set by the service on create
// and refreshed on every edit.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_user_course"`
	CourseID  int64     `json:"course_id" gorm:"not null;uniqueIndex:idx_reviews_user_course"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
