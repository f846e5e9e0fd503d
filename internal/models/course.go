package models

// Course identity is the (subject, number, title) triple; the store enforces
// its uniqueness. AverageRating is derived from reviews at query time and is
// never persisted: 0 means "no ratings yet".
type Course struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Subject string `json:"subject" gorm:"not null;uniqueIndex:idx_courses_identity"`
	Number  int    `json:"number" gorm:"not null;uniqueIndex:idx_courses_identity"`
	Title   string `json:"title" gorm:"not null;uniqueIndex:idx_courses_identity"`

	// Populated by repository queries (AVG over reviews, or the caller's own
	// rating in ListReviewedBy). Read-only and excluded from migration.
	AverageRating float64 `json:"average_rating" gorm:"->;-:migration"`
}

func (Course) TableName() string {
	return "courses"
}

// HasRatings reports whether the course has at least one review behind its
// average. Ratings are 1-5, so a zero average can only mean "none".
func (c Course) HasRatings() bool {
	return c.AverageRating > 0
}
