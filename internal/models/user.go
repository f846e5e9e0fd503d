package models

// User is an account that can log in and write reviews. The password is
// stored and compared as an opaque string; authentication intentionally
// performs no hashing (preserved behavior of the system being replaced).
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
