package repository

import (
	"coursehub/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id int64) (*models.User, error)
	Authenticate(username, password string) (bool, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

// FindByUsername performs an exact, case-sensitive match.
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	// prevent returning a zero-value user struct when the row is missing
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Authenticate looks the user up by username and compares the stored and
// supplied passwords directly. No hashing is involved: this mirrors the
// system being replaced and is a documented weakness, not a bug to fix here.
func (r *userRepository) Authenticate(username, password string) (bool, error) {
	user, err := r.FindByUsername(username)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.Password == password, nil
}
