package service

import (
	"errors"
	"log/slog"
	"strings"

	"coursehub/internal/apperr"
	"coursehub/internal/models"
	"coursehub/internal/repository"
)

var (
	ErrNameInUse          = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const minPasswordLength = 8

// AuthService handles registration and login. Passwords are stored and
// compared as opaque strings, matching the system this replaces; do not
// "fix" this by hashing, it changes observable authentication behavior.
type AuthService interface {
	Register(username, password, confirmPassword string) (*models.User, error)
	Login(username, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewAuthService(userRepo repository.UserRepository, logger *slog.Logger) AuthService {
	return &authService{userRepo: userRepo, logger: logger}
}

// Register creates a new user account. The username must be unused, the
// password at least 8 characters and equal to its confirmation.
func (s *authService) Register(username, password, confirmPassword string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if username == "" {
		return nil, apperr.Validation("username is required")
	}
	if password == "" {
		return nil, apperr.Validation("password is required")
	}
	if password != confirmPassword {
		return nil, apperr.Validation("passwords do not match")
	}
	if len(password) < minPasswordLength {
		return nil, apperr.Validation("password must be at least %d characters", minPasswordLength)
	}

	// Pre-check so the common case gets a clean message; the unique index is
	// still the source of truth below.
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrNameInUse
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		s.logger.Error("looking up username failed", "error", err)
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: password,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, ErrNameInUse
		}
		s.logger.Error("creating user failed", "error", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates the user and returns the account on success. The
// caller decides what to do with it (normally: seed the session).
func (s *authService) Login(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	ok, err := s.userRepo.Authenticate(username, password)
	if err != nil {
		s.logger.Error("authentication lookup failed", "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		s.logger.Error("loading authenticated user failed", "error", err)
		return nil, err
	}
	return user, nil
}
