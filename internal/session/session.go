// Package session tracks the currently authenticated user for the lifetime
// of the process. The application supports exactly one active session; the
// holder is created once at startup and passed explicitly to whoever needs
// it instead of living behind a package-level singleton.
package session

import "coursehub/internal/models"

// Session holds at most one authenticated user. It is written and read from
// the single presentation goroutine and is not safe for concurrent use.
type Session struct {
	currentUser *models.User
}

func New() *Session {
	return &Session{}
}

// SetCurrent records the authenticated user. Called after a successful login.
func (s *Session) SetCurrent(user *models.User) {
	s.currentUser = user
}

// Current returns the logged-in user, or nil when nobody is logged in.
func (s *Session) Current() *models.User {
	return s.currentUser
}

func (s *Session) IsLoggedIn() bool {
	return s.currentUser != nil
}

// Clear logs the current user out. After Clear, IsLoggedIn reports false.
func (s *Session) Clear() {
	s.currentUser = nil
}
