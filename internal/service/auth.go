package service

import (
	"sync"
)

// AuthService gates the Telegram surface behind a shared password
type AuthService struct {
	botPassword string

	mu         sync.RWMutex
	authorized map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(botPassword string) *AuthService {
	return &AuthService{
		botPassword: botPassword,
		authorized:  make(map[int64]bool),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return s.botPassword != "" && password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized[userID]
}

// AuthorizeUser authorizes a user until the process exits
func (s *AuthService) AuthorizeUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[userID] = true
}
