package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string // Хэш refresh токена
	ExpiresAt    time.Time
}

// Expired сессия истекла к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
