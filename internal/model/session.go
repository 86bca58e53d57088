package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthData Результат регистрации/входа: access токен для заголовка,
// refresh токен и ID сессии для cookies
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
