package services

import (
	"errors"
	"time"
)

// SessionErrors содержит ошибки, связанные с сессионными токенами.
var (
	ErrInvalidSessionToken    = errors.New("invalid session token")
	ErrExpiredSessionToken    = errors.New("session token has expired")
	ErrGeneratingSessionToken = errors.New("failed to generate session token")
)

// DefaultSessionTTL - абсолютный срок жизни сессии.
const DefaultSessionTTL = 24 * time.Hour

// Session описывает расшифрованное содержимое сессионного токена.
// Токен хранится только на стороне клиента; серверного реестра сессий нет.
type Session struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}
