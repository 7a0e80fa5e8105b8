// Package entities определяет доменные сущности приложения.
package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameLength     = errors.New("username must be between 3 and 30 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
)

// Провайдеры аутентификации.
const (
	ProviderLocal    = "local"
	ProviderFacebook = "facebook"
)

// User представляет учетную запись пользователя. Username и PasswordHash
// пусты для учетных записей, созданных через OAuth; FacebookID пуст для
// локальных учетных записей. После привязки внешней идентичности запись
// может содержать оба набора полей.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	FacebookID   string
	Provider     string
	CreatedAt    time.Time
}

// DisplayName возвращает имя пользователя для отображения в сессии.
func (u *User) DisplayName() string {
	return u.Username
}
