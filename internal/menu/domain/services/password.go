// Package services определяет доменные контракты и ошибки вспомогательных сервисов.
package services

import "errors"

// PasswordErrors содержит ошибки, связанные с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// MinPasswordLength - минимальная длина пароля при регистрации.
const MinPasswordLength = 6
