package services

import (
	"context"
	"time"

	"restomenu/internal/menu/domain/services"
)

// SessionService определяет выпуск и проверку подписанных сессионных
// токенов, хранимых на стороне клиента.
type SessionService interface {
	Establish(ctx context.Context, userID, username string) (string, time.Time, error)
	Read(ctx context.Context, token string) (*services.Session, error)
}
