package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"restomenu/internal/menu/domain/services"
	svc "restomenu/internal/menu/ports/services"
	"restomenu/pkg/logger"
)

// Константы для работы с сессионными токенами.
const (
	methodEstablish    = "Establish"
	methodRead         = "Read"
	msgSessionOpened   = "session token issued"
	msgInvalidSession  = "invalid session token"
	msgExpiredSession  = "session token has expired"
	errSigningToken    = "error signing session token"
	errCtxReadingToken = "reading session token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// SessionClaims используется для адаптации между доменной моделью и библиотекой JWT.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ServiceSessionJWT реализует интерфейс SessionService поверх подписанных
// JWT. Состояние сессии целиком живет в токене на стороне клиента.
type ServiceSessionJWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewSessionJWT создает новый экземпляр сервиса сессий.
func NewSessionJWT(secretKey string, ttl time.Duration) svc.SessionService {
	if ttl <= 0 {
		ttl = services.DefaultSessionTTL
	}
	return &ServiceSessionJWT{secretKey: []byte(secretKey), ttl: ttl}
}

// Establish выпускает подписанный токен сессии для пользователя.
func (s *ServiceSessionJWT) Establish(ctx context.Context, userID, username string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodEstablish), zap.String("userID", userID))

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errSigningToken, services.ErrGeneratingSessionToken)
	}

	log.Debug(ctx, msgSessionOpened, zap.Time("expiresAt", expiresAt))
	return signed, expiresAt, nil
}

// Read проверяет подпись и срок действия токена и возвращает содержимое
// сессии.
func (s *ServiceSessionJWT) Read(ctx context.Context, tokenString string) (*services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRead))

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgExpiredSession)
			return nil, fmt.Errorf("%s: %w", errCtxReadingToken, services.ErrExpiredSessionToken)
		}
		log.Debug(ctx, msgInvalidSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReadingToken, services.ErrInvalidSessionToken)
	}
	if !token.Valid {
		log.Debug(ctx, msgInvalidSession)
		return nil, fmt.Errorf("%s: %w", errCtxReadingToken, services.ErrInvalidSessionToken)
	}

	return &services.Session{
		UserID:    claims.Subject,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
