// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"restomenu/internal/menu/domain/services"
	svc "restomenu/internal/menu/ports/services"
	"restomenu/pkg/logger"
)

// Константы для логирования.
const (
	LogSessionMiddleware = "session middleware"

	ErrorUnreadableSession = "unreadable session token"
)

// sessionLocalsKey - ключ, под которым расшифрованная сессия лежит в Locals.
const sessionLocalsKey = "session"

// NewSessionMiddleware создает промежуточное ПО, извлекающее сессию из
// подписанной cookie. Отсутствующая или невалидная cookie не прерывает
// запрос: сессия просто не попадает в Locals.
func NewSessionMiddleware(sessionSvc svc.SessionService, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "session"))
		log.Debug(requestCtx, LogSessionMiddleware)

		token := ctx.Cookies(cookieName)
		if token == "" {
			return ctx.Next()
		}

		session, err := sessionSvc.Read(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorUnreadableSession, zap.Error(err))
			return ctx.Next()
		}

		ctx.Locals(sessionLocalsKey, session)
		return ctx.Next()
	}
}

// NewRequireAuthMiddleware создает промежуточное ПО, пропускающее только
// запросы с открытой сессией; остальные перенаправляются на страницу входа.
func NewRequireAuthMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if CurrentSession(ctx) == nil {
			return ctx.Redirect().Status(fiber.StatusFound).To("/login")
		}
		return ctx.Next()
	}
}

// CurrentSession возвращает сессию текущего запроса или nil.
func CurrentSession(ctx fiber.Ctx) *services.Session {
	session, _ := ctx.Locals(sessionLocalsKey).(*services.Session)
	return session
}
