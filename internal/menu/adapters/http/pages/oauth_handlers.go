package pages

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"restomenu/pkg/logger"
)

// Константы для логирования.
const (
	LogOAuthRedirect = "page handler: oauth redirect"
	LogOAuthCallback = "page handler: oauth callback"

	ErrorGeneratingState = "error generating oauth state"
	ErrorStateMismatch   = "oauth state mismatch"
	ErrorMissingCode     = "oauth callback without authorization code"
	ErrorExchangingCode  = "error exchanging authorization code"
	ErrorResolvingUser   = "error resolving external identity"
)

const (
	oauthStateCookie = "oauthstate"
	oauthStateTTL    = 10 * time.Minute
)

// OAuthRedirect перенаправляет пользователя к провайдеру, предварительно
// сохранив одноразовый state в cookie для защиты от CSRF.
func (h *Handler) OAuthRedirect(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogOAuthRedirect)

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		log.Error(requestCtx, ErrorGeneratingState, zap.Error(err))
		return ctx.Redirect().Status(fiber.StatusFound).To("/login")
	}
	state := base64.URLEncoding.EncodeToString(b)

	ctx.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(oauthStateTTL),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Redirect().Status(fiber.StatusFound).To(h.oauthProvider.AuthCodeURL(state))
}

// OAuthCallback завершает рукопожатие с провайдером: сверяет state,
// обменивает код на профиль и открывает сессию для найденного либо
// созданного пользователя. Любой сбой возвращает на страницу входа.
func (h *Handler) OAuthCallback(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogOAuthCallback)

	state := ctx.Cookies(oauthStateCookie)
	if state == "" || ctx.Query("state") != state {
		log.Debug(requestCtx, ErrorStateMismatch)
		return ctx.Redirect().Status(fiber.StatusFound).To("/login")
	}

	code := ctx.Query("code")
	if code == "" {
		log.Debug(requestCtx, ErrorMissingCode)
		return ctx.Redirect().Status(fiber.StatusFound).To("/login")
	}

	profile, err := h.oauthProvider.Exchange(requestCtx, code)
	if err != nil {
		log.Error(requestCtx, ErrorExchangingCode, zap.Error(err))
		return ctx.Redirect().Status(fiber.StatusFound).To("/login")
	}

	_, token, err := h.oauthUseCase.ResolveExternalIdentity(requestCtx, profile)
	if err != nil {
		log.Error(requestCtx, ErrorResolvingUser, zap.Error(err))
		return ctx.Redirect().Status(fiber.StatusFound).To("/login")
	}

	h.setSessionCookie(ctx, token)
	return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
}
