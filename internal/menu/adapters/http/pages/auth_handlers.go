// Package pages содержит HTTP обработчики страниц с серверным рендерингом.
package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"restomenu/internal/menu/adapters/http/middleware"
	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
	svc "restomenu/internal/menu/ports/services"
	"restomenu/pkg/logger"
)

// Константы для логирования.
const (
	LogPageHome   = "page handler: home"
	LogPageLogin  = "page handler: login"
	LogPageSignup = "page handler: signup"
	LogPageLogout = "page handler: logout"

	ErrorRenderingPage = "error rendering page"
)

// Сообщения, видимые пользователю на страницах входа и регистрации.
const (
	errMissingCredentials = "Please provide both username and password"
	errInvalidCredentials = "Invalid username or password"
	errLoginFailed        = "An error occurred during login"
	errMissingSignupField = "Please fill in all fields"
	errSignupFailed       = "An error occurred during signup"
)

// SessionCookie описывает параметры сессионной cookie.
type SessionCookie struct {
	Name string
	TTL  time.Duration
}

// Handler содержит обработчики страниц аутентификации и меню.
type Handler struct {
	authUseCase   *app.AuthUseCaseImpl
	oauthUseCase  *app.OAuthUseCaseImpl
	menuUseCase   *app.MenuUseCase
	oauthProvider svc.OAuthProvider
	cookie        SessionCookie
}

// NewHandler создает новый экземпляр обработчика страниц.
func NewHandler(
	authUseCase *app.AuthUseCaseImpl,
	oauthUseCase *app.OAuthUseCaseImpl,
	menuUseCase *app.MenuUseCase,
	oauthProvider svc.OAuthProvider,
	cookie SessionCookie,
) *Handler {
	return &Handler{
		authUseCase:   authUseCase,
		oauthUseCase:  oauthUseCase,
		menuUseCase:   menuUseCase,
		oauthProvider: oauthProvider,
		cookie:        cookie,
	}
}

func (h *Handler) setSessionCookie(ctx fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Expires:  time.Now().Add(h.cookie.TTL),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(ctx fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func render(ctx fiber.Ctx, name string, bind fiber.Map) error {
	if err := ctx.Render(name, bind); err != nil {
		return fmt.Errorf("%s: %w", ErrorRenderingPage, err)
	}
	return nil
}

// Home показывает стартовую страницу; вошедшие пользователи сразу
// попадают на панель управления.
func (h *Handler) Home(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogPageHome)

	if middleware.CurrentSession(ctx) != nil {
		return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
	}
	return render(ctx, "home", fiber.Map{})
}

// LoginPage показывает форму входа.
func (h *Handler) LoginPage(ctx fiber.Ctx) error {
	if middleware.CurrentSession(ctx) != nil {
		return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
	}
	return render(ctx, "login", fiber.Map{"error": nil})
}

// Login обрабатывает отправку формы входа.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageLogin)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	if username == "" || password == "" {
		return render(ctx, "login", fiber.Map{"error": errMissingCredentials})
	}

	_, token, err := h.authUseCase.Login(requestCtx, username, password)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return render(ctx, "login", fiber.Map{"error": errInvalidCredentials})
		}
		log.Error(requestCtx, errLoginFailed, zap.Error(err))
		return render(ctx, "login", fiber.Map{"error": errLoginFailed})
	}

	h.setSessionCookie(ctx, token)
	return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
}

// SignupPage показывает форму регистрации.
func (h *Handler) SignupPage(ctx fiber.Ctx) error {
	if middleware.CurrentSession(ctx) != nil {
		return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
	}
	return render(ctx, "signup", fiber.Map{"error": nil})
}

// Signup обрабатывает отправку формы регистрации.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageSignup)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")
	email := ctx.FormValue("email")

	if username == "" || password == "" || email == "" {
		return render(ctx, "signup", fiber.Map{"error": errMissingSignupField})
	}

	_, token, err := h.authUseCase.Signup(requestCtx, username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUsernameLength),
			errors.Is(err, entities.ErrPasswordTooShort):
			return render(ctx, "signup", fiber.Map{"error": capitalized(err)})
		case errors.Is(err, entities.ErrUserAlreadyExists):
			return render(ctx, "signup", fiber.Map{"error": capitalized(err)})
		default:
			log.Error(requestCtx, errSignupFailed, zap.Error(err))
			return render(ctx, "signup", fiber.Map{"error": errSignupFailed})
		}
	}

	h.setSessionCookie(ctx, token)
	return ctx.Redirect().Status(fiber.StatusFound).To("/dashboard")
}

// Logout закрывает сессию и возвращает на страницу входа.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogPageLogout)

	h.clearSessionCookie(ctx)
	return ctx.Redirect().Status(fiber.StatusFound).To("/login")
}

// Dashboard показывает панель управления вошедшего пользователя.
func (h *Handler) Dashboard(ctx fiber.Ctx) error {
	session := middleware.CurrentSession(ctx)
	return render(ctx, "dashboard", fiber.Map{"username": session.Username})
}

// capitalized превращает текст доменной ошибки в сообщение для страницы.
func capitalized(err error) string {
	msg := errors.Unwrap(err)
	text := err.Error()
	if msg != nil {
		text = msg.Error()
	}
	if text == "" {
		return text
	}
	b := []byte(text)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
