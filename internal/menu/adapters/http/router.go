// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"restomenu/internal/menu/adapters/http/menus"
	"restomenu/internal/menu/adapters/http/middleware"
	"restomenu/internal/menu/adapters/http/pages"
	"restomenu/internal/menu/app"
	svc "restomenu/internal/menu/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	fiberApp *fiber.App,
	authUseCase *app.AuthUseCaseImpl,
	oauthUseCase *app.OAuthUseCaseImpl,
	menuUseCase *app.MenuUseCase,
	oauthProvider svc.OAuthProvider,
	sessionSvc svc.SessionService,
	cookie pages.SessionCookie,
) {
	pagesHandler := pages.NewHandler(authUseCase, oauthUseCase, menuUseCase, oauthProvider, cookie)
	menusHandler := menus.NewHandler(menuUseCase)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())
	fiberApp.Use(middleware.NewSessionMiddleware(sessionSvc, cookie.Name))

	// Публичные страницы.
	fiberApp.Get("/", pagesHandler.Home)
	fiberApp.Get("/login", pagesHandler.LoginPage)
	fiberApp.Post("/login", pagesHandler.Login)
	fiberApp.Get("/signup", pagesHandler.SignupPage)
	fiberApp.Post("/signup", pagesHandler.Signup)
	fiberApp.Get("/logout", pagesHandler.Logout)
	fiberApp.Post("/logout", pagesHandler.Logout)

	// Вход через внешнего провайдера.
	fiberApp.Get("/auth/facebook", pagesHandler.OAuthRedirect)
	fiberApp.Get("/auth/facebook/callback", pagesHandler.OAuthCallback)

	// Страницы меню (требуют открытой сессии).
	protected := fiberApp.Group("", middleware.NewRequireAuthMiddleware())
	protected.Get("/dashboard", pagesHandler.Dashboard)
	protected.Get("/create", pagesHandler.CreatePage)
	protected.Post("/create", pagesHandler.Create)
	protected.Get("/update", pagesHandler.UpdatePage)
	protected.Post("/update/:id", pagesHandler.Update)
	protected.Post("/delete/:id", pagesHandler.Delete)
	protected.Get("/read", pagesHandler.Read)

	// JSON API меню. Сессией не защищено: поверхность намеренно
	// публичная, в отличие от страниц.
	api := fiberApp.Group("/api/menus")
	api.Get("/", menusHandler.List)
	api.Get("/:id", menusHandler.Get)
	api.Post("/", menusHandler.Create)
	api.Put("/:id", menusHandler.Update)
	api.Patch("/:id", menusHandler.Patch)
	api.Delete("/:id", menusHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
