// Package services предоставляет реализации вспомогательных сервисов приложения:
// хэширование паролей, сессионные токены и обмен с OAuth-провайдером.
package services

import (
	"time"

	"restomenu/internal/menu/ports/services"
)

// ServiceFactory создает все необходимые сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	sessionService  services.SessionService
	oauthProvider   services.OAuthProvider
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(
	sessionSecret string,
	sessionTTL time.Duration,
	bcryptCost int,
	facebookClientID, facebookClientSecret, facebookRedirectURL string,
) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		sessionService:  NewSessionJWT(sessionSecret, sessionTTL),
		oauthProvider:   NewFacebookOAuth(facebookClientID, facebookClientSecret, facebookRedirectURL),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// SessionService возвращает сервис сессионных токенов.
func (f *ServiceFactory) SessionService() services.SessionService {
	return f.sessionService
}

// OAuthProvider возвращает провайдера внешней аутентификации.
func (f *ServiceFactory) OAuthProvider() services.OAuthProvider {
	return f.oauthProvider
}
