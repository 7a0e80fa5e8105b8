package services

import "context"

// ExternalProfile - утверждение внешней идентичности, полученное от
// OAuth-провайдера после успешного обмена кода авторизации.
type ExternalProfile struct {
	ID          string
	DisplayName string
	Emails      []string
}

// OAuthProvider определяет обмен с внешним провайдером аутентификации.
// Криптографическая часть рукопожатия делегирована библиотеке провайдера.
type OAuthProvider interface {
	// AuthCodeURL возвращает URL для перенаправления пользователя к провайдеру.
	AuthCodeURL(state string) string
	// Exchange обменивает код авторизации на профиль внешней идентичности.
	Exchange(ctx context.Context, code string) (*ExternalProfile, error)
}
