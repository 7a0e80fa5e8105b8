// Package repositories определяет интерфейсы доступа к хранилищу.
package repositories

import (
	"context"

	"restomenu/internal/menu/domain/entities"
)

// UserRepository определяет операции над учетными записями пользователей.
// Записи никогда не удаляются; единственная мутация после создания -
// привязка внешней идентичности: LinkFacebook записывает идентификатор
// провайдера и переводит provider учетной записи на facebook.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByFacebookID(ctx context.Context, facebookID string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	LinkFacebook(ctx context.Context, userID, facebookID string) (*entities.User, error)
}
