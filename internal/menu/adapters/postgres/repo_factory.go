// Package postgres реализует репозитории поверх PostgreSQL.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"restomenu/internal/menu/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	menuRepo repositories.MenuRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		menuRepo: NewMenuRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// MenuRepository возвращает репозиторий позиций меню.
func (f *RepositoryFactory) MenuRepository() repositories.MenuRepository {
	return f.menuRepo
}
