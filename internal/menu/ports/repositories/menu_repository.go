package repositories

import (
	"context"

	"restomenu/internal/menu/domain/entities"
)

// MenuRepository определяет CRUD-операции над коллекцией позиций меню.
// Списки всегда упорядочены по времени создания, новые записи первыми.
type MenuRepository interface {
	List(ctx context.Context, filter entities.MenuFilter) ([]*entities.MenuItem, error)
	Get(ctx context.Context, id string) (*entities.MenuItem, error)
	Create(ctx context.Context, change entities.MenuItemChange) (*entities.MenuItem, error)
	Update(ctx context.Context, id string, change entities.MenuItemChange) (*entities.MenuItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
}
