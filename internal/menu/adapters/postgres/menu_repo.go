package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"restomenu/internal/menu/domain/entities"
	"restomenu/internal/menu/ports/repositories"
	"restomenu/pkg/logger"
)

const menuColumns = "id, name, category, price, description, created_at"

// MenuRepository реализует интерфейс repositories.MenuRepository для работы с Postgres.
type MenuRepository struct {
	pool PgxPoolInterface
}

// NewMenuRepository создает новый экземпляр репозитория позиций меню.
func NewMenuRepository(pool PgxPoolInterface) repositories.MenuRepository {
	return &MenuRepository{pool: pool}
}

// List возвращает позиции меню, удовлетворяющие фильтру, новые записи
// первыми.
func (r *MenuRepository) List(ctx context.Context, filter entities.MenuFilter) ([]*entities.MenuItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "List"))

	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing menu items", zap.Error(err))
		return nil, fmt.Errorf("error listing menu items: %w", err)
	}
	defer rows.Close()

	items := make([]*entities.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			log.Error(ctx, "error scanning menu item", zap.Error(err))
			return nil, fmt.Errorf("error scanning menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating menu items", zap.Error(err))
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// buildListQuery собирает SELECT с предикатами по заполненным полям
// фильтра. NaN в границе цены означает нечисловой параметр запроса:
// такой предикат не совпадает ни с одной строкой.
func buildListQuery(filter entities.MenuFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Name != "" {
		conds = append(conds, "name ILIKE '%' || "+arg(filter.Name)+" || '%'")
	}
	if filter.Category != "" {
		conds = append(conds, "category = "+arg(filter.Category))
	}
	if filter.MinPrice != nil {
		if math.IsNaN(*filter.MinPrice) {
			conds = append(conds, "FALSE")
		} else {
			conds = append(conds, "price >= "+arg(*filter.MinPrice))
		}
	}
	if filter.MaxPrice != nil {
		if math.IsNaN(*filter.MaxPrice) {
			conds = append(conds, "FALSE")
		} else {
			conds = append(conds, "price <= "+arg(*filter.MaxPrice))
		}
	}

	query := "SELECT " + menuColumns + " FROM menu_items"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}

// Get возвращает позицию меню по идентификатору.
func (r *MenuRepository) Get(ctx context.Context, id string) (*entities.MenuItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "Get"))

	if _, err := uuid.Parse(id); err != nil {
		log.Debug(ctx, "malformed menu item id", zap.String("id", id))
		return nil, entities.ErrMenuItemNotFound
	}

	query := `
        SELECT ` + menuColumns + `
        FROM menu_items
        WHERE id = $1
    `

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "menu item not found", zap.String("id", id))
			return nil, entities.ErrMenuItemNotFound
		}
		log.Error(ctx, "error querying menu item", zap.Error(err))
		return nil, fmt.Errorf("error querying menu item: %w", err)
	}

	return item, nil
}

// Create создает новую позицию меню. Незаполненные категория и описание
// сохраняются пустыми строками.
func (r *MenuRepository) Create(ctx context.Context, change entities.MenuItemChange) (*entities.MenuItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "Create"))

	query := `
        INSERT INTO menu_items (name, category, price, description)
        VALUES ($1, COALESCE($2, ''), $3, COALESCE($4, ''))
        RETURNING ` + menuColumns + `
    `

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query,
		change.Name,
		change.Category,
		change.Price,
		change.Description,
	))
	if err != nil {
		log.Error(ctx, "error creating menu item", zap.Error(err))
		return nil, fmt.Errorf("error creating menu item: %w", err)
	}

	return item, nil
}

// Update обновляет позицию меню. Поля с пустыми указателями в change
// сохраняют прежние значения.
func (r *MenuRepository) Update(ctx context.Context, id string, change entities.MenuItemChange) (*entities.MenuItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "Update"))

	if _, err := uuid.Parse(id); err != nil {
		log.Debug(ctx, "malformed menu item id", zap.String("id", id))
		return nil, entities.ErrMenuItemNotFound
	}

	query := `
        UPDATE menu_items
        SET name        = COALESCE($2, name),
            category    = COALESCE($3, category),
            price       = COALESCE($4, price),
            description = COALESCE($5, description)
        WHERE id = $1
        RETURNING ` + menuColumns + `
    `

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query,
		id,
		change.Name,
		change.Category,
		change.Price,
		change.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "menu item not found for update", zap.String("id", id))
			return nil, entities.ErrMenuItemNotFound
		}
		log.Error(ctx, "error updating menu item", zap.Error(err))
		return nil, fmt.Errorf("error updating menu item: %w", err)
	}

	return item, nil
}

// Delete удаляет позицию меню по идентификатору. Возвращает false,
// если запись не найдена.
func (r *MenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "Delete"))

	if _, err := uuid.Parse(id); err != nil {
		log.Debug(ctx, "malformed menu item id", zap.String("id", id))
		return false, nil
	}

	query := `
        DELETE FROM menu_items
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting menu item", zap.Error(err))
		return false, fmt.Errorf("error deleting menu item: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Categories возвращает отсортированный список категорий, встречающихся
// в меню, без пустых значений.
func (r *MenuRepository) Categories(ctx context.Context) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "menu"), zap.String("method", "Categories"))

	query := `
        SELECT DISTINCT category
        FROM menu_items
        WHERE category <> ''
        ORDER BY category
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing categories", zap.Error(err))
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			log.Error(ctx, "error scanning category", zap.Error(err))
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating categories", zap.Error(err))
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func scanMenuItem(row pgx.Row) (*entities.MenuItem, error) {
	var item entities.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Description,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
