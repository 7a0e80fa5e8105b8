// Package app реализует бизнес-логику приложения.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"restomenu/internal/menu/domain/entities"
	"restomenu/internal/menu/ports/repositories"
	"restomenu/pkg/logger"
)

const (
	msgMenuItemCreated = "menu item created"
	msgMenuItemUpdated = "menu item updated"
	msgMenuItemDeleted = "menu item deleted"
	msgValidationErrs  = "menu payload failed validation"

	errCtxListingItems   = "listing menu items"
	errCtxGettingItem    = "getting menu item"
	errCtxCreatingItem   = "creating menu item"
	errCtxUpdatingItem   = "updating menu item"
	errCtxDeletingItem   = "deleting menu item"
	errCtxListCategories = "listing categories"
)

// MenuUseCase реализует операции над коллекцией позиций меню: валидацию
// входных данных, построение фильтров и оркестрацию CRUD-вызовов.
type MenuUseCase struct {
	menuRepo repositories.MenuRepository
}

// NewMenuUseCase создает новый экземпляр сервиса меню.
func NewMenuUseCase(menuRepo repositories.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menuRepo: menuRepo}
}

// List возвращает позиции меню, удовлетворяющие параметрам поиска,
// новые записи первыми.
func (uc *MenuUseCase) List(ctx context.Context, params FilterParams) ([]*entities.MenuItem, error) {
	items, err := uc.menuRepo.List(ctx, BuildFilter(params))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingItems, err)
	}
	return items, nil
}

// Get возвращает позицию меню по идентификатору.
func (uc *MenuUseCase) Get(ctx context.Context, id string) (*entities.MenuItem, error) {
	item, err := uc.menuRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingItem, err)
	}
	return item, nil
}

// Create валидирует поля в полном режиме и сохраняет новую позицию.
// При ошибках валидации обращения к хранилищу не происходит.
func (uc *MenuUseCase) Create(ctx context.Context, in MenuItemInput) (*entities.MenuItem, []string, error) {
	log := logger.Log(ctx).With(zap.String("method", "MenuUseCase.Create"))

	change, errs := ValidateMenuItem(in, false)
	if len(errs) > 0 {
		log.Debug(ctx, msgValidationErrs, zap.Strings("errors", errs))
		return nil, errs, nil
	}

	item, err := uc.menuRepo.Create(ctx, change)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errCtxCreatingItem, err)
	}

	log.Info(ctx, msgMenuItemCreated, zap.String("itemID", item.ID))
	return item, nil, nil
}

// Update валидирует поля и обновляет существующую позицию. В полном
// режиме заменяются четыре известных поля; в частичном - только
// присутствующие во входных данных.
func (uc *MenuUseCase) Update(ctx context.Context, id string, in MenuItemInput, partial bool) (*entities.MenuItem, []string, error) {
	log := logger.Log(ctx).With(zap.String("method", "MenuUseCase.Update"), zap.String("itemID", id))

	change, errs := ValidateMenuItem(in, partial)
	if len(errs) > 0 {
		log.Debug(ctx, msgValidationErrs, zap.Strings("errors", errs))
		return nil, errs, nil
	}

	item, err := uc.menuRepo.Update(ctx, id, change)
	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%s: %w", errCtxUpdatingItem, err)
	}

	log.Info(ctx, msgMenuItemUpdated)
	return item, nil, nil
}

// Delete удаляет позицию меню; для несуществующего идентификатора
// возвращается ErrMenuItemNotFound.
func (uc *MenuUseCase) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "MenuUseCase.Delete"), zap.String("itemID", id))

	deleted, err := uc.menuRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingItem, err)
	}
	if !deleted {
		return entities.ErrMenuItemNotFound
	}

	log.Info(ctx, msgMenuItemDeleted)
	return nil
}

// Categories возвращает отсортированный список непустых категорий,
// встречающихся в коллекции.
func (uc *MenuUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.menuRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListCategories, err)
	}
	return categories, nil
}
