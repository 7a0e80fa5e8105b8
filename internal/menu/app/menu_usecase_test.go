package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
)

func TestMenuUseCaseList(t *testing.T) {
	items := []*entities.MenuItem{
		{ID: "id-2", Name: "Newer", Price: 5, CreatedAt: time.Now()},
		{ID: "id-1", Name: "Older", Price: 3, CreatedAt: time.Now().Add(-time.Hour)},
	}

	menuRepo := new(mockMenuRepository)
	menuRepo.On("List", mock.Anything, mock.MatchedBy(func(f entities.MenuFilter) bool {
		return f.Name == "pizza" && f.Category == "Desserts" && f.MinPrice != nil && *f.MinPrice == 2
	})).Return(items, nil).Once()

	menuUseCase := app.NewMenuUseCase(menuRepo)
	got, err := menuUseCase.List(context.Background(), app.FilterParams{
		Name:     "pizza",
		Category: "Desserts",
		MinPrice: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, items, got)
	menuRepo.AssertExpectations(t)
}

func TestMenuUseCaseCreate(t *testing.T) {
	t.Run("validation failure yields no repository call", func(t *testing.T) {
		menuRepo := new(mockMenuRepository)

		menuUseCase := app.NewMenuUseCase(menuRepo)
		item, errs, err := menuUseCase.Create(context.Background(), app.MenuItemInput{})

		require.NoError(t, err)
		assert.Nil(t, item)
		assert.Equal(t, []string{app.MsgNameRequired, app.MsgInvalidPrice}, errs)
		menuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("valid input persists normalized change", func(t *testing.T) {
		created := &entities.MenuItem{ID: "id-1", Name: "Tea", Price: 2.5}

		menuRepo := new(mockMenuRepository)
		menuRepo.On("Create", mock.Anything, mock.MatchedBy(func(c entities.MenuItemChange) bool {
			return c.Name != nil && *c.Name == "Tea" && c.Price != nil && *c.Price == 2.5
		})).Return(created, nil).Once()

		menuUseCase := app.NewMenuUseCase(menuRepo)
		item, errs, err := menuUseCase.Create(context.Background(), app.MenuItemInput{
			Name:  strPtr(" Tea "),
			Price: strPtr("2.5"),
		})

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, created, item)
		menuRepo.AssertExpectations(t)
	})
}

func TestMenuUseCaseUpdate(t *testing.T) {
	t.Run("partial update passes through only present fields", func(t *testing.T) {
		updated := &entities.MenuItem{ID: "id-1", Name: "Tea", Price: 4}

		menuRepo := new(mockMenuRepository)
		menuRepo.On("Update", mock.Anything, "id-1", mock.MatchedBy(func(c entities.MenuItemChange) bool {
			return c.Name == nil && c.Price != nil && *c.Price == 4
		})).Return(updated, nil).Once()

		menuUseCase := app.NewMenuUseCase(menuRepo)
		item, errs, err := menuUseCase.Update(context.Background(), "id-1", app.MenuItemInput{Price: strPtr("4")}, true)

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, updated, item)
	})

	t.Run("missing item propagates not found", func(t *testing.T) {
		menuRepo := new(mockMenuRepository)
		menuRepo.On("Update", mock.Anything, "missing", mock.Anything).
			Return(nil, entities.ErrMenuItemNotFound).Once()

		menuUseCase := app.NewMenuUseCase(menuRepo)
		_, _, err := menuUseCase.Update(context.Background(), "missing", app.MenuItemInput{
			Name:  strPtr("Tea"),
			Price: strPtr("4"),
		}, false)

		assert.ErrorIs(t, err, entities.ErrMenuItemNotFound)
	})
}

func TestMenuUseCaseDelete(t *testing.T) {
	t.Run("existing item deleted", func(t *testing.T) {
		menuRepo := new(mockMenuRepository)
		menuRepo.On("Delete", mock.Anything, "id-1").Return(true, nil).Once()

		menuUseCase := app.NewMenuUseCase(menuRepo)
		assert.NoError(t, menuUseCase.Delete(context.Background(), "id-1"))
	})

	t.Run("missing item yields not found instead of a fault", func(t *testing.T) {
		menuRepo := new(mockMenuRepository)
		menuRepo.On("Delete", mock.Anything, "missing").Return(false, nil).Once()

		menuUseCase := app.NewMenuUseCase(menuRepo)
		err := menuUseCase.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, entities.ErrMenuItemNotFound)
	})
}

func TestMenuUseCaseCategories(t *testing.T) {
	menuRepo := new(mockMenuRepository)
	menuRepo.On("Categories", mock.Anything).Return([]string{"Beverages", "Desserts"}, nil).Once()

	menuUseCase := app.NewMenuUseCase(menuRepo)
	categories, err := menuUseCase.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Beverages", "Desserts"}, categories)
}
