package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestValidateMenuItemFullMode(t *testing.T) {
	tests := []struct {
		name         string
		input        app.MenuItemInput
		expectedErrs []string
		check        func(t *testing.T, change entities.MenuItemChange)
	}{
		{
			name: "valid payload with all fields",
			input: app.MenuItemInput{
				Name:        strPtr("  Margherita  "),
				Category:    strPtr("Main Course"),
				Price:       strPtr("9.99"),
				Description: strPtr("  classic pizza  "),
			},
			check: func(t *testing.T, change entities.MenuItemChange) {
				t.Helper()
				require.NotNil(t, change.Name)
				assert.Equal(t, "Margherita", *change.Name)
				require.NotNil(t, change.Category)
				assert.Equal(t, "Main Course", *change.Category)
				require.NotNil(t, change.Price)
				assert.InDelta(t, 9.99, *change.Price, 0.0001)
				require.NotNil(t, change.Description)
				assert.Equal(t, "classic pizza", *change.Description)
			},
		},
		{
			name: "zero price is accepted",
			input: app.MenuItemInput{
				Name:  strPtr("Water"),
				Price: strPtr("0"),
			},
			check: func(t *testing.T, change entities.MenuItemChange) {
				t.Helper()
				require.NotNil(t, change.Price)
				assert.Zero(t, *change.Price)
			},
		},
		{
			name: "unknown category silently cleared",
			input: app.MenuItemInput{
				Name:     strPtr("Soup"),
				Category: strPtr("Specials"),
				Price:    strPtr("4"),
			},
			check: func(t *testing.T, change entities.MenuItemChange) {
				t.Helper()
				require.NotNil(t, change.Category)
				assert.Empty(t, *change.Category)
			},
		},
		{
			name:         "missing name and price accumulate both errors",
			input:        app.MenuItemInput{},
			expectedErrs: []string{app.MsgNameRequired, app.MsgInvalidPrice},
		},
		{
			name: "whitespace name rejected",
			input: app.MenuItemInput{
				Name:  strPtr("   "),
				Price: strPtr("5"),
			},
			expectedErrs: []string{app.MsgNameRequired},
		},
		{
			name: "negative price rejected",
			input: app.MenuItemInput{
				Name:  strPtr("Cake"),
				Price: strPtr("-1"),
			},
			expectedErrs: []string{app.MsgInvalidPrice},
		},
		{
			name: "non-numeric price rejected",
			input: app.MenuItemInput{
				Name:  strPtr("Cake"),
				Price: strPtr("cheap"),
			},
			expectedErrs: []string{app.MsgInvalidPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, errs := app.ValidateMenuItem(tt.input, false)

			if len(tt.expectedErrs) > 0 {
				assert.Equal(t, tt.expectedErrs, errs)
				return
			}
			require.Empty(t, errs)
			if tt.check != nil {
				tt.check(t, change)
			}
		})
	}
}

func TestValidateMenuItemPartialMode(t *testing.T) {
	t.Run("price alone passes and yields only price", func(t *testing.T) {
		change, errs := app.ValidateMenuItem(app.MenuItemInput{Price: strPtr("5")}, true)

		require.Empty(t, errs)
		require.NotNil(t, change.Price)
		assert.InDelta(t, 5.0, *change.Price, 0.0001)
		assert.Nil(t, change.Name)
		assert.Nil(t, change.Category)
		assert.Nil(t, change.Description)
	})

	t.Run("absent fields are not validated", func(t *testing.T) {
		change, errs := app.ValidateMenuItem(app.MenuItemInput{Description: strPtr(" tasty ")}, true)

		require.Empty(t, errs)
		require.NotNil(t, change.Description)
		assert.Equal(t, "tasty", *change.Description)
		assert.Nil(t, change.Name)
		assert.Nil(t, change.Price)
	})

	t.Run("present but invalid fields still error", func(t *testing.T) {
		_, errs := app.ValidateMenuItem(app.MenuItemInput{
			Name:  strPtr(" "),
			Price: strPtr("abc"),
		}, true)

		assert.Equal(t, []string{app.MsgNameRequired, app.MsgInvalidPrice}, errs)
	})

	t.Run("category normalization applies when present", func(t *testing.T) {
		change, errs := app.ValidateMenuItem(app.MenuItemInput{Category: strPtr("Desserts")}, true)

		require.Empty(t, errs)
		require.NotNil(t, change.Category)
		assert.Equal(t, "Desserts", *change.Category)
	})
}

func TestCategoriesEnumeration(t *testing.T) {
	expected := []string{"Appetizers", "Main Course", "Desserts", "Beverages", "Sides"}
	assert.Equal(t, expected, entities.Categories)

	for _, category := range expected {
		assert.True(t, entities.IsValidCategory(category))
	}
	assert.False(t, entities.IsValidCategory("Specials"))
	assert.False(t, entities.IsValidCategory(""))
}
