package app_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restomenu/internal/menu/app"
)

func TestBuildFilter(t *testing.T) {
	t.Run("empty params impose no constraints", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{})

		assert.Empty(t, filter.Name)
		assert.Empty(t, filter.Category)
		assert.Nil(t, filter.MinPrice)
		assert.Nil(t, filter.MaxPrice)
	})

	t.Run("numeric bounds are inclusive values", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{MinPrice: "10", MaxPrice: "50"})

		require.NotNil(t, filter.MinPrice)
		require.NotNil(t, filter.MaxPrice)
		assert.InDelta(t, 10.0, *filter.MinPrice, 0.0001)
		assert.InDelta(t, 50.0, *filter.MaxPrice, 0.0001)
	})

	t.Run("category all is a sentinel for no constraint", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{Category: app.CategoryAll})
		assert.Empty(t, filter.Category)

		filter = app.BuildFilter(app.FilterParams{Category: "Desserts"})
		assert.Equal(t, "Desserts", filter.Category)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{Name: "  pizza  "})
		assert.Equal(t, "pizza", filter.Name)
	})

	t.Run("non-numeric bound coerces to NaN", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{MinPrice: "cheap"})

		require.NotNil(t, filter.MinPrice)
		assert.True(t, math.IsNaN(*filter.MinPrice))
		assert.Nil(t, filter.MaxPrice)
	})

	t.Run("bounds are independent", func(t *testing.T) {
		filter := app.BuildFilter(app.FilterParams{MaxPrice: "25.5"})

		assert.Nil(t, filter.MinPrice)
		require.NotNil(t, filter.MaxPrice)
		assert.InDelta(t, 25.5, *filter.MaxPrice, 0.0001)
	})
}
