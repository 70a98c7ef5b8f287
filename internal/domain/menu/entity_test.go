//go:build unit

package menu_test

import (
	"testing"

	"restaurant-api/internal/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates an item with the default image", func(t *testing.T) {
		item, err := menu.NewItem(" Margherita Pizza ", "tomato, mozzarella, basil", 1250, menu.CategoryMainCourse, true, "", 20)
		require.NoError(t, err)

		assert.Equal(t, "Margherita Pizza", item.Name())
		assert.Equal(t, int64(1250), item.PriceCents())
		assert.Equal(t, menu.CategoryMainCourse, item.Category())
		assert.Equal(t, menu.DefaultImageURL, item.ImageURL())
		assert.Equal(t, 20, item.PreparationTime())
	})

	t.Run("keeps an explicit image url", func(t *testing.T) {
		item, err := menu.NewItem("Cola", "chilled", 300, menu.CategoryBeverage, true, "https://cdn.example.com/cola.jpg", 0)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cola.jpg", item.ImageURL())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := menu.NewItem("   ", "desc", 100, menu.CategoryDessert, true, "", 5)
		assert.ErrorIs(t, err, menu.ErrEmptyName)
	})

	t.Run("rejects blank descriptions", func(t *testing.T) {
		_, err := menu.NewItem("Tiramisu", "  ", 100, menu.CategoryDessert, true, "", 5)
		assert.ErrorIs(t, err, menu.ErrEmptyDescription)
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		_, err := menu.NewItem("Tiramisu", "desc", -1, menu.CategoryDessert, true, "", 5)
		assert.ErrorIs(t, err, menu.ErrNegativePrice)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := menu.NewItem("Tiramisu", "desc", 100, menu.Category("Snack"), true, "", 5)
		assert.ErrorIs(t, err, menu.ErrInvalidCategory)
	})

	t.Run("rejects negative preparation time", func(t *testing.T) {
		_, err := menu.NewItem("Tiramisu", "desc", 100, menu.CategoryDessert, true, "", -5)
		assert.ErrorIs(t, err, menu.ErrNegativePrepTime)
	})
}

func TestCategory(t *testing.T) {
	valid := []menu.Category{
		menu.CategoryAppetizer, menu.CategoryMainCourse, menu.CategoryDessert,
		menu.CategoryBeverage, menu.CategorySideDish, menu.CategoryBreakfast,
		menu.CategoryLunch, menu.CategoryDinner,
	}
	for _, c := range valid {
		assert.True(t, c.IsValid(), "category %q", c)
	}

	assert.False(t, menu.Category("Brunch").IsValid())
	assert.False(t, menu.Category("").IsValid())
}

func TestItemMutations(t *testing.T) {
	newItem := func(t *testing.T) *menu.Item {
		t.Helper()
		item, err := menu.NewItem("Cola", "chilled", 300, menu.CategoryBeverage, true, "", 0)
		require.NoError(t, err)
		return item
	}

	t.Run("rename rejects blanks", func(t *testing.T) {
		item := newItem(t)
		require.NoError(t, item.Rename("Lemonade"))
		assert.Equal(t, "Lemonade", item.Name())

		assert.ErrorIs(t, item.Rename("  "), menu.ErrEmptyName)
		assert.Equal(t, "Lemonade", item.Name())
	})

	t.Run("price change rejects negatives", func(t *testing.T) {
		item := newItem(t)
		require.NoError(t, item.ChangePrice(350))
		assert.Equal(t, int64(350), item.PriceCents())

		assert.ErrorIs(t, item.ChangePrice(-1), menu.ErrNegativePrice)
	})

	t.Run("category change rejects unknown values", func(t *testing.T) {
		item := newItem(t)
		require.NoError(t, item.ChangeCategory(menu.CategorySideDish))
		assert.ErrorIs(t, item.ChangeCategory(menu.Category("Snack")), menu.ErrInvalidCategory)
	})
}
