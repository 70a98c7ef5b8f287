//go:build unit

package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates item and stamps lastUpdated", func(t *testing.T) {
		item, err := NewItem("  Flour ", 25, "kg", 5, now)
		require.NoError(t, err)
		assert.Equal(t, "Flour", item.Name())
		assert.Equal(t, now, item.LastUpdated())
		assert.False(t, item.IsLowStock())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewItem("   ", 1, "kg", 0, now)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewItem("Flour", -1, "kg", 0, now)
		assert.ErrorIs(t, err, ErrNegativeQuantity)
	})
}

func TestItemLowStock(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	item, err := NewItem("Olive Oil", 10, "l", 3, now)
	require.NoError(t, err)

	assert.False(t, item.IsLowStock())

	later := now.Add(2 * time.Hour)
	require.NoError(t, item.AdjustQuantity(3, later))
	assert.True(t, item.IsLowStock())
	assert.Equal(t, later, item.LastUpdated())

	assert.ErrorIs(t, item.AdjustQuantity(-2, later), ErrNegativeQuantity)
}
