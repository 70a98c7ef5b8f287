//go:build unit

package table_test

import (
	"testing"

	"restaurant-api/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("creates a table and trims text fields", func(t *testing.T) {
		tbl, err := table.NewTable(7, 4, true, "  patio  ", "  by the window ")
		require.NoError(t, err)

		assert.Equal(t, 7, tbl.Number())
		assert.Equal(t, 4, tbl.Capacity())
		assert.True(t, tbl.IsAvailable())
		assert.Equal(t, "patio", tbl.Location())
		assert.Equal(t, "by the window", tbl.Description())
	})

	t.Run("rejects non-positive numbers", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			_, err := table.NewTable(n, 4, true, "", "")
			assert.ErrorIs(t, err, table.ErrInvalidNumber, "number %d", n)
		}
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := table.NewTable(1, 0, true, "", "")
		assert.ErrorIs(t, err, table.ErrInvalidCapacity)
	})
}

func TestTableMutations(t *testing.T) {
	newTable := func(t *testing.T) *table.Table {
		t.Helper()
		tbl, err := table.NewTable(1, 2, true, "main hall", "")
		require.NoError(t, err)
		return tbl
	}

	t.Run("change number", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.ChangeNumber(9))
		assert.Equal(t, 9, tbl.Number())

		assert.ErrorIs(t, tbl.ChangeNumber(0), table.ErrInvalidNumber)
		assert.Equal(t, 9, tbl.Number())
	})

	t.Run("change capacity", func(t *testing.T) {
		tbl := newTable(t)
		require.NoError(t, tbl.ChangeCapacity(6))
		assert.Equal(t, 6, tbl.Capacity())

		assert.ErrorIs(t, tbl.ChangeCapacity(-2), table.ErrInvalidCapacity)
		assert.Equal(t, 6, tbl.Capacity())
	})

	t.Run("toggle availability", func(t *testing.T) {
		tbl := newTable(t)
		tbl.SetAvailability(false)
		assert.False(t, tbl.IsAvailable())
	})
}

func TestTableCanSeat(t *testing.T) {
	tbl, err := table.NewTable(1, 4, true, "", "")
	require.NoError(t, err)

	assert.True(t, tbl.CanSeat(1))
	assert.True(t, tbl.CanSeat(4))
	assert.False(t, tbl.CanSeat(5))
	assert.False(t, tbl.CanSeat(0))
}
