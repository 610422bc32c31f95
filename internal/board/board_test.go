package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowCol(t *testing.T) {
	t.Run("Maps cell index to row and column on a 3x3 board", func(t *testing.T) {
		// Given: cell 5 on a 3-column board
		// When: converting to coordinates
		row, col := RowCol(5, 3)

		// Then: it should land on row 1, column 2
		assert.Equal(t, 1, row)
		assert.Equal(t, 2, col)
	})

	t.Run("Maps first and last cells", func(t *testing.T) {
		row, col := RowCol(0, 4)
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)

		row, col = RowCol(15, 4)
		assert.Equal(t, 3, row)
		assert.Equal(t, 3, col)
	})
}

func TestInBounds(t *testing.T) {
	t.Run("Accepts cells inside the board", func(t *testing.T) {
		assert.True(t, InBounds(0, 3, 3))
		assert.True(t, InBounds(8, 3, 3))
	})

	t.Run("Rejects cells outside the board", func(t *testing.T) {
		assert.False(t, InBounds(-1, 3, 3))
		assert.False(t, InBounds(9, 3, 3))
	})
}

func TestIsWinningMove(t *testing.T) {
	t.Run("Detects a completed row", func(t *testing.T) {
		// Given: a player owning all of row 1 on a 3x3 board
		occupied := []int{3, 4, 5}

		// When: the last move lands on cell 5 (row 1, col 2)
		won := IsWinningMove(3, 3, 1, 2, occupied)

		// Then: the row win is detected
		assert.True(t, won)
	})

	t.Run("Detects a completed column", func(t *testing.T) {
		// Given: a player owning all of column 0
		occupied := []int{0, 3, 6}

		won := IsWinningMove(3, 3, 2, 0, occupied)

		assert.True(t, won)
	})

	t.Run("Detects the main diagonal", func(t *testing.T) {
		occupied := []int{0, 4, 8}

		won := IsWinningMove(3, 3, 2, 2, occupied)

		assert.True(t, won)
	})

	t.Run("Detects the anti-diagonal", func(t *testing.T) {
		occupied := []int{2, 4, 6}

		won := IsWinningMove(3, 3, 2, 0, occupied)

		assert.True(t, won)
	})

	t.Run("Reports no win for an incomplete line", func(t *testing.T) {
		occupied := []int{0, 1, 4}

		won := IsWinningMove(3, 3, 1, 1, occupied)

		assert.False(t, won)
	})

	t.Run("A fully-owned diagonal wins even when the move is elsewhere", func(t *testing.T) {
		// Given: the main diagonal fully owned plus an unrelated move on cell 1
		occupied := []int{0, 1, 4, 8}

		// When: checking the unrelated move at row 0, col 1
		won := IsWinningMove(3, 3, 0, 1, occupied)

		// Then: the diagonal still registers the win
		assert.True(t, won)
	})

	t.Run("Works on a 4x4 board", func(t *testing.T) {
		// Given: all of row 2 on a 4x4 board (cells 8..11)
		occupied := []int{8, 9, 10, 11}

		won := IsWinningMove(4, 4, 2, 3, occupied)

		assert.True(t, won)
	})

	t.Run("Partial 4x4 diagonal does not win", func(t *testing.T) {
		occupied := []int{0, 5, 10}

		won := IsWinningMove(4, 4, 2, 2, occupied)

		assert.False(t, won)
	})
}
