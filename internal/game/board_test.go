package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

func cellAt(row, col int) knowledge.Cell {
	return knowledge.Cell{Row: row, Col: col}
}

func TestNewBoardPlacesMines(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	b, err := NewBoard(8, 8, 10, r)
	require.NoError(t, err)

	mines := b.Mines()
	assert.Len(t, mines, 10)
	assert.Equal(t, 10, b.MineCount())
	for _, cell := range mines {
		assert.True(t, b.InBounds(cell))
		assert.True(t, b.IsMine(cell))
	}
}

func TestNewBoardRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name                     string
		height, width, mineCount int
	}{
		{"zero height", 0, 5, 1},
		{"zero width", 5, 0, 1},
		{"negative mines", 5, 5, -1},
		{"too many mines", 3, 3, 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBoard(test.height, test.width, test.mineCount, r)
			assert.Error(t, err)
		})
	}
}

func TestNearbyMines(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []knowledge.Cell{
		cellAt(0, 0), cellAt(2, 2),
	})
	require.NoError(t, err)

	tests := []struct {
		cell  knowledge.Cell
		count int
	}{
		{cellAt(1, 1), 2},
		{cellAt(0, 1), 1},
		{cellAt(1, 2), 1},
		{cellAt(2, 0), 0},
		{cellAt(0, 0), 0}, // the cell itself does not count
	}
	for _, test := range tests {
		assert.Equal(t, test.count, b.NearbyMines(test.cell),
			"nearby mines of %s", test.cell)
	}
}

func TestNewBoardWithMinesValidates(t *testing.T) {
	_, err := NewBoardWithMines(3, 3, []knowledge.Cell{cellAt(3, 0)})
	assert.Error(t, err)

	b, err := NewBoardWithMines(3, 3, []knowledge.Cell{
		cellAt(0, 0), cellAt(0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.MineCount())
}

func TestWon(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []knowledge.Cell{
		cellAt(0, 0), cellAt(2, 2),
	})
	require.NoError(t, err)

	assert.False(t, b.Won())

	b.Flag(cellAt(0, 0))
	assert.False(t, b.Won())

	b.Flag(cellAt(0, 0)) // re-flagging changes nothing
	b.Flag(cellAt(2, 2))
	assert.True(t, b.Won())
}

func TestWonRequiresCorrectFlags(t *testing.T) {
	b, err := NewBoardWithMines(2, 2, []knowledge.Cell{cellAt(0, 0)})
	require.NoError(t, err)

	b.Flag(cellAt(1, 1))
	assert.False(t, b.Won())
}

func TestBoardString(t *testing.T) {
	b, err := NewBoardWithMines(2, 2, []knowledge.Cell{cellAt(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, "- * \n- - \n", b.String())
}
