package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

func cellAt(row, col int) knowledge.Cell {
	return knowledge.Cell{Row: row, Col: col}
}

func TestPlayerWinsMinelessBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.NewBoard(3, 3, 0, r)
	require.NoError(t, err)

	player := NewPlayer(board, r)
	status := player.Play()

	assert.Equal(t, Won, status)
	assert.Equal(t, Won, player.Status())
	assert.NotEmpty(t, player.Moves())
}

func TestPlayerTerminatesConsistently(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed))
		board, err := game.NewBoardWithMines(4, 4, []knowledge.Cell{
			cellAt(0, 0), cellAt(2, 3), cellAt(3, 1),
		})
		require.NoError(t, err)

		player := NewPlayer(board, r)
		status := player.Play()

		require.NotEqual(t, Playing, status, "seed %d", seed)

		seen := make(map[knowledge.Cell]bool)
		for i, move := range player.Moves() {
			require.False(t, seen[move.Cell],
				"seed %d: cell %s played twice", seed, move.Cell)
			seen[move.Cell] = true

			last := i == len(player.Moves())-1
			if board.IsMine(move.Cell) {
				// only the losing move may touch a mine, and only a guess can
				require.True(t, last && move.Guess && status == Lost,
					"seed %d: opened mine %s mid-game", seed, move.Cell)
			}
		}

		if status == Won {
			require.True(t, board.Won(), "seed %d", seed)
		}
	}
}

func TestPlayerSafeMovesAreNeverMines(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	board, err := game.NewBoardWithMines(5, 5, []knowledge.Cell{
		cellAt(0, 4), cellAt(2, 2), cellAt(4, 0), cellAt(4, 4),
	})
	require.NoError(t, err)

	player := NewPlayer(board, r)
	for player.Status() == Playing {
		move, _ := player.Step()
		if !move.Guess && (move != Move{}) {
			assert.False(t, board.IsMine(move.Cell),
				"engine called %s safe", move.Cell)
		}
	}
}

func TestPlayerView(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.NewBoardWithMines(2, 2, nil)
	require.NoError(t, err)

	player := NewPlayer(board, r)
	assert.Equal(t, []string{"? ?", "? ?"}, player.View())

	move, _ := player.Step()
	rows := player.View()
	assert.Equal(t, "0", string(rows[move.Cell.Row][move.Cell.Col*2]))
}

func TestPlayerStepAfterGameOver(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.NewBoard(2, 2, 0, r)
	require.NoError(t, err)

	player := NewPlayer(board, r)
	player.Play()
	moves := len(player.Moves())

	_, status := player.Step()
	assert.Equal(t, Won, status)
	assert.Len(t, player.Moves(), moves)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
	assert.Equal(t, "stalled", Stalled.String())
}
