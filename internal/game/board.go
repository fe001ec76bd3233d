package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

// Board holds the real mine layout for one game. The agent never reads the
// layout directly; it only learns neighbor counts through opened cells and
// whether an opened cell exploded.
type Board struct {
	height, width int
	mineCount     int
	grid          []bool // real mine points
	flagged       map[knowledge.Cell]void
}

type void struct{}

// NewBoard places mineCount mines uniformly at random.
func NewBoard(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(height, width)
	if err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf("cannot place %d mines on a %dx%d board",
			mineCount, height, width)
	}
	for b.mineCount != mineCount {
		i := r.IntN(len(b.grid))
		if !b.grid[i] {
			b.grid[i] = true
			b.mineCount++
		}
	}
	return b, nil
}

// NewBoardWithMines builds a board with a fixed layout, mostly useful for
// scripted games and tests.
func NewBoardWithMines(height, width int, mines []knowledge.Cell) (*Board, error) {
	b, err := newEmptyBoard(height, width)
	if err != nil {
		return nil, err
	}
	for _, cell := range mines {
		if !b.InBounds(cell) {
			return nil, fmt.Errorf("mine %s outside %dx%d board",
				cell, height, width)
		}
		if i := b.index(cell); !b.grid[i] {
			b.grid[i] = true
			b.mineCount++
		}
	}
	return b, nil
}

func newEmptyBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", height, width)
	}
	return &Board{
		height:  height,
		width:   width,
		grid:    make([]bool, height*width),
		flagged: make(map[knowledge.Cell]void),
	}, nil
}

func (b *Board) Height() int    { return b.height }
func (b *Board) Width() int     { return b.width }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(cell knowledge.Cell) bool {
	return 0 <= cell.Row && cell.Row < b.height &&
		0 <= cell.Col && cell.Col < b.width
}

func (b *Board) IsMine(cell knowledge.Cell) bool {
	return b.grid[b.index(cell)]
}

// NearbyMines counts the mines within one row and column of cell, the cell
// itself excluded.
func (b *Board) NearbyMines(cell knowledge.Cell) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := knowledge.Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if b.InBounds(n) && b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

// Flag marks a cell as a found mine. Flagging the same cell twice is fine.
func (b *Board) Flag(cell knowledge.Cell) {
	if b.InBounds(cell) {
		b.flagged[cell] = void{}
	}
}

func (b *Board) Flagged(cell knowledge.Cell) bool {
	_, ok := b.flagged[cell]
	return ok
}

func (b *Board) FlaggedCount() int {
	return len(b.flagged)
}

// Won reports whether the flagged set is exactly the mine set.
func (b *Board) Won() bool {
	if len(b.flagged) != b.mineCount {
		return false
	}
	for cell := range b.flagged {
		if !b.IsMine(cell) {
			return false
		}
	}
	return true
}

// Mines returns every mined cell sorted row-major.
func (b *Board) Mines() []knowledge.Cell {
	mines := make([]knowledge.Cell, 0, b.mineCount)
	for i, mined := range b.grid {
		if mined {
			mines = append(mines, b.cell(i))
		}
	}
	slices.SortFunc(mines, knowledge.CompareCells)
	return mines
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.grid[row*b.width+col] {
				fmt.Fprint(&sb, "* ")
			} else {
				fmt.Fprint(&sb, "- ")
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

func (b *Board) index(cell knowledge.Cell) int {
	return cell.Row*b.width + cell.Col
}

func (b *Board) cell(i int) knowledge.Cell {
	return knowledge.Cell{Row: i / b.width, Col: i % b.width}
}
