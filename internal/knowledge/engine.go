package knowledge

import (
	"math/rand/v2"
	"slices"

	"github.com/gammazero/deque"
)

// Engine is the knowledge base for one game. It owns every proven fact (safe
// cells, mined cells) and the live constraints, and it alone mutates them.
// A cell's fate is monotonic: once proven safe or mined it never changes.
//
// The engine is deliberately single-threaded. A concurrent host must hold one
// exclusive lock around the whole engine per game; propagation reads and
// writes the entire knowledge base as one logical transaction.
type Engine struct {
	height, width int

	movesMade set[Cell]
	safes     set[Cell]
	mines     set[Cell]

	constraints []*Constraint
}

func NewEngine(height, width int) *Engine {
	return &Engine{
		height:    height,
		width:     width,
		movesMade: make(set[Cell]),
		safes:     make(set[Cell]),
		mines:     make(set[Cell]),
	}
}

func (e *Engine) Height() int { return e.height }
func (e *Engine) Width() int  { return e.width }

// MarkSafe records that cell holds no mine and scrubs it from every live
// constraint. A repeated call is a no-op. Marking a cell that is already a
// proven mine panics [AssertionError].
func (e *Engine) MarkSafe(cell Cell) {
	if e.safes.has(cell) {
		return
	}
	if e.mines.has(cell) {
		panic(AssertionError{"cell " + cell.String() + " marked both safe and mine"})
	}
	e.safes.add(cell)
	for _, c := range e.constraints {
		c.remove(cell, false)
	}
}

// MarkMine records that cell holds a mine; every live constraint containing
// it loses the cell and one off its count. A repeated call is a no-op.
// Marking a cell that is already proven safe panics [AssertionError].
func (e *Engine) MarkMine(cell Cell) {
	if e.mines.has(cell) {
		return
	}
	if e.safes.has(cell) {
		panic(AssertionError{"cell " + cell.String() + " marked both mine and safe"})
	}
	e.mines.add(cell)
	for _, c := range e.constraints {
		c.remove(cell, true)
	}
}

// RecordObservation ingests one report from the board: the opened cell and
// the number of mines among its neighbors. It files the corresponding
// constraint over the still-unknown neighbors and propagates to a fixed
// point. Runs to completion before returning.
func (e *Engine) RecordObservation(cell Cell, count int) {
	e.movesMade.add(cell)
	e.MarkSafe(cell)

	unknown := make(set[Cell], 8)
	for _, n := range e.neighbors(cell) {
		switch {
		case e.mines.has(n):
			// already accounted for; the report includes it
			count--
		case e.safes.has(n):
		default:
			unknown.add(n)
		}
	}

	if len(unknown) > 0 {
		c := NewConstraint(unknown.items(), count)
		if !e.hasConstraint(c) {
			e.constraints = append(e.constraints, c)
		}
	}

	e.propagate()
}

type fact struct {
	cell Cell
	mine bool
}

// propagate applies the two reduction rules until a full pass changes
// nothing: extract trivial certainties from each constraint, then derive
// subset-difference constraints from each pair. Terminates because facts
// only accumulate and the constraint space over a finite board is finite.
func (e *Engine) propagate() {
	for {
		changed := false

		// Certainties first. Marking a cell shrinks other constraints,
		// which may expose more certainties; those surface next pass.
		var facts deque.Deque[fact]
		for _, c := range e.constraints {
			for _, cell := range c.KnownSafes() {
				if !e.safes.has(cell) {
					facts.PushBack(fact{cell, false})
				}
			}
			for _, cell := range c.KnownMines() {
				if !e.mines.has(cell) {
					facts.PushBack(fact{cell, true})
				}
			}
		}
		for facts.Len() != 0 {
			f := facts.PopFront()
			if f.mine {
				if e.mines.has(f.cell) {
					continue
				}
				e.MarkMine(f.cell)
			} else {
				if e.safes.has(f.cell) {
					continue
				}
				e.MarkSafe(f.cell)
			}
			changed = true
		}

		// Subset inference: for A ⊆ B the cells unique to B account for
		// exactly the leftover mines.
		var derived []*Constraint
		for _, a := range e.constraints {
			for _, b := range e.constraints {
				if a == b || !a.subsetOf(b) {
					continue
				}
				inferred := a.differenceFrom(b)
				if inferred.Size() == 0 {
					continue
				}
				if e.hasConstraint(inferred) || hasEqual(derived, inferred) {
					continue
				}
				derived = append(derived, inferred)
			}
		}
		if len(derived) > 0 {
			e.constraints = append(e.constraints, derived...)
			changed = true
		}

		e.compact()

		if !changed {
			return
		}
	}
}

// compact drops fully resolved (empty) constraints and exact duplicates.
func (e *Engine) compact() {
	live := e.constraints[:0]
	for _, c := range e.constraints {
		if c.Size() == 0 {
			if c.count != 0 {
				panic(AssertionError{"emptied constraint still owes " + c.String()})
			}
			continue
		}
		if !hasEqual(live, c) {
			live = append(live, c)
		}
	}
	clear(e.constraints[len(live):])
	e.constraints = live
}

func (e *Engine) hasConstraint(c *Constraint) bool {
	return hasEqual(e.constraints, c)
}

func hasEqual(constraints []*Constraint, c *Constraint) bool {
	for _, other := range constraints {
		if other.Equal(c) {
			return true
		}
	}
	return false
}

// ChooseSafeMove returns any proven-safe cell that has not been played yet.
// The second return is false when no such cell exists, which is the normal
// signal to fall back to [Engine.ChooseRandomMove].
func (e *Engine) ChooseSafeMove() (Cell, bool) {
	for cell := range e.safes {
		if !e.movesMade.has(cell) {
			return cell, true
		}
	}
	return Cell{}, false
}

// ChooseRandomMove picks uniformly among board cells that are neither played
// nor proven mines. The second return is false when no candidate remains.
func (e *Engine) ChooseRandomMove(r *rand.Rand) (Cell, bool) {
	candidates := make([]Cell, 0, e.height*e.width)
	for row := range e.height {
		for col := range e.width {
			cell := Cell{Row: row, Col: col}
			if e.movesMade.has(cell) || e.mines.has(cell) {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}

// MovesMade returns the played cells sorted row-major.
func (e *Engine) MovesMade() []Cell {
	return sortedCells(e.movesMade)
}

// KnownSafes returns every cell proven safe, sorted row-major.
func (e *Engine) KnownSafes() []Cell {
	return sortedCells(e.safes)
}

// KnownMines returns every cell proven to be a mine, sorted row-major.
func (e *Engine) KnownMines() []Cell {
	return sortedCells(e.mines)
}

func (e *Engine) Played(cell Cell) bool {
	return e.movesMade.has(cell)
}

func (e *Engine) IsSafe(cell Cell) bool {
	return e.safes.has(cell)
}

func (e *Engine) IsMine(cell Cell) bool {
	return e.mines.has(cell)
}

// ConstraintCount reports how many live constraints the engine holds.
func (e *Engine) ConstraintCount() int {
	return len(e.constraints)
}

func (e *Engine) neighbors(cell Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if n.Row < 0 || n.Row >= e.height || n.Col < 0 || n.Col >= e.width {
				continue
			}
			cells = append(cells, n)
		}
	}
	return cells
}

func sortedCells(s set[Cell]) []Cell {
	cells := s.items()
	slices.SortFunc(cells, CompareCells)
	return cells
}
