package knowledge

import (
	"fmt"
	"slices"
	"strings"
)

// Constraint is a logical statement about the board: exactly count of the
// cells in its cell set are mines. Constraints are created by observations
// and by inference; only the owning [Engine] ever shrinks one, when a cell's
// status becomes globally known.
type Constraint struct {
	cells set[Cell]
	count int
}

// NewConstraint panics [AssertionError] if count is outside [0, len(cells)].
func NewConstraint(cells []Cell, count int) *Constraint {
	s := newSet(cells...)
	if count < 0 || count > len(s) {
		panic(AssertionError{fmt.Sprintf(
			"constraint count %d outside [0,%d]", count, len(s),
		)})
	}
	return &Constraint{cells: s, count: count}
}

func (c *Constraint) Count() int {
	return c.count
}

func (c *Constraint) Size() int {
	return len(c.cells)
}

func (c *Constraint) Contains(cell Cell) bool {
	return c.cells.has(cell)
}

// KnownMines returns every cell of the constraint when all of them must be
// mines (count equals set size), otherwise nothing.
func (c *Constraint) KnownMines() []Cell {
	if c.count == len(c.cells) && c.count > 0 {
		return c.Cells()
	}
	return nil
}

// KnownSafes returns every cell of the constraint when none of them can be
// a mine (count is zero), otherwise nothing.
func (c *Constraint) KnownSafes() []Cell {
	if c.count == 0 {
		return c.Cells()
	}
	return nil
}

// Equal is structural: same cell set, same count.
func (c *Constraint) Equal(other *Constraint) bool {
	return c.count == other.count && c.cells.equal(other.cells)
}

// Cells returns the cell set sorted row-major.
func (c *Constraint) Cells() []Cell {
	cells := c.cells.items()
	slices.SortFunc(cells, CompareCells)
	return cells
}

func (c *Constraint) String() string {
	cells := c.Cells()
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), c.count)
}

// remove scrubs a cell whose status became globally known. A mine takes one
// off the count, a safe cell leaves it unchanged. No-op when absent.
func (c *Constraint) remove(cell Cell, mine bool) {
	if !c.cells.has(cell) {
		return
	}
	delete(c.cells, cell)
	if mine {
		c.count--
	}
}

// subsetOf reports whether every cell of c also belongs to other.
func (c *Constraint) subsetOf(other *Constraint) bool {
	return c.cells.subsetOf(other.cells)
}

// differenceFrom derives the subset-inference constraint {super − c,
// super.count − c.count}. Caller guarantees c ⊆ super; with sound inputs the
// derived count always lands in range, anything else is a broken invariant.
func (c *Constraint) differenceFrom(super *Constraint) *Constraint {
	diff := make(set[Cell], len(super.cells)-len(c.cells))
	for cell := range super.cells {
		if !c.cells.has(cell) {
			diff.add(cell)
		}
	}
	count := super.count - c.count
	if count < 0 || count > len(diff) {
		panic(AssertionError{fmt.Sprintf(
			"inferred count %d outside [0,%d] from %s and %s",
			count, len(diff), c, super,
		)})
	}
	return &Constraint{cells: diff, count: count}
}
