package knowledge

import (
	"cmp"
	"fmt"
)

// Cell is a single board square, identified by zero-based row and column.
// Cells are plain values: comparable, usable as map keys.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CompareCells orders cells row-major, for deterministic iteration.
func CompareCells(a, b Cell) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}
