package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintCertainties(t *testing.T) {
	a := Cell{Row: 0, Col: 0}
	b := Cell{Row: 0, Col: 1}
	c := Cell{Row: 1, Col: 0}

	tests := []struct {
		name       string
		constraint *Constraint
		safes      []Cell
		mines      []Cell
	}{
		{
			name:       "all mines",
			constraint: NewConstraint([]Cell{a, b, c}, 3),
			mines:      []Cell{a, b, c},
		},
		{
			name:       "all safe",
			constraint: NewConstraint([]Cell{a, b, c}, 0),
			safes:      []Cell{a, b, c},
		},
		{
			name:       "inconclusive",
			constraint: NewConstraint([]Cell{a, b, c}, 1),
		},
		{
			name:       "single mine",
			constraint: NewConstraint([]Cell{a}, 1),
			mines:      []Cell{a},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.safes, test.constraint.KnownSafes())
			assert.Equal(t, test.mines, test.constraint.KnownMines())
		})
	}
}

func TestConstraintEqual(t *testing.T) {
	a := Cell{Row: 0, Col: 0}
	b := Cell{Row: 0, Col: 1}
	c := Cell{Row: 1, Col: 0}

	assert.True(t, NewConstraint([]Cell{a, b}, 1).
		Equal(NewConstraint([]Cell{b, a}, 1)))
	assert.True(t, NewConstraint([]Cell{a, a, b}, 1).
		Equal(NewConstraint([]Cell{a, b}, 1)))
	assert.False(t, NewConstraint([]Cell{a, b}, 1).
		Equal(NewConstraint([]Cell{a, b}, 2)))
	assert.False(t, NewConstraint([]Cell{a, b}, 1).
		Equal(NewConstraint([]Cell{a, c}, 1)))
	assert.False(t, NewConstraint([]Cell{a, b}, 1).
		Equal(NewConstraint([]Cell{a, b, c}, 1)))
}

func TestNewConstraintValidatesCount(t *testing.T) {
	a := Cell{Row: 0, Col: 0}
	b := Cell{Row: 0, Col: 1}

	assert.Panics(t, func() { NewConstraint([]Cell{a, b}, 3) })
	assert.Panics(t, func() { NewConstraint([]Cell{a, b}, -1) })
	assert.NotPanics(t, func() { NewConstraint([]Cell{a, b}, 2) })
}

func TestConstraintString(t *testing.T) {
	c := NewConstraint([]Cell{{Row: 1, Col: 2}, {Row: 0, Col: 1}}, 1)
	assert.Equal(t, "{(0,1) (1,2)} = 1", c.String())
}
