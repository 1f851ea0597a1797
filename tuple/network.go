// Package tuple implements an n-tuple network value function for the tile
// game and the temporal-difference learner that trains it.
package tuple

import (
	"errors"
	"fmt"

	"boardai/game/tile"
)

// Base is the number of distinct values a cell may take in a feature.
const Base = 16

// DefaultTableSize is the table size for a 6-cell pattern.
const DefaultTableSize = Base * Base * Base * Base * Base * Base

var ErrPatternSize = errors.New("pattern does not fit its table")

// Pattern is an ordered tuple of board cells. The first cell is the most
// significant digit of the feature index.
type Pattern []int

// Table is a dense weight table addressed by feature index.
type Table []float32

// Network owns the weight tables and maps every pattern onto one of them.
// Patterns are split into len(tables) equal consecutive groups; pattern i
// reads table i / (len(patterns) / len(tables)).
type Network struct {
	tables   []Table
	patterns []Pattern
	owner    []int
}

func NewNetwork(tables []Table, patterns []Pattern) (*Network, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: network has no tables", ErrPatternSize)
	}
	if len(patterns)%len(tables) != 0 {
		return nil, fmt.Errorf("%w: %d patterns cannot be split over %d tables", ErrPatternSize, len(patterns), len(tables))
	}

	group := len(patterns) / len(tables)
	owner := make([]int, len(patterns))
	for i, p := range patterns {
		owner[i] = i / group
		if want := tableSize(len(p)); len(tables[owner[i]]) != want {
			return nil, fmt.Errorf("%w: pattern %d needs %d entries, table %d has %d", ErrPatternSize, i, want, owner[i], len(tables[owner[i]]))
		}
		for _, cell := range p {
			if cell < 0 || cell >= tile.Size {
				return nil, fmt.Errorf("%w: pattern %d reads cell %d", ErrPatternSize, i, cell)
			}
		}
	}

	return &Network{tables: tables, patterns: patterns, owner: owner}, nil
}

// NewTables allocates zeroed tables of the given sizes.
func NewTables(sizes []int) []Table {
	tables := make([]Table, len(sizes))
	for i, size := range sizes {
		tables[i] = make(Table, size)
	}
	return tables
}

func tableSize(length int) int {
	size := 1
	for i := 0; i < length; i++ {
		size *= Base
	}
	return size
}

func (n *Network) Tables() []Table {
	return n.tables
}

func (n *Network) Patterns() []Pattern {
	return n.patterns
}

// FeatureIndex reads the pattern's cells as base-16 digits, most significant first.
func FeatureIndex(b tile.Board, p Pattern) int {
	index := 0
	for _, cell := range p {
		index = index*Base + b.At(cell)
	}
	return index
}

// DecodeIndex recovers the cell values a feature index was built from.
func DecodeIndex(index, length int) []int {
	digits := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		digits[i] = index % Base
		index /= Base
	}
	return digits
}

// Evaluate sums the table entries selected by every pattern.
func (n *Network) Evaluate(b tile.Board) float64 {
	value := 0.0
	for i, p := range n.patterns {
		value += float64(n.tables[n.owner[i]][FeatureIndex(b, p)])
	}
	return value
}

// Update moves the value of b toward target by adding alpha times the error
// to every selected entry, and returns the error before the update.
func (n *Network) Update(b tile.Board, target, alpha float64) float64 {
	err := target - n.Evaluate(b)
	delta := float32(err * alpha)
	for i, p := range n.patterns {
		n.tables[n.owner[i]][FeatureIndex(b, p)] += delta
	}
	return err
}
