// Package tile implements the 4x4 tile-merging board. Cells hold exponents:
// 0 is empty and k is a tile of value 2^k.
package tile

import (
	"fmt"
	"strings"
)

const (
	Width       = 4
	Size        = Width * Width
	MaxExponent = 15 // Keeps every cell a single base-16 digit
)

// Slide directions
const (
	Up = iota
	Right
	Down
	Left
)

// Illegal is the reward returned by an action that changes nothing.
const Illegal = -1

// lines[op][i] lists the cells of line i ordered from the edge tiles slide toward.
var lines [4][Width][Width]int

func init() {
	for i := 0; i < Width; i++ {
		for k := 0; k < Width; k++ {
			lines[Up][i][k] = k*Width + i
			lines[Down][i][k] = (Width-1-k)*Width + i
			lines[Left][i][k] = i*Width + k
			lines[Right][i][k] = i*Width + Width - 1 - k
		}
	}
}

// Board is a value type; assignment copies it.
type Board struct {
	cells [Size]uint8
}

// New builds a board from up to Size exponents in row-major order. It panics
// on an exponent outside [0, MaxExponent].
func New(exponents ...int) Board {
	var b Board
	for i, e := range exponents {
		if i >= Size {
			break
		}
		if e < 0 || e > MaxExponent {
			panic(fmt.Sprintf("invalid exponent %d at cell %d", e, i))
		}
		b.cells[i] = uint8(e)
	}
	return b
}

// At returns the exponent at cell i.
func (b Board) At(i int) int {
	return int(b.cells[i])
}

func (b Board) Len() int {
	return Size
}

// Slide applies a slide and returns the merge reward, or Illegal when the
// board would not change. An illegal slide leaves the board untouched.
func (b *Board) Slide(op int) int {
	if op < Up || op > Left {
		return Illegal
	}
	next := *b
	reward := 0
	for _, line := range lines[op] {
		var row [Width]uint8
		n := 0
		for _, idx := range line {
			if v := b.cells[idx]; v != 0 {
				row[n] = v
				n++
			}
		}

		var merged [Width]uint8
		m := 0
		for i := 0; i < n; i++ {
			if i+1 < n && row[i] == row[i+1] && row[i] < MaxExponent {
				merged[m] = row[i] + 1
				reward += 1 << merged[m]
				i++
			} else {
				merged[m] = row[i]
			}
			m++
		}

		for k, idx := range line {
			next.cells[idx] = merged[k]
		}
	}
	if next == *b {
		return Illegal
	}
	*b = next
	return reward
}

// Place drops a tile with the given exponent on an empty cell.
func (b *Board) Place(pos, exponent int) int {
	if pos < 0 || pos >= Size || exponent <= 0 || exponent > MaxExponent {
		return Illegal
	}
	if b.cells[pos] != 0 {
		return Illegal
	}
	b.cells[pos] = uint8(exponent)
	return 0
}

// Empty lists the indices of empty cells.
func (b Board) Empty() []int {
	empty := make([]int, 0, Size)
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// MaxTile returns the largest exponent on the board.
func (b Board) MaxTile() int {
	max := 0
	for _, v := range b.cells {
		if int(v) > max {
			max = int(v)
		}
	}
	return max
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("+------------------------+\n")
	for r := 0; r < Width; r++ {
		sb.WriteString("|")
		for c := 0; c < Width; c++ {
			v := b.cells[r*Width+c]
			if v == 0 {
				fmt.Fprintf(&sb, "%6d", 0)
			} else {
				fmt.Fprintf(&sb, "%6d", 1<<v)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+------------------------+")
	return sb.String()
}
