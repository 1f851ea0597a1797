// Package nogo implements the placement board for NoGo: a stone may not be
// placed where it captures an opponent group or leaves its own group
// without liberties. The side left with no legal placement loses.
package nogo

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth = 9
	MaxWidth     = 9
	MaxCells     = MaxWidth * MaxWidth
)

type Piece uint8

const (
	Empty Piece = iota
	Black
	White
)

func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParsePiece maps a role name to a piece, returning Empty for anything else.
func ParsePiece(role string) Piece {
	switch role {
	case "black":
		return Black
	case "white":
		return White
	default:
		return Empty
	}
}

type Result int

const (
	Legal Result = iota
	IllegalPosition
	IllegalPiece
	IllegalOccupied
	IllegalCapture
	IllegalSuicide
)

func (r Result) IsLegal() bool {
	return r == Legal
}

// Board is a value type; assignment copies it.
type Board struct {
	width int
	cells [MaxCells]Piece
}

func New(width int) Board {
	if width <= 0 || width > MaxWidth {
		panic(fmt.Sprintf("board width %d out of range [1, %d]", width, MaxWidth))
	}
	return Board{width: width}
}

func (b Board) Width() int {
	return b.width
}

// Len is the number of cells on the board.
func (b Board) Len() int {
	return b.width * b.width
}

// At returns the piece at cell i as a small integer.
func (b Board) At(i int) int {
	return int(b.cells[i])
}

func (b Board) Piece(i int) Piece {
	return b.cells[i]
}

// Place puts a stone for who at pos when legal. An illegal placement leaves
// the board untouched.
func (b *Board) Place(pos int, who Piece) Result {
	if pos < 0 || pos >= b.Len() {
		return IllegalPosition
	}
	if who != Black && who != White {
		return IllegalPiece
	}
	if b.cells[pos] != Empty {
		return IllegalOccupied
	}

	b.cells[pos] = who
	opponent := who.Opponent()
	for _, n := range b.neighbors(pos) {
		if n >= 0 && b.cells[n] == opponent && !b.hasLiberty(n) {
			b.cells[pos] = Empty
			return IllegalCapture
		}
	}
	if !b.hasLiberty(pos) {
		b.cells[pos] = Empty
		return IllegalSuicide
	}
	return Legal
}

// neighbors returns the orthogonal neighbors of pos, -1 where off board.
func (b *Board) neighbors(pos int) [4]int {
	w := b.width
	x, y := pos%w, pos/w
	n := [4]int{-1, -1, -1, -1}
	if y > 0 {
		n[0] = pos - w
	}
	if x < w-1 {
		n[1] = pos + 1
	}
	if y < w-1 {
		n[2] = pos + w
	}
	if x > 0 {
		n[3] = pos - 1
	}
	return n
}

// hasLiberty reports whether the group containing pos touches an empty cell.
func (b *Board) hasLiberty(pos int) bool {
	color := b.cells[pos]
	var seen [MaxCells]bool
	var stack [MaxCells]int
	top := 0
	stack[top] = pos
	top++
	seen[pos] = true
	for top > 0 {
		top--
		cur := stack[top]
		for _, n := range b.neighbors(cur) {
			if n < 0 || seen[n] {
				continue
			}
			switch b.cells[n] {
			case Empty:
				return true
			case color:
				seen[n] = true
				stack[top] = n
				top++
			}
		}
	}
	return false
}

// LegalMoves lists every legal placement for who in cell order.
func (b Board) LegalMoves(who Piece) []Move {
	moves := []Move{}
	for pos := 0; pos < b.Len(); pos++ {
		after := b
		if after.Place(pos, who).IsLegal() {
			moves = append(moves, Move{Pos: pos, Who: who})
		}
	}
	return moves
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.width; y++ {
		for x := 0; x < b.width; x++ {
			switch b.cells[y*b.width+x] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		if y < b.width-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Move is a placement of one stone.
type Move struct {
	Pos int
	Who Piece
}

func (m Move) Apply(b *Board) Result {
	return b.Place(m.Pos, m.Who)
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%d", m.Who, m.Pos)
}

// Space returns one placement per cell for who, in cell order.
func Space(width int, who Piece) []Move {
	moves := make([]Move, width*width)
	for i := range moves {
		moves[i] = Move{Pos: i, Who: who}
	}
	return moves
}
