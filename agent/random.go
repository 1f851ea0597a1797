package agent

import (
	"fmt"

	"boardai/game"
	"boardai/game/nogo"
	"boardai/game/tile"

	"golang.org/x/exp/rand"
)

func newRandom(cfg Config) (Agent, error) {
	switch cfg.Role {
	case "slider":
		return &randomSlider{base: base{cfg: cfg}, rng: cfg.rng(), ops: []int{tile.Up, tile.Right, tile.Down, tile.Left}}, nil
	case "black", "white":
		return &randomPlayer{base: base{cfg: cfg}, rng: cfg.rng(), who: nogo.ParsePiece(cfg.Role)}, nil
	default:
		return nil, fmt.Errorf("%w: random agent cannot play %q", ErrInvalidRole, cfg.Role)
	}
}

// randomSlider plays a uniformly random legal slide.
type randomSlider struct {
	base
	rng *rand.Rand
	ops []int
}

func (a *randomSlider) TakeAction(state game.State) game.Action {
	before := tileBoard(state)
	a.rng.Shuffle(len(a.ops), func(i, j int) { a.ops[i], a.ops[j] = a.ops[j], a.ops[i] })
	for _, op := range a.ops {
		after := before
		if after.Slide(op) != tile.Illegal {
			return game.Slide(op)
		}
	}
	return game.Action{}
}

// randomPlayer plays a uniformly random legal NoGo placement.
type randomPlayer struct {
	base
	rng   *rand.Rand
	who   nogo.Piece
	space []nogo.Move
}

func (a *randomPlayer) TakeAction(state game.State) game.Action {
	board := nogoBoard(state)
	if len(a.space) != board.Len() {
		a.space = nogo.Space(board.Width(), a.who)
	}
	a.rng.Shuffle(len(a.space), func(i, j int) { a.space[i], a.space[j] = a.space[j], a.space[i] })
	for _, move := range a.space {
		after := board
		if move.Apply(&after).IsLegal() {
			return game.Place(move.Pos, int(move.Who))
		}
	}
	return game.Action{}
}

func newPlacer(cfg Config) (Agent, error) {
	if cfg.Role != "placer" {
		return nil, fmt.Errorf("%w: placer cannot play %q", ErrInvalidRole, cfg.Role)
	}
	return &placer{base: base{cfg: cfg}, rng: cfg.rng()}, nil
}

// placer is the tile game environment: it drops a 2 (or a 4 one time in
// ten) on a random empty cell.
type placer struct {
	base
	rng *rand.Rand
}

func (a *placer) TakeAction(state game.State) game.Action {
	board := tileBoard(state)
	empty := board.Empty()
	if len(empty) == 0 {
		return game.Action{}
	}
	pos := empty[a.rng.Intn(len(empty))]
	exponent := 1
	if a.rng.Intn(10) == 0 {
		exponent = 2
	}
	return game.Place(pos, exponent)
}

func tileBoard(state game.State) tile.Board {
	switch b := state.(type) {
	case tile.Board:
		return b
	case *tile.Board:
		return *b
	default:
		panic(fmt.Sprintf("unexpected state type %T", state))
	}
}

func nogoBoard(state game.State) nogo.Board {
	switch b := state.(type) {
	case nogo.Board:
		return b
	case *nogo.Board:
		return *b
	default:
		panic(fmt.Sprintf("unexpected state type %T", state))
	}
}
