package game

import "fmt"

// ActionType represents the type of action an agent can take.
type ActionType int

const (
	NoAction    ActionType = iota // Pass, or nothing legal to play
	SlideAction                   // Tile game: slide all tiles in one direction
	PlaceAction                   // Tile game: environment drops a tile; NoGo: a stone is placed
)

// Action represents an action taken by an agent. The zero value is the
// null action returned when nothing legal is available.
type Action struct {
	Type  ActionType
	Op    int // Slide direction for SlideAction
	Pos   int // Cell index for PlaceAction
	Value int // Tile exponent (tile game) or piece (NoGo) for PlaceAction
}

func Slide(op int) Action {
	return Action{Type: SlideAction, Op: op}
}

func Place(pos, value int) Action {
	return Action{Type: PlaceAction, Pos: pos, Value: value}
}

func (a Action) IsNone() bool {
	return a.Type == NoAction
}

func (a Action) String() string {
	switch a.Type {
	case SlideAction:
		return fmt.Sprintf("#%c", "URDL"[a.Op&3])
	case PlaceAction:
		return fmt.Sprintf("%d@%d", a.Value, a.Pos)
	default:
		return "none"
	}
}
