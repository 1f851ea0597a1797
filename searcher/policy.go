package searcher

import (
	"math"

	"boardai/game/nogo"
)

const DefaultExploration = 0.8

// Unvisited is the score of a child that has never been visited. It is large
// but finite, so ties between unvisited children fall to enumeration order.
const Unvisited = 1_000_000.0

type ucb struct {
	c   float64
	lnN float64
}

func newUCB(c float64, parentVisits int) *ucb {
	if parentVisits == 0 {
		panic("parent visits cannot be 0")
	}
	return &ucb{c: c, lnN: math.Log(float64(parentVisits))}
}

// evaluate scores a child from who's point of view. Wins are always counted
// for who, so children reached by an opponent placement use the loss rate.
func (u ucb) evaluate(who nogo.Piece, child *node) float64 {
	if child.visits == 0 {
		return Unvisited
	}
	n := float64(child.visits)
	rate := float64(child.wins) / n
	if child.self != who {
		rate = 1 - rate
	}
	return rate + u.c*math.Sqrt(u.lnN/n)
}
