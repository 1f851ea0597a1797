package tuple

import (
	"boardai/game/tile"
)

// DefaultAlpha is the learning rate shared across the 64 default patterns.
const DefaultAlpha = 0.1 / 64

// Step is one recorded afterstate and the reward of the slide that made it.
type Step struct {
	After  tile.Board
	Reward int
}

// Learner plays the tile game greedily on the network's estimate and trains
// the network from the afterstates of each episode.
type Learner struct {
	net     *Network
	alpha   float64
	episode []Step
}

func NewLearner(net *Network, alpha float64) *Learner {
	return &Learner{net: net, alpha: alpha}
}

func (l *Learner) Network() *Network {
	return l.net
}

func (l *Learner) Alpha() float64 {
	return l.alpha
}

// Episode returns the afterstates recorded since the episode opened.
func (l *Learner) Episode() []Step {
	return l.episode
}

// Search2Ply tries the four slides on private copies of before and picks the
// one maximizing reward plus the afterstate value; ties go to the lowest op.
// The chosen afterstate is recorded. ok is false when no slide is legal.
func (l *Learner) Search2Ply(before tile.Board) (op int, ok bool) {
	var best Step
	bestValue := 0.0
	op = -1
	for candidate := tile.Up; candidate <= tile.Left; candidate++ {
		after := before
		reward := after.Slide(candidate)
		if reward == tile.Illegal {
			continue
		}
		value := float64(reward) + l.net.Evaluate(after)
		if op == -1 || value > bestValue {
			op = candidate
			bestValue = value
			best = Step{After: after, Reward: reward}
		}
	}
	if op == -1 {
		return -1, false
	}
	l.episode = append(l.episode, best)
	return op, true
}

// Open discards anything left from a previous episode.
func (l *Learner) Open() {
	l.episode = l.episode[:0]
}

// Close trains on the recorded episode once and clears it.
func (l *Learner) Close() {
	Train(l.net, l.episode, l.alpha)
	l.episode = l.episode[:0]
}

// Train sweeps the episode backward. The last afterstate is trained toward 0;
// each earlier afterstate i is trained toward r[i+1] + V(s[i+1]), where
// s[i+1] has already been updated in this sweep.
func Train(net *Network, episode []Step, alpha float64) {
	if len(episode) == 0 {
		return
	}
	last := len(episode) - 1
	net.Update(episode[last].After, 0, alpha)
	for i := last - 1; i >= 0; i-- {
		next := episode[i+1]
		net.Update(episode[i].After, float64(next.Reward)+net.Evaluate(next.After), alpha)
	}
}
