package searcher

import (
	"fmt"
	"math"
	"time"

	"boardai/game/nogo"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	DefaultDuration      = time.Second
	DefaultCheckInterval = 500
)

type Option func(mcts *MCTS)

// MCTS searches NoGo positions for one side with UCB1 selection and random
// rollouts. A search is single-threaded and bounded by a wall clock budget
// checked every checkInterval iterations, and optionally by an iteration cap.
type MCTS struct {
	who           nogo.Piece
	duration      time.Duration
	iterations    int
	checkInterval int
	exploration   float64
	rng           *rand.Rand
	metrics       Collector
	last          SearchMetric
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithCheckInterval(interval int) Option {
	return func(m *MCTS) {
		if interval > 0 {
			m.checkInterval = interval
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(who nogo.Piece, options ...Option) *MCTS {
	if who != nogo.Black && who != nogo.White {
		panic(fmt.Sprintf("cannot search for %s", who))
	}
	m := &MCTS{ // Default values
		who:           who,
		duration:      DefaultDuration,
		checkInterval: DefaultCheckInterval,
		exploration:   DefaultExploration,
		metrics:       NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Who() nogo.Piece {
	return m.who
}

// Metrics returns the metrics of the last search.
func (m *MCTS) Metrics() SearchMetric {
	return m.last
}

// FindNextMove returns the most visited placement at the root, or false when
// the side to move has no legal placement.
func (m *MCTS) FindNextMove(state nogo.Board) (nogo.Move, bool) {
	t := m.search(state)

	best, ok := t.bestChild(root)
	if !ok {
		return nogo.Move{}, false
	}
	return t.nodes[best].move, true
}

func (m *MCTS) search(state nogo.Board) *tree {
	t := newTree(state, m.who.Opponent())
	mySpace := nogo.Space(state.Width(), m.who)
	opSpace := nogo.Space(state.Width(), m.who.Opponent())

	m.metrics.Start()
	start := time.Now()
	for count := 1; ; count++ {
		m.simulate(t, mySpace, opSpace)
		m.metrics.AddIteration()

		if t.nodes[root].terminal {
			break
		}
		if m.iterations > 0 && count >= m.iterations {
			break
		}
		if count%m.checkInterval == 0 && time.Since(start) > m.duration {
			break
		}
	}
	m.last = m.metrics.Complete(t.size())

	log.Debug().
		Str("component", "mcts").
		Stringer("who", m.who).
		Int("iterations", m.last.Iterations).
		Int("full_playouts", m.last.FullPlayouts).
		Int("tree_size", m.last.TreeSize).
		Int("root_visits", t.nodes[root].visits).
		Dur("duration", time.Since(start)).
		Msg("search complete")
	return t
}

func (m *MCTS) simulate(t *tree, mySpace, opSpace []nogo.Move) {
	leaf := m.selects(t, root)
	newNode := m.expand(t, leaf)
	shuffle(m.rng, mySpace)
	shuffle(m.rng, opSpace)
	score := m.rollout(t, newNode, mySpace, opSpace)
	backup(t, newNode, score)
}

// selects descends from id along the highest UCB1 child until a leaf.
func (m *MCTS) selects(t *tree, id int) int {
	for !t.nodes[id].leaf {
		parent := &t.nodes[id]
		policy := newUCB(m.exploration, parent.visits)

		best, bestScore := parent.children[0], math.Inf(-1)
		for _, c := range parent.children {
			if score := policy.evaluate(m.who, &t.nodes[c]); score > bestScore {
				best, bestScore = c, score
			}
		}
		id = best
	}
	return id
}

// expand adds one child per legal placement of the side to move and returns
// the first child after shuffling. A leaf with no legal placement becomes
// terminal and is returned as is.
func (m *MCTS) expand(t *tree, id int) int {
	if t.nodes[id].terminal {
		return id
	}

	board := t.nodes[id].board
	mover := t.nodes[id].toMove()
	for pos := 0; pos < board.Len(); pos++ {
		move := nogo.Move{Pos: pos, Who: mover}
		after := board
		if move.Apply(&after).IsLegal() {
			t.add(id, after, move)
		}
	}

	n := &t.nodes[id]
	if len(n.children) == 0 {
		n.terminal = true
		return id
	}
	m.rng.Shuffle(len(n.children), func(i, j int) {
		n.children[i], n.children[j] = n.children[j], n.children[i]
	})
	n.leaf = false
	return n.children[0]
}

// rollout plays both sides from id, each taking the first legal placement in
// its shuffled space, until one side cannot move. That side loses. The
// result is 1 when the searching side wins and 0 otherwise.
func (m *MCTS) rollout(t *tree, id int, mySpace, opSpace []nogo.Move) int {
	n := &t.nodes[id]
	toMove := n.toMove()
	if n.terminal {
		return m.outcome(toMove)
	}

	board := n.board
	m.metrics.AddFullPlayout()
	for {
		space := opSpace
		if toMove == m.who {
			space = mySpace
		}

		moved := false
		for _, move := range space {
			after := board
			if move.Apply(&after).IsLegal() {
				board = after
				moved = true
				break
			}
		}
		if !moved {
			return m.outcome(toMove)
		}
		toMove = toMove.Opponent()
	}
}

// outcome scores a position where stuck has no legal placement.
func (m *MCTS) outcome(stuck nogo.Piece) int {
	if stuck == m.who {
		return 0
	}
	return 1
}

// backup adds score and a visit to every node from id up to the root.
func backup(t *tree, id int, score int) {
	for id != noParent {
		n := &t.nodes[id]
		n.wins += score
		n.visits++
		id = n.parent
	}
}

func shuffle(rng *rand.Rand, moves []nogo.Move) {
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}
