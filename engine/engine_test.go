package engine

import (
	"testing"

	"boardai/agent"
	"boardai/game"
	"boardai/game/nogo"
	"boardai/game/tile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays a fixed list of actions, then returns none.
type scripted struct {
	name, role      string
	actions         []game.Action
	opened, closed  int
	seen            []game.State
}

func (s *scripted) OpenEpisode(flag string)  { s.opened++ }
func (s *scripted) CloseEpisode(flag string) { s.closed++ }
func (s *scripted) Notify(msg string) error  { return nil }
func (s *scripted) Property(key string) (string, bool) {
	return "", false
}
func (s *scripted) Name() string { return s.name }
func (s *scripted) Role() string { return s.role }
func (s *scripted) Close() error { return nil }

func (s *scripted) TakeAction(state game.State) game.Action {
	s.seen = append(s.seen, state)
	if len(s.actions) == 0 {
		return game.Action{}
	}
	action := s.actions[0]
	s.actions = s.actions[1:]
	return action
}

func newAgent(t *testing.T, args string) agent.Agent {
	a, err := agent.New(args)
	require.NoError(t, err)
	return a
}

func TestEpisode(t *testing.T) {
	t.Run("scripted", func(t *testing.T) {
		slider := &scripted{name: "s", role: "slider", actions: []game.Action{
			game.Slide(tile.Left),
			game.Slide(tile.Left),
		}}
		placer := &scripted{name: "p", role: "placer", actions: []game.Action{
			game.Place(0, 1),
			game.Place(1, 1),
			game.Place(2, 1),
			// no placement after the second slide
		}}

		e := NewEpisode(slider, placer)
		metric, moves := e.Run()

		// 2 2 . . -> 4 . . . + 2 -> 4 . 2 . -> 4 2 . .
		assert.Equal(t, 4, metric.Score)
		assert.Equal(t, 5, metric.Steps, "two openings, two slides and one placement")
		assert.Equal(t, 2, metric.MaxTile)
		assert.Equal(t, tile.New(2, 1), e.Board)
		assert.Empty(t, moves)
		assert.Equal(t, 1, slider.opened)
		assert.Equal(t, 1, slider.closed)
		assert.Equal(t, 1, placer.closed)
		assert.False(t, metric.EndTime.Before(metric.StartTime))
	})

	t.Run("illegal slide ends the episode", func(t *testing.T) {
		slider := &scripted{name: "s", role: "slider", actions: []game.Action{game.Slide(tile.Up)}}
		placer := &scripted{name: "p", role: "placer", actions: []game.Action{game.Place(0, 1), game.Place(1, 2)}}

		metric, _ := NewEpisode(slider, placer).Run()
		assert.Equal(t, 2, metric.Steps)
		assert.Equal(t, 0, metric.Score)
	})

	t.Run("random play", func(t *testing.T) {
		slider := newAgent(t, "name=slider role=slider seed=1")
		placer := newAgent(t, "name=placer type=placer role=placer seed=2")

		e := NewEpisode(slider, placer)
		metric, _ := e.Run()
		assert.Greater(t, metric.Steps, Openings)
		assert.Greater(t, metric.Score, 0)
		assert.Equal(t, e.Board.MaxTile(), metric.MaxTile)

		stuck := true
		for op := tile.Up; op <= tile.Left; op++ {
			b := e.Board
			if b.Slide(op) != tile.Illegal {
				stuck = false
			}
		}
		assert.True(t, stuck, "a random episode ends when no slide is legal")
	})

	t.Run("role mismatch", func(t *testing.T) {
		slider := &scripted{name: "s", role: "placer"}
		placer := &scripted{name: "p", role: "placer"}
		assert.Panics(t, func() { NewEpisode(slider, placer) })
	})
}

func TestMatch(t *testing.T) {
	t.Run("scripted", func(t *testing.T) {
		black := &scripted{name: "b", role: "black", actions: []game.Action{
			game.Place(0, int(nogo.Black)),
			game.Place(8, int(nogo.Black)),
		}}
		white := &scripted{name: "w", role: "white", actions: []game.Action{
			game.Place(4, int(nogo.White)),
			game.Place(4, int(nogo.White)), // occupied
		}}

		m := NewMatch(3, black, white)
		metric, _ := m.Run()

		assert.Equal(t, "b", metric.Winner)
		assert.Equal(t, "w", metric.Loser)
		assert.Equal(t, 3, metric.Steps)
		assert.Equal(t, nogo.Black, m.Board.Piece(8))
		assert.Equal(t, 1, black.closed)
		assert.Equal(t, 1, white.closed)
	})

	t.Run("wrong piece loses", func(t *testing.T) {
		black := &scripted{name: "b", role: "black", actions: []game.Action{game.Place(0, int(nogo.White))}}
		white := &scripted{name: "w", role: "white"}

		metric, _ := NewMatch(3, black, white).Run()
		assert.Equal(t, "w", metric.Winner)
		assert.Equal(t, 0, metric.Steps)
	})

	t.Run("mcts against random", func(t *testing.T) {
		black := newAgent(t, "name=mcts type=mcts role=black seed=3 simulation=50 check=10")
		white := newAgent(t, "name=random role=white seed=4")

		m := NewMatch(4, black, white)
		metric, moves := m.Run()
		assert.Contains(t, []string{"mcts", "random"}, metric.Winner)
		assert.NotEqual(t, metric.Winner, metric.Loser)
		require.NotEmpty(t, moves, "search metrics are recorded for the mcts side")
		for _, mm := range moves {
			assert.Equal(t, "mcts", mm.Player)
			assert.Equal(t, 1, mm.Step%2, "black plays odd steps")
			assert.Equal(t, 50, mm.Iterations)
		}

		loser := nogo.White
		if metric.Loser == "mcts" {
			loser = nogo.Black
		}
		assert.Empty(t, m.Board.LegalMoves(loser), "the loser had no legal placement")
	})

	t.Run("role mismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			NewMatch(3, &scripted{role: "white"}, &scripted{role: "black"})
		})
	})
}
