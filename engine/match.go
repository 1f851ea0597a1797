package engine

import (
	"fmt"
	"time"

	"boardai/agent"
	"boardai/game"
	"boardai/game/nogo"
	"boardai/stats"

	"github.com/rs/zerolog/log"
)

// Match plays one NoGo game. Black moves first and the side that cannot
// make a legal placement loses.
type Match struct {
	Board  nogo.Board
	agents [2]agent.Agent // Indexed by piece - 1
}

func NewMatch(width int, black, white agent.Agent) *Match {
	if black.Role() != "black" || white.Role() != "white" {
		panic(fmt.Sprintf("cannot pair %s (%s) with %s (%s)", black.Name(), black.Role(), white.Name(), white.Role()))
	}
	return &Match{
		Board:  nogo.New(width),
		agents: [2]agent.Agent{black, white},
	}
}

func (m *Match) Run() (stats.GameMetric, []stats.MoveMetric) {
	flag := m.agents[0].Name() + ":" + m.agents[1].Name()
	for _, a := range m.agents {
		a.OpenEpisode(flag)
	}

	metric := stats.GameMetric{Game: stats.NoGoGame, StartTime: time.Now()}
	var moves []stats.MoveMetric

	who := nogo.Black
	for metric.Steps < MaxMoves {
		current := m.agents[who-1]
		action := current.TakeAction(m.Board)
		if !m.apply(action, who) {
			if !action.IsNone() {
				log.Warn().Str("component", "engine").Str("agent", current.Name()).Stringer("action", action).Msg("illegal placement")
			}
			break
		}
		metric.Steps++
		if mm, ok := moveMetric(metric.Steps, current); ok {
			moves = append(moves, mm)
		}
		who = who.Opponent()
	}

	for _, a := range m.agents {
		a.CloseEpisode(flag)
	}

	metric.Loser = m.agents[who-1].Name()
	metric.Winner = m.agents[who.Opponent()-1].Name()
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)

	log.Debug().
		Str("component", "engine").
		Str("winner", metric.Winner).
		Stringer("loser_piece", who).
		Int("steps", metric.Steps).
		Dur("duration", metric.Duration).
		Msg("match complete")
	return metric, moves
}

func (m *Match) apply(action game.Action, who nogo.Piece) bool {
	if action.Type != game.PlaceAction || action.Value != int(who) {
		return false
	}
	return m.Board.Place(action.Pos, who).IsLegal()
}
