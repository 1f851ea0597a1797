package engine

import (
	"fmt"
	"time"

	"boardai/agent"
	"boardai/game"
	"boardai/game/tile"
	"boardai/stats"

	"github.com/rs/zerolog/log"
)

// Openings is the number of tiles placed before the first slide.
const Openings = 2

// Episode plays one tile game between a slider and a placer.
type Episode struct {
	Board  tile.Board
	slider agent.Agent
	placer agent.Agent
}

func NewEpisode(slider, placer agent.Agent) *Episode {
	if slider.Role() != "slider" || placer.Role() != "placer" {
		panic(fmt.Sprintf("cannot pair %s (%s) with %s (%s)", slider.Name(), slider.Role(), placer.Name(), placer.Role()))
	}
	return &Episode{slider: slider, placer: placer}
}

// Run executes the episode until the slider or the placer cannot act.
func (e *Episode) Run() (stats.GameMetric, []stats.MoveMetric) {
	flag := e.slider.Name() + ":" + e.placer.Name()
	e.slider.OpenEpisode(flag)
	e.placer.OpenEpisode(flag)

	metric := stats.GameMetric{Game: stats.TileGame, StartTime: time.Now()}
	var moves []stats.MoveMetric

	for i := 0; i < Openings; i++ {
		if !e.place() {
			break
		}
		metric.Steps++
	}

	for metric.Steps < MaxMoves {
		action := e.slider.TakeAction(e.Board)
		if action.Type != game.SlideAction {
			break
		}
		reward := e.Board.Slide(action.Op)
		if reward == tile.Illegal {
			log.Warn().Str("component", "engine").Str("agent", e.slider.Name()).Stringer("action", action).Msg("illegal slide")
			break
		}
		metric.Score += reward
		metric.Steps++
		if m, ok := moveMetric(metric.Steps, e.slider); ok {
			moves = append(moves, m)
		}

		if !e.place() {
			break
		}
		metric.Steps++
	}

	e.slider.CloseEpisode(flag)
	e.placer.CloseEpisode(flag)

	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	metric.MaxTile = e.Board.MaxTile()

	log.Debug().
		Str("component", "engine").
		Int("score", metric.Score).
		Int("max_tile", 1<<metric.MaxTile).
		Int("steps", metric.Steps).
		Dur("duration", metric.Duration).
		Msg("episode complete")
	return metric, moves
}

func (e *Episode) place() bool {
	action := e.placer.TakeAction(e.Board)
	if action.Type != game.PlaceAction {
		return false
	}
	if e.Board.Place(action.Pos, action.Value) == tile.Illegal {
		log.Warn().Str("component", "engine").Str("agent", e.placer.Name()).Stringer("action", action).Msg("illegal placement")
		return false
	}
	return true
}
