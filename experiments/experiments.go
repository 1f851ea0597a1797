// Package experiments drives a configured run: it seats the agents, plays
// every episode, summarises the results and exports the records.
package experiments

import (
	"errors"
	"fmt"

	"boardai/agent"
	"boardai/config"
	"boardai/engine"
	"boardai/stats"

	"github.com/rs/zerolog/log"
)

// Result is what a finished run leaves behind.
type Result struct {
	Run    string
	Games  []stats.GameRecord
	Blocks []stats.Block
	Dir    string // Export directory, empty when export is off
}

// Run plays cfg.Episodes games. Every agent is closed before returning so
// configured weights are saved even when a later step fails.
func Run(cfg *config.Config) (result Result, err error) {
	agents, err := seat(cfg)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = errors.Join(err, closeAll(agents))
	}()

	recorder := stats.NewRecorder()
	summary := stats.NewSummary(cfg.Block)
	result.Run = recorder.Run()

	logger := log.With().Str("component", "experiments").Str("run", result.Run).Logger()
	logger.Info().Str("game", cfg.Game).Int("episodes", cfg.Episodes).Msg("starting run")

	for i := 0; i < cfg.Episodes; i++ {
		gameMetric, moveMetrics := newEngine(cfg, agents).Run()
		record := recorder.Add(gameMetric, moveMetrics)
		if block, ok := summary.Add(record); ok {
			result.Blocks = append(result.Blocks, block)
		}
	}
	if block, ok := summary.Flush(); ok {
		result.Blocks = append(result.Blocks, block)
	}
	result.Games = recorder.Games()

	logger.Info().Msg("completed run")

	if cfg.Output.Format == "" {
		return result, nil
	}
	writer, err := stats.NewWriter(cfg.Output.Dir, result.Run, cfg.Output.Format)
	if err != nil {
		return result, fmt.Errorf("failed to create writer: %w", err)
	}
	if err := writer.WriteGameRecords(recorder.Games()); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(recorder.Moves()); err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	result.Dir = writer.Dir()
	logger.Info().Str("dir", result.Dir).Msg("stored records")
	return result, nil
}

// seat builds the two agents of the configured game, first mover first.
func seat(cfg *config.Config) ([]agent.Agent, error) {
	args := []string{cfg.Agents.Slider, cfg.Agents.Placer}
	roles := []string{"slider", "placer"}
	if cfg.Game == stats.NoGoGame {
		args = []string{cfg.Agents.Black, cfg.Agents.White}
		roles = []string{"black", "white"}
	}

	agents := make([]agent.Agent, 0, len(args))
	for i, arg := range args {
		a, err := agent.New(arg)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create agent %q: %w", arg, err), closeAll(agents))
		}
		agents = append(agents, a)
		if a.Role() != roles[i] {
			return nil, errors.Join(fmt.Errorf("%w: %s seated as %s", agent.ErrInvalidRole, a.Name(), roles[i]), closeAll(agents))
		}
	}
	return agents, nil
}

func closeAll(agents []agent.Agent) error {
	var err error
	for _, a := range agents {
		err = errors.Join(err, a.Close())
	}
	return err
}

func newEngine(cfg *config.Config, agents []agent.Agent) engine.Engine {
	if cfg.Game == stats.NoGoGame {
		return engine.NewMatch(cfg.Width, agents[0], agents[1])
	}
	return engine.NewEpisode(agents[0], agents[1])
}
