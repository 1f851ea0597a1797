package agent

import (
	"fmt"

	"boardai/game"
	"boardai/tuple"

	"github.com/rs/zerolog/log"
)

// tuplePlayer slides greedily on an n-tuple network and learns from every
// episode it closes.
type tuplePlayer struct {
	base
	learner *tuple.Learner
}

func newTuplePlayer(cfg Config) (Agent, error) {
	if cfg.Role != "slider" {
		return nil, fmt.Errorf("%w: tuple player cannot play %q", ErrInvalidRole, cfg.Role)
	}

	var tables []tuple.Table
	if len(cfg.Init) > 0 {
		tables = tuple.NewTables(cfg.Init)
	}
	if cfg.Load != "" {
		loaded, err := tuple.LoadFile(cfg.Load)
		if err != nil {
			return nil, fmt.Errorf("failed to load weights for %s: %w", cfg.Name, err)
		}
		tables = loaded
		log.Info().Str("component", "agent").Str("path", cfg.Load).Int("tables", len(tables)).Msg("weights loaded")
	}
	if tables == nil {
		tables = tuple.NewTables(tuple.DefaultSizes())
	}

	patterns := cfg.Patterns
	if patterns == nil {
		patterns = tuple.DefaultPatterns
	}
	net, err := tuple.NewNetwork(tables, patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to build network for %s: %w", cfg.Name, err)
	}

	return &tuplePlayer{
		base:    base{cfg: cfg},
		learner: tuple.NewLearner(net, cfg.Alpha),
	}, nil
}

func (a *tuplePlayer) OpenEpisode(flag string) {
	a.learner.Open()
}

func (a *tuplePlayer) CloseEpisode(flag string) {
	a.learner.Close()
}

func (a *tuplePlayer) TakeAction(state game.State) game.Action {
	op, ok := a.learner.Search2Ply(tileBoard(state))
	if !ok {
		return game.Action{}
	}
	return game.Slide(op)
}

func (a *tuplePlayer) Close() error {
	if a.cfg.Save == "" {
		return nil
	}
	if err := tuple.SaveFile(a.cfg.Save, a.learner.Network().Tables()); err != nil {
		return fmt.Errorf("failed to save weights for %s: %w", a.cfg.Name, err)
	}
	log.Info().Str("component", "agent").Str("path", a.cfg.Save).Msg("weights saved")
	return nil
}
