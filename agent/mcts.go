package agent

import (
	"fmt"

	"boardai/game"
	"boardai/game/nogo"
	"boardai/searcher"
)

// mctsPlayer searches every NoGo decision from scratch.
type mctsPlayer struct {
	base
	mcts *searcher.MCTS
}

func newMCTSPlayer(cfg Config) (Agent, error) {
	who := nogo.ParsePiece(cfg.Role)
	if who == nogo.Empty {
		return nil, fmt.Errorf("%w: mcts player cannot play %q", ErrInvalidRole, cfg.Role)
	}

	options := []searcher.Option{
		searcher.WithRand(cfg.rng()),
		searcher.WithMetrics(),
	}
	if cfg.Timeout > 0 {
		options = append(options, searcher.WithDuration(cfg.Timeout))
	}
	if cfg.Simulation > 0 {
		options = append(options, searcher.WithIterations(cfg.Simulation))
	}
	if cfg.CheckInterval > 0 {
		options = append(options, searcher.WithCheckInterval(cfg.CheckInterval))
	}
	if _, ok := cfg.Property("c"); ok {
		options = append(options, searcher.WithExploration(cfg.Exploration))
	}

	return &mctsPlayer{
		base: base{cfg: cfg},
		mcts: searcher.NewMCTS(who, options...),
	}, nil
}

func (a *mctsPlayer) TakeAction(state game.State) game.Action {
	move, ok := a.mcts.FindNextMove(nogoBoard(state))
	if !ok {
		return game.Action{}
	}
	return game.Place(move.Pos, int(move.Who))
}

// Metrics returns the metrics of the last decision.
func (a *mctsPlayer) Metrics() searcher.SearchMetric {
	return a.mcts.Metrics()
}
