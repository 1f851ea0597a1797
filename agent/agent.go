// Package agent builds the players and environments that take turns in an
// episode. Every variant is chosen by the "type" key of its argument string.
package agent

import (
	"fmt"

	"boardai/game"

	"github.com/rs/zerolog/log"
)

type Agent interface {
	OpenEpisode(flag string)
	CloseEpisode(flag string)
	// TakeAction returns the null action when nothing legal is available.
	TakeAction(state game.State) game.Action
	Notify(msg string) error
	Property(key string) (string, bool)
	Name() string
	Role() string
	// Close releases the agent and persists anything it is configured to save.
	Close() error
}

// New builds the agent variant selected by the type key of args.
func New(args string) (Agent, error) {
	cfg, err := NewConfig(args)
	if err != nil {
		return nil, err
	}

	var a Agent
	switch cfg.Type {
	case "random":
		a, err = newRandom(cfg)
	case "placer":
		a, err = newPlacer(cfg)
	case "tuple":
		a, err = newTuplePlayer(cfg)
	case "mcts":
		a, err = newMCTSPlayer(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("component", "agent").
		Str("name", cfg.Name).
		Str("role", cfg.Role).
		Str("type", cfg.Type).
		Msg("agent created")
	return a, nil
}

// base carries the configuration shared by every variant.
type base struct {
	cfg Config
}

func (b *base) OpenEpisode(flag string)  {}
func (b *base) CloseEpisode(flag string) {}
func (b *base) Close() error             { return nil }

func (b *base) Notify(msg string) error {
	return b.cfg.Notify(msg)
}

func (b *base) Property(key string) (string, bool) {
	return b.cfg.Property(key)
}

func (b *base) Name() string {
	return b.cfg.Name
}

func (b *base) Role() string {
	return b.cfg.Role
}
