// Package config loads the run configuration from an optional YAML file and
// BOARDAI_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"boardai/game/nogo"
	"boardai/stats"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the configuration of one run
type Config struct {
	Game     string       `mapstructure:"game"`
	Episodes int          `mapstructure:"episodes"`
	Block    int          `mapstructure:"block"`
	Width    int          `mapstructure:"width"`
	Agents   AgentsConfig `mapstructure:"agents"`
	Log      LogConfig    `mapstructure:"log"`
	Output   OutputConfig `mapstructure:"output"`
}

// AgentsConfig holds the key=value argument string of every seat
type AgentsConfig struct {
	Slider string `mapstructure:"slider"`
	Placer string `mapstructure:"placer"`
	Black  string `mapstructure:"black"`
	White  string `mapstructure:"white"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls record export; an empty format disables it
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game", stats.TileGame)
	v.SetDefault("episodes", 1000)
	v.SetDefault("block", 1000)
	v.SetDefault("width", nogo.DefaultWidth)

	v.SetDefault("agents.slider", "name=tdl type=tuple role=slider")
	v.SetDefault("agents.placer", "name=rnd type=placer role=placer")
	v.SetDefault("agents.black", "name=mcts type=mcts role=black")
	v.SetDefault("agents.white", "name=random type=random role=white")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("output.dir", "results")
	v.SetDefault("output.format", "")
}

// Load reads configPath when given, otherwise an optional boardai.yaml in
// the working directory, then applies environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("boardai")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BOARDAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	switch cfg.Game {
	case stats.TileGame, stats.NoGoGame:
	default:
		return fmt.Errorf("unknown game %q", cfg.Game)
	}
	if cfg.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, got %d", cfg.Episodes)
	}
	if cfg.Block <= 0 {
		return fmt.Errorf("block must be positive, got %d", cfg.Block)
	}
	if cfg.Game == stats.NoGoGame && (cfg.Width < 1 || cfg.Width > nogo.MaxWidth) {
		return fmt.Errorf("width must be in [1, %d], got %d", nogo.MaxWidth, cfg.Width)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	switch cfg.Output.Format {
	case "", stats.FormatCSV, stats.FormatParquet:
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	return nil
}
