package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	ModeInteractive = "interactive"
	ModeSimulate    = "simulate"

	envFile = ".env"
)

type LogConfig struct {
	Level string
	File  string
}

type Config struct {
	Stage string
	Mode  string

	GridSize              int
	PlacementMaxAttempts  int
	BoardMaxRegenerations int

	// 0 picks a time based seed
	Seed uint64

	// Games played back to back in simulate mode
	Games int

	// 0 disables the spectator server
	SpectatorPort int

	Log LogConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STAGE", StageDev)
	v.SetDefault("MODE", ModeInteractive)
	v.SetDefault("GRID_SIZE", 6)
	v.SetDefault("PLACEMENT_MAX_ATTEMPTS", 2000)
	v.SetDefault("BOARD_MAX_REGENERATIONS", 100)
	v.SetDefault("SEED", 0)
	v.SetDefault("GAMES", 1)
	v.SetDefault("SPECTATOR_PORT", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
}

// Load reads the configuration from the environment. Outside of prod a
// .env file in the working directory is loaded first when present.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Stage:                 strings.ToLower(v.GetString("STAGE")),
		Mode:                  strings.ToLower(v.GetString("MODE")),
		GridSize:              v.GetInt("GRID_SIZE"),
		PlacementMaxAttempts:  v.GetInt("PLACEMENT_MAX_ATTEMPTS"),
		BoardMaxRegenerations: v.GetInt("BOARD_MAX_REGENERATIONS"),
		Seed:                  v.GetUint64("SEED"),
		Games:                 v.GetInt("GAMES"),
		SpectatorPort:         v.GetInt("SPECTATOR_PORT"),
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return fmt.Errorf("stage must be either dev or prod, got: %q", c.Stage)
	}
	if c.Mode != ModeInteractive && c.Mode != ModeSimulate {
		return fmt.Errorf("mode must be either interactive or simulate, got: %q", c.Mode)
	}
	if c.PlacementMaxAttempts < 1 {
		return fmt.Errorf("PLACEMENT_MAX_ATTEMPTS must be positive, got: %d", c.PlacementMaxAttempts)
	}
	if c.BoardMaxRegenerations < 1 {
		return fmt.Errorf("BOARD_MAX_REGENERATIONS must be positive, got: %d", c.BoardMaxRegenerations)
	}
	if c.Games < 1 {
		return fmt.Errorf("GAMES must be positive, got: %d", c.Games)
	}
	if c.SpectatorPort < 0 || c.SpectatorPort > 65535 {
		return fmt.Errorf("invalid SPECTATOR_PORT: %d", c.SpectatorPort)
	}
	return nil
}
