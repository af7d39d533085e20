package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir into an empty directory so no .env of the repo is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StageDev, cfg.Stage)
	require.Equal(t, ModeInteractive, cfg.Mode)
	require.Equal(t, 6, cfg.GridSize)
	require.Equal(t, 2000, cfg.PlacementMaxAttempts)
	require.Equal(t, 100, cfg.BoardMaxRegenerations)
	require.Equal(t, uint64(0), cfg.Seed)
	require.Equal(t, 1, cfg.Games)
	require.Equal(t, 0, cfg.SpectatorPort)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("MODE", "Simulate")
	t.Setenv("GRID_SIZE", "8")
	t.Setenv("SEED", "1234")
	t.Setenv("GAMES", "20")
	t.Setenv("SPECTATOR_PORT", "9191")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ModeSimulate, cfg.Mode)
	require.Equal(t, 8, cfg.GridSize)
	require.Equal(t, uint64(1234), cfg.Seed)
	require.Equal(t, 20, cfg.Games)
	require.Equal(t, 9191, cfg.SpectatorPort)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLACEMENT_MAX_ATTEMPTS=500\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("PLACEMENT_MAX_ATTEMPTS")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 500, cfg.PlacementMaxAttempts)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown stage", key: "STAGE", value: "staging"},
		{name: "unknown mode", key: "MODE", value: "network"},
		{name: "no placement attempts", key: "PLACEMENT_MAX_ATTEMPTS", value: "0"},
		{name: "no regenerations", key: "BOARD_MAX_REGENERATIONS", value: "-3"},
		{name: "no games", key: "GAMES", value: "0"},
		{name: "port out of range", key: "SPECTATOR_PORT", value: "70000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(test.key, test.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
