package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileAnywhereReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_CustomPathWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tick_time_ms": 250, "server_port": 9000, "game_start_ticks": 10, "game_turns": 50, "token_rate": 1.0}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(250), cfg.TickTimeMs)
	assert.Equal(t, 9000, cfg.ServerPort)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_TickPeriod(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(500), cfg.TickTimeMs)
	assert.Equal(t, "500ms", cfg.TickPeriod().String())
}
