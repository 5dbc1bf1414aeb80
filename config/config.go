// Package config loads the small set of tunables the engine needs at
// startup, with the same layered fallback-path behavior as the reference
// implementation's dazzled.rs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds the engine's runtime tunables. JSON tags match the wire
// format documented for the config file.
type Config struct {
	TickTimeMs     int64   `json:"tick_time_ms"`
	ServerPort     int     `json:"server_port"`
	GameStartTicks int     `json:"game_start_ticks"`
	GameTurns      uint64  `json:"game_turns"`
	TokenRate      float64 `json:"token_rate"`
}

// DefaultConfig returns the engine's built-in tunables, used whenever no
// config file is found on the search path.
func DefaultConfig() Config {
	return Config{
		TickTimeMs:     500,
		ServerPort:     42000,
		GameStartTicks: 60,
		GameTurns:      300,
		TokenRate:      2.5,
	}
}

// TickPeriod converts TickTimeMs to a time.Duration for use with a ticker.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickTimeMs) * time.Millisecond
}

// Load tries customPath (if non-empty), then ./dazzled.json, then
// /etc/dazzled.json, in that order, returning the first one that exists and
// parses. If none exist, DefaultConfig is returned with a nil error. A file
// that exists but fails to parse is a fatal condition reported to the
// caller, mirroring try_open_config in the original reference
// implementation's dazzled.rs.
func Load(customPath string) (Config, error) {
	candidates := make([]string, 0, 3)
	if customPath != "" {
		candidates = append(candidates, customPath)
	}
	candidates = append(candidates, "dazzled.json", "/etc/dazzled.json")

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		return cfg, nil
	}

	return DefaultConfig(), nil
}
