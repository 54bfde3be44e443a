// Package config holds tunables for the sample agents (pkg/agent), loaded from a TOML
// file with defaults for anything the file omits. Grounded on frankkopp-FrankyGo's
// internal/config package (a struct unmarshalled via toml.DecodeFile, with package-level
// defaults that survive a missing or partial file).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables read from a TOML file.
type Config struct {
	Agent AgentConfig
}

// AgentConfig configures pkg/agent's sample agents.
type AgentConfig struct {
	// RandomSeed seeds RandomAgent's source. 0 means "use the default global source".
	RandomSeed int64

	// PieceValues overrides agent.Evaluate's material table (centipoints), keyed by the
	// single-letter piece symbol ("i", "f", "p", "r", "t", "h", "q"). Entries are optional;
	// omitted types keep agent's built-in defaults.
	PieceValues map[string]int
}

// Default returns the built-in configuration (no overrides).
func Default() Config {
	return Config{}
}

// Load reads path as TOML into a Config seeded with Default(); a missing file is not an
// error, it just leaves the defaults unmodified. Consistent with FrankyGo's config.Setup,
// which logs and falls back to defaults rather than failing when the file is absent.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: decoding %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %q has unrecognised keys: %v", path, undecoded)
	}
	return cfg, nil
}
