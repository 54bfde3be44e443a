package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/ghq/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.toml")
	contents := "[Agent]\nRandomSeed = 42\n\n[Agent.PieceValues]\nh = 900\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Agent.RandomSeed)
	assert.Equal(t, 900, cfg.Agent.PieceValues["h"])
}

func TestLoadRejectsUnrecognisedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("Bogus = 1\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
