package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/hopper/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnv(t, "HOPPER_GRAVITY=2500\nHOPPER_AUTO_BOUNCE=false\nHOPPER_SEED=42\nHOPPER_WIDTH=640\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, cfg.Tuning.Gravity)
	assert.False(t, cfg.Tuning.AutoBounce)
	assert.Equal(t, uint64(42), cfg.Tuning.Seed)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 800, cfg.Height)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := writeEnv(t, "HOPPER_MAX_SPEED=500\n")
	t.Setenv("HOPPER_MAX_SPEED", "650")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 650.0, cfg.Tuning.MaxSpeed)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeEnv(t, "HOPPER_GRAVITY=heavy\nHOPPER_HEIGHT=tall\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOPPER_GRAVITY")
	assert.Contains(t, err.Error(), "HOPPER_HEIGHT")
}

func TestFlagsOverride(t *testing.T) {
	cfg := config.Default()
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"-jump-velocity", "1800", "-auto-bounce=false", "-height", "900"}))

	assert.Equal(t, 1800.0, cfg.Tuning.JumpVelocity)
	assert.False(t, cfg.Tuning.AutoBounce)
	assert.Equal(t, 900, cfg.Height)
	assert.Equal(t, 480, cfg.Width)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0
	cfg.Tuning.Gravity = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viewport")
	assert.Contains(t, err.Error(), "gravity")
}
