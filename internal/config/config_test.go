package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("difficulty: hard\n"))
	require.NoError(t, err)

	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, 1000, cfg.MismatchDelayMS)
	assert.Equal(t, 30, cfg.TickRate)
	assert.True(t, cfg.ShowHelp)
}

func TestParse_ValidateClampsValues(t *testing.T) {
	cfg, err := Parse([]byte("mismatch_delay_ms: -5\ntick_rate: 0\ndifficulty: \"\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.MismatchDelayMS)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "medium", cfg.Difficulty)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("tick_rate: [oops"))
	assert.Error(t, err)
}

func TestLoad_CustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "difficulty: easy\nmismatch_delay_ms: 400\nseed: 12\nshow_help: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "easy", cfg.Difficulty)
	assert.Equal(t, 400*time.Millisecond, cfg.MismatchDelay())
	assert.Equal(t, int64(12), cfg.Seed)
	assert.False(t, cfg.ShowHelp)
}

func TestLoad_CustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := writeFile(t, t.TempDir(), "bad.yaml", "seed: [1, 2")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_SearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Local file wins over the embedded default.
	writeFile(t, work, LocalPath, "difficulty: hard\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)

	// User file wins over the local one.
	writeFile(t, home, filepath.Join(".config", "go-memtiles", "config.yaml"), "difficulty: easy\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, Default().TickInterval())
	assert.Equal(t, time.Second/30, Config{}.TickInterval())
	assert.Equal(t, time.Second/60, Config{TickRate: 60}.TickInterval())
}
