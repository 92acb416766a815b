package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "config file should be created on first launch")

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreate_OverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	data := `
db_path = "/tmp/other.db"
default_filter = "pending"
dark_mode = true

[keys]
theme = "m"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "pending", cfg.DefaultFilter)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "m", cfg.Keys.Theme)
	assert.Equal(t, "a", cfg.Keys.Add, "unset keys keep their defaults")
	assert.Equal(t, DefaultStoreKey, cfg.StoreKey)
	assert.Equal(t, 3*time.Second, cfg.NotifyDelay())
}

func TestLoadOrCreate_RejectsUnknownFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`default_filter = "someday"`), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestLoadOrCreate_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("TODO_CONFIG", "/etc/todo.toml")
	assert.Equal(t, "/etc/todo.toml", ResolveConfigPath())

	t.Setenv("TODO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/me/.config")
	assert.Equal(t, filepath.Join("/home/me/.config", "todo", DefaultConfigFileName), ResolveConfigPath())
}
