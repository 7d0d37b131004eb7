package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/config"
)

func TestLoadPaths_NoFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadPaths(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestLoadPaths_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "render:\n  env-file: deploy/.env\nserver:\n  addr: ':9000'\n  timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadPaths(path)
	require.NoError(t, err)

	assert.Equal(t, "deploy/.env", cfg.Render.EnvFile)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	// 未设置的 key 保持默认值
	assert.Equal(t, config.DefaultConfig().Server.Idletime, cfg.Server.Idletime)
}

func TestLoadPaths_FirstHitWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("server:\n  addr: ':1111'\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("server:\n  addr: ':2222'\n"), 0o600))

	cfg, err := config.LoadPaths(first, second)
	require.NoError(t, err)
	assert.Equal(t, ":1111", cfg.Server.Addr)
}

func TestLoadPaths_JSONConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"render": {"env-file": "json/.env"}}`), 0o600))

	cfg, err := config.LoadPaths(path)
	require.NoError(t, err)
	assert.Equal(t, "json/.env", cfg.Render.EnvFile)
}

func TestLoadPaths_PlaceholderExpansion(t *testing.T) {
	t.Setenv("CONFIG_TEST_ENV_FILE", "expanded/.env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "render:\n  env-file: ${{CONFIG_TEST_ENV_FILE}}\nserver:\n  addr: ${{CONFIG_TEST_UNSET_ADDR}}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadPaths(path)
	require.NoError(t, err)

	assert.Equal(t, "expanded/.env", cfg.Render.EnvFile)
	// 未解析的占位符保持原样
	assert.Equal(t, "${{CONFIG_TEST_UNSET_ADDR}}", cfg.Server.Addr)
}

func TestLoadPaths_EnvOverrides(t *testing.T) {
	t.Setenv("ENVRENDER_RENDER_ENV_FILE", "env/.env")
	t.Setenv("ENVRENDER_SERVER_TIMEOUT", "42s")

	cfg, err := config.LoadPaths(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env/.env", cfg.Render.EnvFile)
	assert.Equal(t, 42*time.Second, cfg.Server.Timeout)
}

func TestLoadPaths_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed\n"), 0o600))

	_, err := config.LoadPaths(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestDefaultPaths(t *testing.T) {
	paths := config.DefaultPaths("envrender")

	require.NotEmpty(t, paths)
	assert.Equal(t, ".envrender.yaml", paths[0])
	assert.Contains(t, paths, "config.yaml")
}
