package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, defaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "React", cfg.InitialQuery)
	assert.Equal(t, 1, cfg.FetchPages)
	assert.Equal(t, filepath.Join(cfg.CacheDir, "cache.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(cfg.CacheDir, "debug.log"), cfg.LogPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileNoFlags(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load([]string{"--cache-dir", dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.CacheDir)
	assert.Equal(t, filepath.Join(dir, "cache.db"), cfg.DBPath)
	assert.Equal(t, "React", cfg.InitialQuery)
}

func TestLoad_FileFromCacheDir(t *testing.T) {
	dir := t.TempDir()
	content := `
initial_query: "golang"
fetch_pages: 3
search_ttl: 30s
refresh_interval: 2m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))

	cfg, err := Load([]string{"--cache-dir", dir})
	require.NoError(t, err)

	assert.Equal(t, "golang", cfg.InitialQuery)
	assert.Equal(t, 3, cfg.FetchPages)
	assert.Equal(t, 30*time.Second, cfg.SearchTTL)
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, defaultEndpoint, cfg.Endpoint)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	content := `
cache_dir: "/from/file"
initial_query: "golang"
endpoint: "http://file.example/search?query="
fetch_pages: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load([]string{
		"--config", path,
		"--cache-dir", dir,
		"--query", "rust",
		"--pages", "2",
		"--refresh", "1m",
		"--debug",
	})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.CacheDir)
	assert.Equal(t, filepath.Join(dir, "cache.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogPath)
	assert.Equal(t, "rust", cfg.InitialQuery)
	assert.Equal(t, 2, cfg.FetchPages)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "http://file.example/search?query=", cfg.Endpoint)
	assert.True(t, cfg.Debug)
}

func TestLoad_FileCacheDirWithoutFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(`cache_dir: "/from/file"`), 0o644))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.CacheDir)
	assert.Equal(t, filepath.Join("/from/file", "cache.db"), cfg.DBPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yml")})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("fetch_pages: [1"), 0o644))

	_, err := Load([]string{"--cache-dir", dir})
	assert.Error(t, err)
}

func TestLoad_InvalidPages(t *testing.T) {
	_, err := Load([]string{"--cache-dir", t.TempDir(), "--pages=-1"})
	assert.ErrorContains(t, err, "invalid fetch pages")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero pages", func(c *Config) { c.FetchPages = 0 }},
		{"negative refresh", func(c *Config) { c.RefreshInterval = -time.Second }},
		{"negative ttl", func(c *Config) { c.SearchTTL = -time.Second }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"negative rate", func(c *Config) { c.RequestsPerSecond = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
