package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	jsonPath := writeTempFile(t, "cfg.json", `{
		"api_base_url": "http://json.example:9000/api",
		"online_check_interval": "10s",
		"request_timeout": 15000000000,
		"download_dir": "dl"
	}`)
	yamlPath := writeTempFile(t, "cfg.yml", "api_base_url: http://yaml.example/api\nonline_check_interval: 1m\n")

	t.Run("loads json", func(t *testing.T) {
		cfg := &Config{LogLevel: "info"}
		parseFile(cfg, []string{"-config", jsonPath})

		assert.Equal(t, "http://json.example:9000/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "dl", cfg.DownloadDir)
		assert.Equal(t, "info", cfg.LogLevel, "absent field keeps its value")
	})

	t.Run("loads yaml", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-c", yamlPath})

		assert.Equal(t, "http://yaml.example/api", cfg.APIBaseURL)
		assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no file flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "defaults", OnlineCheckInterval: 42 * time.Second}
		parseFile(cfg, []string{"-a", "ignored"})

		assert.Equal(t, "defaults", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.json", `{ this is not valid json`)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("unknown extension → panics", func(t *testing.T) {
		toml := writeTempFile(t, "cfg.toml", `a = 1`)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", toml}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}

func TestLoadFromArgs_KeepsSubSecondFileDurations(t *testing.T) {
	path := writeTempFile(t, "cfg.yaml", "online_check_interval: 500ms\nrequest_timeout: 1500ms\n")

	cfg := loadFromArgs([]string{"-c", path})

	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}
