package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
socket-port: "8081"
redis:
  host: redis
  port: "6380"
random-seed: 42
tui-log-file: /tmp/gomoku.log
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		require.Equal(t, &Config{
			LogLevel:   "debug",
			HTTPPort:   "8080",
			SocketPort: "8081",
			Redis:      Redis{Host: "redis", Port: "6380"},
			RandomSeed: 42,
			TUILogFile: "/tmp/gomoku.log",
		}, conf)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Zero(t, conf.RandomSeed)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "socket-port: \"8081\"\n")
		t.Setenv("SOCKET_PORT", "7000")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.SocketPort)
	})

	t.Run("Error on malformed file", func(t *testing.T) {
		path := writeConfig(t, "random-seed: [not a number\n")

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "random-seed: nope\n")

	assert.Panics(t, func() { MustLoad(path) })
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "redis:6379", (&Redis{Host: "redis", Port: "6379"}).GetRedisAddr())
	assert.Empty(t, (&Redis{Port: "6379"}).GetRedisAddr())
}
