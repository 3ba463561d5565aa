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
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := writeConfig(t, "http-port: \"8081\"\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "tictactoe:events", conf.Redis.Channel)
		assert.True(t, conf.Presentation.SoundEnabled)
		assert.True(t, conf.Presentation.DiscoMode)
		assert.Equal(t, "sounds", conf.Presentation.SoundsDir)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a full config file
		path := writeConfig(t, `
log-level: debug
http-port: "7000"
redis:
  enabled: true
  host: cache
  port: "6380"
  channel: party
presentation:
  sound-enabled: false
  disco-mode: false
  sounds-dir: /srv/sounds
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every field is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "party", conf.Redis.Channel)
		assert.False(t, conf.Presentation.SoundEnabled)
		assert.False(t, conf.Presentation.DiscoMode)
		assert.Equal(t, "/srv/sounds", conf.Presentation.SoundsDir)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "nope.yml"))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	// Given: the port is set through the environment
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("SOUND_ENABLED", "false")

	// When: loading without a file
	conf, err := LoadEnv()

	// Then: env values override defaults
	require.NoError(t, err)
	assert.Equal(t, "9191", conf.HTTPPort)
	assert.False(t, conf.Presentation.SoundEnabled)
	assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
}
