package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when no file exists", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Console.NoColor)
		assert.Equal(t, 0, conf.Console.MaxAttempts)
	})

	t.Run("Values from the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nconsole:\n  no-color: true\n  max-attempts: 3\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Console.NoColor)
		assert.Equal(t, 3, conf.Console.MaxAttempts)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))
		t.Setenv("LOG_LEVEL", "error")

		// When: loading the config
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("console: [\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestLoad_NoColor(t *testing.T) {
	t.Run("Colour stays on when the file does not mention it", func(t *testing.T) {
		// Given: a config file without a console section
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: colour is not disabled
		require.NoError(t, err)
		assert.False(t, conf.Console.NoColor)
	})

	t.Run("Environment disables colour", func(t *testing.T) {
		// Given: CONSOLE_NO_COLOR set and no file
		t.Setenv("CONSOLE_NO_COLOR", "true")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: colour is disabled
		require.NoError(t, err)
		assert.True(t, conf.Console.NoColor)
	})

	t.Run("File setting survives env defaults", func(t *testing.T) {
		// Given: a file that disables colour and leaves max attempts unset
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("console:\n  no-color: true\n"), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file value is kept and the default fills the rest
		require.NoError(t, err)
		assert.True(t, conf.Console.NoColor)
		assert.Equal(t, 0, conf.Console.MaxAttempts)
		assert.Equal(t, "info", conf.LogLevel)
	})
}
