package app_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamiclient/internal/app"
)

// clearEnv isolates a test from GAMICLIENT_* variables of the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{app.EnvHost, app.EnvGameToken, app.EnvLogLevel, app.EnvPassphrase, app.EnvTimeout} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := app.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Host)
}

func TestLoad_FileWithComments(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(`{
		// staging backend
		"host": "https://staging.example.com/",
		"game_token": "from-file",
		"http_timeout_seconds": 5, // seconds
	}`), 0o600))

	cfg, err := app.Load(home)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "https://staging.example.com", cfg.Host)
	assert.Equal(t, "from-file", cfg.GameToken)
	assert.Equal(t, 5*time.Second, cfg.HTTPClient().Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"),
		[]byte(`{"host":"https://file.example.com","game_token":"from-file"}`), 0o600))
	t.Setenv(app.EnvGameToken, "from-env")
	t.Setenv(app.EnvPassphrase, "secret")
	t.Setenv(app.EnvTimeout, "0")

	cfg, err := app.Load(home)

	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.Host)
	assert.Equal(t, "from-env", cfg.GameToken)
	assert.Equal(t, "secret", cfg.Passphrase)
	assert.Zero(t, cfg.HTTPClient().Timeout)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(app.EnvHost)
	t.Cleanup(func() { os.Unsetenv(app.EnvHost) })
	require.NoError(t, os.WriteFile(".env", []byte("GAMICLIENT_HOST=https://dotenv.example.com\n"), 0o600))

	cfg, err := app.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example.com", cfg.Host)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(`{"host": `), 0o600))

	_, err := app.Load(home)
	assert.ErrorContains(t, err, "parse config failed")

	t.Setenv(app.EnvTimeout, "soon")
	_, err = app.Load(t.TempDir())
	assert.ErrorContains(t, err, app.EnvTimeout)
}

func TestValidate(t *testing.T) {
	cfg := app.Default()
	assert.ErrorContains(t, cfg.Validate(), "host")

	cfg.Host = "https://play.example.com"
	assert.ErrorContains(t, cfg.Validate(), "game token")

	cfg.GameToken = "g"
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "info"
	cfg.HTTPTimeoutSeconds = -1
	assert.Error(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	level, err := app.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = app.ParseLevel("")
	assert.Error(t, err)
}
