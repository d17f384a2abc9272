package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
)

const configFilename = "config.json"

// Environment variables that override the config file.
const (
	EnvHost       = "GAMICLIENT_HOST"
	EnvGameToken  = "GAMICLIENT_GAME_TOKEN"
	EnvLogLevel   = "GAMICLIENT_LOG_LEVEL"
	EnvPassphrase = "GAMICLIENT_PASSPHRASE"
	EnvTimeout    = "GAMICLIENT_HTTP_TIMEOUT_SECONDS"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home               string `json:"-"`                    // config directory, e.g. $HOME/.gamiclient
	Host               string `json:"host"`                 // platform base URL, e.g. https://play.example.com
	GameToken          string `json:"game_token"`           // application token of the game
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"` // 0 disables the client timeout
	LogLevel           string `json:"log_level"`
	Passphrase         string `json:"-"` // protects the stored session; never read from the file

	HTTP *http.Client `json:"-"` // optional; built from HTTPTimeoutSeconds when nil
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		HTTPTimeoutSeconds: 30,
		LogLevel:           "info",
	}
}

// Load builds a Config for home: defaults, then <home>/config.json (JSON
// with comments and trailing commas allowed), then a .env file in the
// working directory, then GAMICLIENT_* environment variables.
func Load(home string) (Config, error) {
	cfg := Default()
	cfg.Home = home

	if home != "" {
		if err := LoadFile(filepath.Join(home, configFilename), &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the config file at path onto cfg. A missing file is
// not an error.
func LoadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config failed: %w", err)
	}
	std, err := hujson.Standardize(content)
	if err != nil {
		return fmt.Errorf("parse config failed: %w", err)
	}
	if err := json.Unmarshal(std, cfg); err != nil {
		return fmt.Errorf("parse config failed: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvGameToken); v != "" {
		c.GameToken = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPassphrase); v != "" {
		c.Passphrase = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.HTTPTimeoutSeconds = n
	}
	return nil
}

// Validate checks the settings every platform call needs and normalizes
// the host.
func (c *Config) Validate() error {
	c.Host = strings.TrimRight(strings.TrimSpace(c.Host), "/")
	if c.Host == "" {
		return errors.New("platform host is not configured (use --host or " + EnvHost + ")")
	}
	if c.GameToken == "" {
		return errors.New("game token is not configured (use --game-token or " + EnvGameToken + ")")
	}
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http timeout must not be negative, got %d", c.HTTPTimeoutSeconds)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// HTTPClient returns the configured client or one honouring the timeout.
func (c *Config) HTTPClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: time.Duration(c.HTTPTimeoutSeconds) * time.Second}
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
