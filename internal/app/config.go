package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseURL    string        `env:"WALLETKIT_BASE_URL,default=http://127.0.0.1:8080"`
	Home       string        `env:"WALLETKIT_HOME"`       // preferences directory, defaults to $HOME/.walletkit
	Passphrase string        `env:"WALLETKIT_PASSPHRASE"` // non-empty selects the sealed preferences file
	Timeout    time.Duration `env:"WALLETKIT_TIMEOUT,default=15s"`
	RateLimit  float64       `env:"WALLETKIT_RATE_LIMIT,default=0"` // requests per second, 0 = off
	LogLevel   string        `env:"WALLETKIT_LOG_LEVEL,default=warn"`
}

// LoadConfig reads Config from the environment. When envFile is non-empty it
// is loaded first; variables already set in the environment take precedence.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	return cfg, nil
}

// DefaultHome returns $HOME/.walletkit.
func DefaultHome() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(h, ".walletkit"), nil
}
