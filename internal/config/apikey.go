package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable consulted before the .env file.
const EnvAPIKey = "NEWS_API_KEY"

// ErrNoAPIKey means no key is configured anywhere. It blocks a single fetch,
// never the process.
var ErrNoAPIKey = errors.New("no API key configured: set NEWS_API_KEY or run 'newslens key set'")

func envFilePath() string {
	return filepath.Join(Dir(), ".env")
}

// LoadAPIKey resolves the NewsAPI key: process environment first, then the
// .env file in the config directory.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	vars, err := godotenv.Read(envFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoAPIKey
		}
		return "", fmt.Errorf("reading %s: %w", envFilePath(), err)
	}

	key := strings.TrimSpace(vars[EnvAPIKey])
	if key == "" {
		return "", ErrNoAPIKey
	}
	return key, nil
}

// SaveAPIKey persists the key to the .env file so later runs pick it up.
func SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key is empty")
	}

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	content := fmt.Sprintf("%s=%s\n", EnvAPIKey, key)
	if err := os.WriteFile(envFilePath(), []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", envFilePath(), err)
	}
	return nil
}
