package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Categories accepted by the headlines endpoint. "all" means no filter.
var Categories = []string{
	"all", "general", "business", "entertainment",
	"health", "science", "sports", "technology",
}

type Config struct {
	Country        string   `yaml:"country"`
	PageSize       int      `yaml:"page_size"`
	MaxKeywords    int      `yaml:"max_keywords"`
	MinTokenLength int      `yaml:"min_token_length"`
	StopWords      []string `yaml:"stop_words"`
	AnalyticsDays  int      `yaml:"analytics_days"`
	RecentSearches int      `yaml:"recent_searches"`
	Database       string   `yaml:"database,omitempty"`
	LogFile        string   `yaml:"log_file,omitempty"`
	Debug          bool     `yaml:"debug,omitempty"`
}

// StopWordSet returns the stop words as a lookup set.
func (c *Config) StopWordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.StopWords))
	for _, w := range c.StopWords {
		set[w] = struct{}{}
	}
	return set
}

func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the settings file at path, falling back to the default location
// and writing the embedded defaults on first run.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run.
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults.
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	fillMissing(&cfg, defaults)
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// fillMissing backfills zero-valued fields from the embedded defaults so a
// hand-trimmed config file still yields a usable configuration.
func fillMissing(cfg, defaults *Config) {
	if cfg.Country == "" {
		cfg.Country = defaults.Country
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = defaults.MaxKeywords
	}
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = defaults.MinTokenLength
	}
	if len(cfg.StopWords) == 0 {
		cfg.StopWords = defaults.StopWords
	}
	if cfg.AnalyticsDays <= 0 {
		cfg.AnalyticsDays = defaults.AnalyticsDays
	}
	if cfg.RecentSearches <= 0 {
		cfg.RecentSearches = defaults.RecentSearches
	}
}

func validate(cfg *Config) error {
	if len(cfg.Country) != 2 {
		return fmt.Errorf("country must be a 2-letter code, got %q", cfg.Country)
	}
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		return fmt.Errorf("page_size must be between 1 and 100, got %d", cfg.PageSize)
	}
	if cfg.MaxKeywords < 1 {
		return fmt.Errorf("max_keywords must be at least 1, got %d", cfg.MaxKeywords)
	}
	if cfg.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be at least 1, got %d", cfg.MinTokenLength)
	}
	return nil
}
