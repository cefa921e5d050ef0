package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Country != "us" {
		t.Errorf("expected default country us, got %q", cfg.Country)
	}
	if cfg.PageSize != 50 {
		t.Errorf("expected default page_size 50, got %d", cfg.PageSize)
	}
	if cfg.MaxKeywords != 5 {
		t.Errorf("expected default max_keywords 5, got %d", cfg.MaxKeywords)
	}
	if cfg.MinTokenLength != 3 {
		t.Errorf("expected default min_token_length 3, got %d", cfg.MinTokenLength)
	}
	if cfg.AnalyticsDays != 30 {
		t.Errorf("expected default analytics_days 30, got %d", cfg.AnalyticsDays)
	}
	if len(cfg.StopWords) == 0 {
		t.Error("expected a non-empty default stop word list")
	}
}

func TestStopWordSet(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	set := cfg.StopWordSet()
	for _, w := range []string{"the", "said", "says", "news", "report"} {
		if _, ok := set[w]; !ok {
			t.Errorf("expected %q in default stop word set", w)
		}
	}
	if _, ok := set["market"]; ok {
		t.Error("did not expect 'market' in stop word set")
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Country != "us" {
		t.Errorf("expected defaults, got country %q", cfg.Country)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("country: de\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Country != "de" {
		t.Errorf("expected country de, got %q", cfg.Country)
	}
	if cfg.PageSize != 50 {
		t.Errorf("expected backfilled page_size 50, got %d", cfg.PageSize)
	}
	if len(cfg.StopWords) == 0 {
		t.Error("expected backfilled stop words")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad country", "country: usa\n"},
		{"page size too large", "page_size: 500\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("writing config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %q", tt.body)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, cat := range []string{"all", "general", "technology", "sports"} {
		if !ValidCategory(cat) {
			t.Errorf("expected %q to be valid", cat)
		}
	}
	for _, cat := range []string{"", "politics", "Technology"} {
		if ValidCategory(cat) {
			t.Errorf("expected %q to be invalid", cat)
		}
	}
}

func TestDatabasePathPrecedence(t *testing.T) {
	cfg := &Config{Database: "/from/file.db"}

	t.Setenv(EnvDBPath, "/from/env.db")
	if got := cfg.DatabasePath(); got != "/from/env.db" {
		t.Errorf("env override should win, got %q", got)
	}

	t.Setenv(EnvDBPath, "")
	if got := cfg.DatabasePath(); got != "/from/file.db" {
		t.Errorf("settings value should win over default, got %q", got)
	}
}
