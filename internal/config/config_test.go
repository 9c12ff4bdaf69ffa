package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.KeywordsFile != "keywords.csv" {
		t.Errorf("KeywordsFile = %q, want keywords.csv", cfg.KeywordsFile)
	}
	if cfg.Search.MaxResults != 50 {
		t.Errorf("Search.MaxResults = %d, want 50", cfg.Search.MaxResults)
	}
	if cfg.Search.NewsData.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Search.NewsData.Language)
	}
	if cfg.Search.NewsData.Category != "technology" {
		t.Errorf("Category = %q, want technology", cfg.Search.NewsData.Category)
	}
	if cfg.Rater.Provider != "fabric" {
		t.Errorf("Rater.Provider = %q, want fabric", cfg.Rater.Provider)
	}
	if cfg.Rater.Fabric.Pattern != "label_and_rate" {
		t.Errorf("Fabric.Pattern = %q, want label_and_rate", cfg.Rater.Fabric.Pattern)
	}
	if cfg.Rater.Fabric.Timeout != 15 {
		t.Errorf("Fabric.Timeout = %d, want 15", cfg.Rater.Fabric.Timeout)
	}
	if cfg.Output.ResultsFile != "grcdata.csv" || cfg.Output.URLsFile != "urls.csv" || cfg.Output.RatedFile != "grcdata_rated.csv" {
		t.Errorf("Output defaults = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "search:\n  newsdata:\n    api_key: from_yaml\n")
	t.Setenv("NEWSDATA_API_KEY", "from_env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Search.NewsData.APIKey != "from_env" {
		t.Errorf("APIKey = %q, want from_env", cfg.Search.NewsData.APIKey)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}
