package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Paths.APIBind != "127.0.0.1:7870" {
		t.Fatalf("unexpected api bind: %q", cfg.Paths.APIBind)
	}
	if cfg.Storage.SignedURLTTL != 3600 {
		t.Fatalf("unexpected signed url ttl: %d", cfg.Storage.SignedURLTTL)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
api_bind = "  127.0.0.1:9999  "

[storage]
enabled = true
base_url = "https://storage.example.com/"
service_key = "secret"
bucket = "planner-media"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be loaded, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.APIBind != "127.0.0.1:9999" {
		t.Fatalf("api bind not trimmed: %q", cfg.Paths.APIBind)
	}
	if cfg.Storage.BaseURL != "https://storage.example.com" {
		t.Fatalf("base url not normalized: %q", cfg.Storage.BaseURL)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %+v", cfg.Logging)
	}
}

func TestLoadRejectsEnabledStorageWithoutKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[storage]
enabled = true
base_url = "https://storage.example.com"
bucket = "planner-media"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "storage.service_key") {
		t.Fatalf("expected service key error, got %v", err)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestSampleConfigMentionsEverySection(t *testing.T) {
	sample := config.SampleConfig()
	for _, section := range []string{"[paths]", "[storage]", "[logging]"} {
		if !strings.Contains(sample, section) {
			t.Fatalf("sample config missing %s", section)
		}
	}
}
