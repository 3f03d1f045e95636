package testsupport

import (
	"path/filepath"
	"testing"

	"inkwell/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAPIToken sets the admin API bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.APIToken = token
	}
}

// WithStorage enables signed-URL resolution against the provided endpoint.
func WithStorage(baseURL, serviceKey, bucket string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Storage.Enabled = true
		cfg.Storage.BaseURL = baseURL
		cfg.Storage.ServiceKey = serviceKey
		cfg.Storage.Bucket = bucket
	}
}
