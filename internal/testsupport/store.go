package testsupport

import (
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/journal"
)

// MustOpenStore opens a planner store for the provided config and registers
// cleanup on test completion.
func MustOpenStore(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
