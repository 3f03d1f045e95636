package daemon_test

import (
	"context"
	"testing"

	"inkwell/internal/daemon"
	"inkwell/internal/logging"
	"inkwell/internal/testsupport"
)

func TestDaemonStartStop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, store, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(d.Stop)

	if d.APIAddr() == "" {
		t.Fatal("expected bound api address")
	}

	status := d.Status(ctx)
	if !status.Running || status.PID == 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.DatabasePath != cfg.DatabasePath() {
		t.Fatalf("unexpected database path: %q", status.DatabasePath)
	}

	d.Stop()
	if d.Status(ctx).Running {
		t.Fatal("expected daemon stopped")
	}
}

func TestDaemonSingleInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	first, err := daemon.New(cfg, store, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(first.Stop)

	secondStore := testsupport.MustOpenStore(t, cfg)
	second, err := daemon.New(cfg, secondStore, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := second.Start(context.Background()); err == nil {
		second.Stop()
		t.Fatal("expected second instance to fail on the lock")
	}
}
