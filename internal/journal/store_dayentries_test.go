package journal_test

import (
	"context"
	"testing"

	"inkwell/internal/journal"
	"inkwell/internal/testsupport"
)

func TestGetDayEntryAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	entry, err := store.GetDayEntry(context.Background(), "2026-06-01")
	if err != nil {
		t.Fatalf("GetDayEntry failed: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for absent date, got %+v", entry)
	}
}

func TestUpsertDayEntryInsertsThenUpdates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	created, err := store.UpsertDayEntry(ctx, "2026-06-01", journal.DayEntryInput{
		Title:   "  beach day  ",
		Content: "sand everywhere",
		Photos:  []string{"photos/beach-1.jpg", "photos/beach-2.jpg"},
		Tags:    []string{"summer"},
	})
	if err != nil {
		t.Fatalf("UpsertDayEntry failed: %v", err)
	}
	if created.Title != "beach day" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if len(created.Photos) != 2 || len(created.Tags) != 1 {
		t.Fatalf("unexpected collections: %+v", created)
	}

	updated, err := store.UpsertDayEntry(ctx, "2026-06-01", journal.DayEntryInput{
		Title:   "beach day",
		Content: "less sand after cleanup",
	})
	if err != nil {
		t.Fatalf("second UpsertDayEntry failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected single row per date, got ids %d and %d", created.ID, updated.ID)
	}
	if updated.Content != "less sand after cleanup" {
		t.Fatalf("expected content updated, got %q", updated.Content)
	}
	if updated.Photos == nil || len(updated.Photos) != 0 {
		t.Fatalf("expected empty non-nil photos, got %#v", updated.Photos)
	}
	if updated.Tags == nil || len(updated.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", updated.Tags)
	}
}

func TestUpsertDayEntryBlankBecomesEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	entry, err := store.UpsertDayEntry(context.Background(), "2026-06-02", journal.DayEntryInput{
		Title:   "   ",
		Content: "\t\n",
	})
	if err != nil {
		t.Fatalf("UpsertDayEntry failed: %v", err)
	}
	if entry.Title != "" || entry.Content != "" {
		t.Fatalf("expected blank fields dropped, got %+v", entry)
	}
}

func TestUpsertDayEntryIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	input := journal.DayEntryInput{
		Title:  "repeat",
		Photos: []string{"photos/one.jpg"},
		Tags:   []string{"a", "b"},
	}
	first, err := store.UpsertDayEntry(ctx, "2026-06-03", input)
	if err != nil {
		t.Fatalf("UpsertDayEntry failed: %v", err)
	}
	second, err := store.UpsertDayEntry(ctx, "2026-06-03", input)
	if err != nil {
		t.Fatalf("repeat UpsertDayEntry failed: %v", err)
	}
	if first.ID != second.ID || second.Title != "repeat" || len(second.Photos) != 1 || len(second.Tags) != 2 {
		t.Fatalf("expected stable row under repeated upsert: %+v vs %+v", first, second)
	}
}
