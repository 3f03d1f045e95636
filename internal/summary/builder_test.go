package summary_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/journal"
	"inkwell/internal/summary"
	"inkwell/internal/testsupport"
)

type stubResolver struct {
	prefix  string
	failFor string
}

func (r *stubResolver) Resolve(_ context.Context, ref string) (string, error) {
	if r.failFor != "" && ref == r.failFor {
		return "", errors.New("signing unavailable")
	}
	if strings.Contains(ref, "://") {
		return ref, nil
	}
	return r.prefix + ref, nil
}

func mustCreateEntry(t *testing.T, store *journal.Store, dayID int64, input journal.EntryInput) *journal.Entry {
	t.Helper()
	entry, err := store.CreateEntry(context.Background(), dayID, input)
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	return entry
}

func TestBuildMonthBusyThreshold(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	quiet, err := store.EnsureDay(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	busy, err := store.EnsureDay(ctx, "2026-03-03")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		mustCreateEntry(t, store, quiet.ID, journal.EntryInput{Content: "quiet"})
	}
	for i := 0; i < 3; i++ {
		mustCreateEntry(t, store, busy.ID, journal.EntryInput{Content: "busy"})
	}

	builder := summary.NewBuilder(store, &stubResolver{}, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 3)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Date != "2026-03-02" || summaries[0].IsBusy {
		t.Fatalf("expected quiet day first and not busy: %+v", summaries[0])
	}
	if summaries[1].Date != "2026-03-03" || !summaries[1].IsBusy {
		t.Fatalf("expected three-entry day busy: %+v", summaries[1])
	}
	if summaries[0].EntryCount != 2 || summaries[1].EntryCount != 3 {
		t.Fatalf("unexpected entry counts: %d %d", summaries[0].EntryCount, summaries[1].EntryCount)
	}
}

func TestBuildMonthSkipsDaysWithoutEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.EnsureDay(ctx, "2026-04-10"); err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}

	builder := summary.NewBuilder(store, &stubResolver{}, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 4)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty month, got %d summaries", len(summaries))
	}
}

func TestBuildMonthFirstEntryRepresentative(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	day, err := store.EnsureDay(ctx, "2026-05-20")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	mustCreateEntry(t, store, day.ID, journal.EntryInput{
		Title:        "morning pages",
		Content:      "long ramble",
		SummaryQuote: "a good day",
	})
	mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "lunch note"})
	mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "evening recap"})

	builder := summary.NewBuilder(store, &stubResolver{}, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 5)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.FirstEntryTitle == nil || *got.FirstEntryTitle != "morning pages" {
		t.Fatalf("expected first entry title, got %+v", got.FirstEntryTitle)
	}
	if got.FirstEntryContent == nil || *got.FirstEntryContent != "long ramble" {
		t.Fatalf("expected first entry content, got %+v", got.FirstEntryContent)
	}
	if got.SummaryQuote == nil || *got.SummaryQuote != "a good day" {
		t.Fatalf("expected summary quote from first entry, got %+v", got.SummaryQuote)
	}
}

func TestBuildMonthMediaAggregation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	day, err := store.EnsureDay(ctx, "2026-06-01")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	first := mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "hike"})
	second := mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "dinner"})

	if _, err := store.AddMedia(ctx, first.ID, journal.MediaInput{
		Kind:           journal.MediaImage,
		URL:            "photos/trail.jpg",
		AttachmentType: "paperclip",
	}); err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}
	if _, err := store.AddMedia(ctx, first.ID, journal.MediaInput{
		Kind: journal.MediaVideo,
		URL:  "videos/summit.mp4",
	}); err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}
	if _, err := store.AddMedia(ctx, second.ID, journal.MediaInput{
		Kind: journal.MediaImage,
		URL:  "https://cdn.example.com/dessert.jpg",
	}); err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}

	builder := summary.NewBuilder(store, &stubResolver{prefix: "https://signed.example.com/"}, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 6)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]

	expectedImages := []string{
		"https://signed.example.com/photos/trail.jpg",
		"https://cdn.example.com/dessert.jpg",
	}
	if len(got.ImageURLs) != len(expectedImages) {
		t.Fatalf("expected %d images, got %v", len(expectedImages), got.ImageURLs)
	}
	for i := range expectedImages {
		if got.ImageURLs[i] != expectedImages[i] {
			t.Fatalf("image %d = %q, want %q", i, got.ImageURLs[i], expectedImages[i])
		}
	}
	if got.FirstImageURL == nil || *got.FirstImageURL != expectedImages[0] {
		t.Fatalf("unexpected first image: %+v", got.FirstImageURL)
	}
	if len(got.AttachedImages) != 1 || got.AttachedImages[0].Style != "standard_clip" {
		t.Fatalf("unexpected attached images: %+v", got.AttachedImages)
	}
	if len(got.PaperclipImageURLs) != 1 || got.PaperclipImageURLs[0] != expectedImages[0] {
		t.Fatalf("unexpected paperclip urls: %v", got.PaperclipImageURLs)
	}
}

func TestBuildMonthSkipsFailedResolution(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	day, err := store.EnsureDay(ctx, "2026-07-04")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	entry := mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "fireworks"})
	if _, err := store.AddMedia(ctx, entry.ID, journal.MediaInput{
		Kind: journal.MediaImage,
		URL:  "photos/broken.jpg",
	}); err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}
	if _, err := store.AddMedia(ctx, entry.ID, journal.MediaInput{
		Kind: journal.MediaImage,
		URL:  "photos/good.jpg",
	}); err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}

	resolver := &stubResolver{prefix: "https://signed.example.com/", failFor: "photos/broken.jpg"}
	builder := summary.NewBuilder(store, resolver, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 7)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected the day to survive, got %d summaries", len(summaries))
	}
	got := summaries[0]
	if len(got.ImageURLs) != 1 || got.ImageURLs[0] != "https://signed.example.com/photos/good.jpg" {
		t.Fatalf("expected only the resolvable image, got %v", got.ImageURLs)
	}
}

func TestBuildMonthAttachesSmudge(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	day, err := store.EnsureDay(ctx, "2026-08-15")
	if err != nil {
		t.Fatalf("EnsureDay failed: %v", err)
	}
	mustCreateEntry(t, store, day.ID, journal.EntryInput{Title: "tea spill"})
	if _, err := store.SetSmudge(ctx, "2026-08-15", journal.SmudgeInput{
		Preset:   "ring",
		X:        0.3,
		Y:        0.7,
		Rotation: 12,
		Opacity:  0.4,
	}); err != nil {
		t.Fatalf("SetSmudge failed: %v", err)
	}

	builder := summary.NewBuilder(store, &stubResolver{}, nil)
	summaries, err := builder.BuildMonth(ctx, 2026, 8)
	if err != nil {
		t.Fatalf("BuildMonth failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	smudge := summaries[0].Smudge
	if smudge == nil || smudge.Preset != "ring" || smudge.X != 0.3 || smudge.Opacity != 0.4 {
		t.Fatalf("unexpected smudge: %+v", smudge)
	}
}

func TestBuildMonthRejectsBadMonth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	builder := summary.NewBuilder(store, &stubResolver{}, nil)
	if _, err := builder.BuildMonth(context.Background(), 2026, 13); err == nil {
		t.Fatal("expected error for month 13")
	}
}
