package summary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"inkwell/internal/journal"
	"inkwell/internal/storage"
)

// busyEntryThreshold marks a day as visually crowded in the calendar grid.
const busyEntryThreshold = 3

// AttachedImage is an image rendered with an attachment decoration.
type AttachedImage struct {
	URL   string `json:"url"`
	Style string `json:"style"`
}

// SmudgeInfo mirrors the persisted smudge row for calendar rendering.
type SmudgeInfo struct {
	Preset   string  `json:"preset"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
}

// DaySummary is the aggregated projection of one calendar date. Only days
// with at least one entry are represented; slices are never nil.
type DaySummary struct {
	Date               string          `json:"date"`
	DayID              int64           `json:"dayId"`
	EntryCount         int             `json:"entryCount"`
	FirstEntryTitle    *string         `json:"firstEntryTitle"`
	FirstEntryContent  *string         `json:"firstEntryContent"`
	FirstImageURL      *string         `json:"firstImageUrl"`
	SummaryQuote       *string         `json:"summaryQuote"`
	ImageURLs          []string        `json:"imageUrls"`
	PaperclipImageURLs []string        `json:"paperclipImageUrls"`
	AttachedImages     []AttachedImage `json:"attachedImages"`
	IsBusy             bool            `json:"isBusy"`
	Smudge             *SmudgeInfo     `json:"smudge"`
}

// MonthReader provides the per-day rows the builder aggregates.
type MonthReader interface {
	DaysInMonth(ctx context.Context, year, month int) ([]*journal.PlannerDay, error)
	EntriesForDay(ctx context.Context, dayID int64) ([]*journal.Entry, error)
	MediaForEntry(ctx context.Context, entryID int64) ([]*journal.Media, error)
	GetSmudge(ctx context.Context, date string) (*journal.Smudge, error)
}

// Builder produces month summaries from the journal store.
type Builder struct {
	store    MonthReader
	resolver storage.Resolver
	logger   *slog.Logger
}

// NewBuilder constructs a Builder. A nil resolver falls back to passthrough
// resolution and a nil logger discards log output.
func NewBuilder(store MonthReader, resolver storage.Resolver, logger *slog.Logger) *Builder {
	if resolver == nil {
		resolver, _ = storage.NewResolver(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Builder{store: store, resolver: resolver, logger: logger}
}

// BuildMonth aggregates every day of (year, month) that has at least one
// entry, in ascending date order. Media resolution failures skip the
// affected image and never abort the month.
func (b *Builder) BuildMonth(ctx context.Context, year, month int) ([]DaySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range", month)
	}

	days, err := b.store.DaysInMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("load days for %04d-%02d: %w", year, month, err)
	}

	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		summary, err := b.buildDay(ctx, day)
		if err != nil {
			return nil, err
		}
		if summary == nil {
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (b *Builder) buildDay(ctx context.Context, day *journal.PlannerDay) (*DaySummary, error) {
	entries, err := b.store.EntriesForDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("load entries for %s: %w", day.Date, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	summary := &DaySummary{
		Date:               day.Date,
		DayID:              day.ID,
		EntryCount:         len(entries),
		ImageURLs:          []string{},
		PaperclipImageURLs: []string{},
		AttachedImages:     []AttachedImage{},
		IsBusy:             len(entries) >= busyEntryThreshold,
	}

	representative := entries[0]
	summary.FirstEntryTitle = optionalString(representative.Title)
	summary.FirstEntryContent = optionalString(representative.Content)
	summary.SummaryQuote = optionalString(representative.SummaryQuote)

	for _, entry := range entries {
		media, err := b.store.MediaForEntry(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("load media for entry %d: %w", entry.ID, err)
		}
		for _, item := range media {
			b.collectMedia(ctx, summary, item)
		}
	}

	smudge, err := b.store.GetSmudge(ctx, day.Date)
	if err != nil {
		return nil, fmt.Errorf("load smudge for %s: %w", day.Date, err)
	}
	if smudge != nil {
		summary.Smudge = &SmudgeInfo{
			Preset:   smudge.Preset,
			X:        smudge.X,
			Y:        smudge.Y,
			Rotation: smudge.Rotation,
			Opacity:  smudge.Opacity,
		}
	}
	return summary, nil
}

// collectMedia resolves one media item into the summary's image lists. A
// failed resolution drops that item and leaves the rest of the day intact.
func (b *Builder) collectMedia(ctx context.Context, summary *DaySummary, item *journal.Media) {
	if item.Kind != journal.MediaImage || item.URL == "" {
		return
	}
	resolved, err := b.resolver.Resolve(ctx, item.URL)
	if err != nil {
		b.logger.Warn("media resolution failed",
			"media_id", item.ID,
			"entry_id", item.EntryID,
			"error", err)
		return
	}

	summary.ImageURLs = append(summary.ImageURLs, resolved)
	if summary.FirstImageURL == nil {
		summary.FirstImageURL = &resolved
	}
	if style := item.ResolvedAttachmentStyle(); style != "" {
		summary.PaperclipImageURLs = append(summary.PaperclipImageURLs, resolved)
		summary.AttachedImages = append(summary.AttachedImages, AttachedImage{URL: resolved, Style: style})
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
