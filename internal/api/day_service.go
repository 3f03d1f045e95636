package api

import (
	"context"

	"inkwell/internal/journal"
	"inkwell/internal/services"
)

// DayStore abstracts the per-day persistence the API needs.
type DayStore interface {
	EnsureDay(ctx context.Context, date string) (*journal.PlannerDay, error)
	CreateEntry(ctx context.Context, dayID int64, input journal.EntryInput) (*journal.Entry, error)
	GetEntry(ctx context.Context, id int64) (*journal.Entry, error)
	UpdateEntry(ctx context.Context, id int64, patch journal.EntryPatch) error
	DeleteEntry(ctx context.Context, id int64) (bool, error)
	AddMedia(ctx context.Context, entryID int64, input journal.MediaInput) (*journal.Media, error)
	MediaForEntry(ctx context.Context, entryID int64) ([]*journal.Media, error)
	GetDayEntry(ctx context.Context, date string) (*journal.DayEntry, error)
	UpsertDayEntry(ctx context.Context, date string, input journal.DayEntryInput) (*journal.DayEntry, error)
	GetSmudge(ctx context.Context, date string) (*journal.Smudge, error)
	SetSmudge(ctx context.Context, date string, input journal.SmudgeInput) (*journal.Smudge, error)
	ClearSmudge(ctx context.Context, date string) (bool, error)
}

// DayService exposes per-day journal operations returning API DTOs.
type DayService struct {
	store DayStore
}

// NewDayService constructs a DayService around the provided store.
func NewDayService(store DayStore) *DayService {
	if store == nil {
		return nil
	}
	return &DayService{store: store}
}

// Day fetches the date's day entry. A missing row yields (nil, nil).
func (s *DayService) Day(ctx context.Context, date string) (*DayEntry, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	entry, err := s.store.GetDayEntry(ctx, date)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "day", "get", "", err)
	}
	if entry == nil {
		return nil, nil
	}
	dto := FromDayEntry(entry)
	return &dto, nil
}

// SaveDay upserts the date's single day entry.
func (s *DayService) SaveDay(ctx context.Context, date string, req DayEntryRequest) (*DayEntry, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	entry, err := s.store.UpsertDayEntry(ctx, date, journal.DayEntryInput{
		Title:   req.Title,
		Content: req.Content,
		Photos:  req.Photos,
		Tags:    req.Tags,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "day", "save", "", err)
	}
	dto := FromDayEntry(entry)
	return &dto, nil
}

// CreateEntry appends a legacy entry to the date, creating the day row on
// first use.
func (s *DayService) CreateEntry(ctx context.Context, date string, req EntryRequest) (*Entry, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	day, err := s.store.EnsureDay(ctx, date)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "entry", "ensure day", "", err)
	}
	entry, err := s.store.CreateEntry(ctx, day.ID, journal.EntryInput{
		Title:            req.Title,
		Content:          req.Content,
		Mood:             req.Mood,
		SummaryQuote:     req.SummaryQuote,
		Tags:             req.Tags,
		StickerSelection: req.Stickers,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "entry", "create", "", err)
	}
	dto := FromEntry(entry)
	return &dto, nil
}

// PatchEntry applies a partial update and returns the refreshed entry.
func (s *DayService) PatchEntry(ctx context.Context, id int64, req EntryPatchRequest) (*Entry, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	existing, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "entry", "patch", "", err)
	}
	if existing == nil {
		return nil, services.Wrap(services.ErrNotFound, "entry", "patch", "no such entry", nil)
	}
	patch := journal.EntryPatch{
		Title:            req.Title,
		Content:          req.Content,
		Mood:             req.Mood,
		SummaryQuote:     req.SummaryQuote,
		Tags:             req.Tags,
		StickerSelection: req.Stickers,
	}
	if err := s.store.UpdateEntry(ctx, id, patch); err != nil {
		return nil, services.Wrap(services.ErrTransient, "entry", "patch", "", err)
	}
	updated, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "entry", "patch", "", err)
	}
	dto := FromEntry(updated)
	return &dto, nil
}

// DeleteEntry removes one legacy entry and its media via cascade.
func (s *DayService) DeleteEntry(ctx context.Context, id int64) error {
	if s == nil || s.store == nil {
		return nil
	}
	deleted, err := s.store.DeleteEntry(ctx, id)
	if err != nil {
		return services.Wrap(services.ErrTransient, "entry", "delete", "", err)
	}
	if !deleted {
		return services.Wrap(services.ErrNotFound, "entry", "delete", "no such entry", nil)
	}
	return nil
}

// AttachMedia adds an image or video to an existing entry.
func (s *DayService) AttachMedia(ctx context.Context, entryID int64, req MediaRequest) (*Media, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	entry, err := s.store.GetEntry(ctx, entryID)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "media", "attach", "", err)
	}
	if entry == nil {
		return nil, services.Wrap(services.ErrNotFound, "media", "attach", "no such entry", nil)
	}
	media, err := s.store.AddMedia(ctx, entryID, journal.MediaInput{
		Kind:            journal.MediaKind(req.Kind),
		URL:             req.URL,
		ThumbURL:        req.ThumbURL,
		AttachmentType:  req.AttachmentType,
		AttachmentStyle: req.AttachmentStyle,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "media", "attach", "", err)
	}
	dto := FromMedia(media)
	return &dto, nil
}

// MediaForEntry lists an entry's media in creation order.
func (s *DayService) MediaForEntry(ctx context.Context, entryID int64) ([]Media, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	media, err := s.store.MediaForEntry(ctx, entryID)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "media", "list", "", err)
	}
	out := make([]Media, 0, len(media))
	for _, item := range media {
		out = append(out, FromMedia(item))
	}
	return out, nil
}

// Smudge fetches the date's smudge. A missing row yields (nil, nil).
func (s *DayService) Smudge(ctx context.Context, date string) (*Smudge, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	smudge, err := s.store.GetSmudge(ctx, date)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "smudge", "get", "", err)
	}
	if smudge == nil {
		return nil, nil
	}
	dto := FromSmudge(smudge)
	return &dto, nil
}

// SetSmudge upserts the date's smudge.
func (s *DayService) SetSmudge(ctx context.Context, date string, req Smudge) (*Smudge, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	smudge, err := s.store.SetSmudge(ctx, date, journal.SmudgeInput{
		Preset:   req.Preset,
		X:        req.X,
		Y:        req.Y,
		Rotation: req.Rotation,
		Opacity:  req.Opacity,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "smudge", "set", "", err)
	}
	dto := FromSmudge(smudge)
	return &dto, nil
}

// ClearSmudge removes the date's smudge. Clearing an absent smudge is a
// no-op, not an error.
func (s *DayService) ClearSmudge(ctx context.Context, date string) error {
	if s == nil || s.store == nil {
		return nil
	}
	if _, err := s.store.ClearSmudge(ctx, date); err != nil {
		return services.Wrap(services.ErrValidation, "smudge", "clear", "", err)
	}
	return nil
}
