package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"inkwell/internal/api"
	"inkwell/internal/journal"
)

func TestToElementInputIDMapping(t *testing.T) {
	cases := []struct {
		name       string
		id         string
		expectedID int64
		expectErr  bool
	}{
		{"empty means insert", "", 0, false},
		{"zero means insert", "0", 0, false},
		{"numeric id overwrites", "42", 42, false},
		{"placeholder uuid inserts", "3b241101-e2bb-4255-8caf-4136c566a962", 0, false},
		{"garbage rejected", "not-an-id", 0, true},
		{"negative rejected", "-7", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input, err := api.ToElementInput(api.Element{ID: tc.id, PageSide: "left", Type: "photo"})
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected error for id %q", tc.id)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToElementInput(%q) failed: %v", tc.id, err)
			}
			if input.ID != tc.expectedID {
				t.Fatalf("input.ID = %d, want %d", input.ID, tc.expectedID)
			}
		})
	}
}

func TestToElementInputsReportsPosition(t *testing.T) {
	_, err := api.ToElementInputs([]api.Element{
		{ID: "1", PageSide: "left", Type: "photo"},
		{ID: "bogus", PageSide: "left", Type: "photo"},
	})
	if err == nil {
		t.Fatal("expected error for second element")
	}
}

func TestFromElementMetaPassthrough(t *testing.T) {
	element := &journal.Element{
		ID:       7,
		PageSide: journal.PageLeft,
		Kind:     journal.KindStickyNote,
		MetaJSON: `{"color":"#ffd700","font":"caveat"}`,
	}
	dto := api.FromElement(element)
	if dto.ID != "7" {
		t.Fatalf("expected string id, got %q", dto.ID)
	}
	if string(dto.Meta) != element.MetaJSON {
		t.Fatalf("meta changed across conversion: %s", dto.Meta)
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !json.Valid(payload) {
		t.Fatal("expected valid payload")
	}
}

func TestFromEntryNeverNilSlices(t *testing.T) {
	dto := api.FromEntry(&journal.Entry{ID: 1, DayID: 2})
	if dto.Tags == nil || dto.Stickers == nil {
		t.Fatalf("expected empty slices, got %+v", dto)
	}
}

func TestFromMediaResolvesLegacyStyle(t *testing.T) {
	dto := api.FromMedia(&journal.Media{
		ID:             3,
		Kind:           journal.MediaImage,
		URL:            "photos/a.jpg",
		AttachmentType: "staple",
	})
	if dto.AttachmentStyle != "staple" {
		t.Fatalf("expected derived style, got %q", dto.AttachmentStyle)
	}
}

func TestFormatTime(t *testing.T) {
	if api.FormatTime(time.Time{}) != "" {
		t.Fatal("expected empty string for zero time")
	}
	ts := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := api.FormatTime(ts); got != "2026-03-01T12:30:00.000Z" {
		t.Fatalf("unexpected format: %q", got)
	}
}
