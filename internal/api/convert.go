package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/journal"
)

// FromSpread converts a spread record to its API representation.
func FromSpread(spread *journal.Spread) Spread {
	if spread == nil {
		return Spread{}
	}
	return Spread{
		ID:        spread.ID,
		Year:      spread.Year,
		Month:     spread.Month,
		CreatedAt: FormatTime(spread.CreatedAt),
	}
}

// FromElement converts an element record to its API representation.
func FromElement(element *journal.Element) Element {
	if element == nil {
		return Element{}
	}
	dto := Element{
		ID:        strconv.FormatInt(element.ID, 10),
		PageSide:  string(element.PageSide),
		Type:      string(element.Kind),
		Src:       element.Src,
		Text:      element.Text,
		X:         element.X,
		Y:         element.Y,
		W:         element.W,
		H:         element.H,
		Rotation:  element.Rotation,
		ZIndex:    element.ZIndex,
		CreatedAt: FormatTime(element.CreatedAt),
	}
	if raw := strings.TrimSpace(element.MetaJSON); raw != "" {
		dto.Meta = json.RawMessage(raw)
	}
	return dto
}

// FromElements converts a slice of element records into API DTOs. The result
// is never nil so the element set serializes as [] rather than null.
func FromElements(elements []*journal.Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, element := range elements {
		out = append(out, FromElement(element))
	}
	return out
}

// ToElementInput maps one API element to a store input. An empty id, "0", or
// a client placeholder UUID marks an insert; a numeric id marks an overwrite
// of that row. Anything else is rejected.
func ToElementInput(dto Element) (journal.ElementInput, error) {
	input := journal.ElementInput{
		PageSide: journal.PageSide(strings.TrimSpace(dto.PageSide)),
		Kind:     journal.ElementKind(strings.TrimSpace(dto.Type)),
		Src:      dto.Src,
		Text:     dto.Text,
		X:        dto.X,
		Y:        dto.Y,
		W:        dto.W,
		H:        dto.H,
		Rotation: dto.Rotation,
		ZIndex:   dto.ZIndex,
		MetaJSON: string(dto.Meta),
	}

	id := strings.TrimSpace(dto.ID)
	switch {
	case id == "" || id == "0":
		// insert
	case isNumericID(id):
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return journal.ElementInput{}, fmt.Errorf("element id %q out of range", id)
		}
		input.ID = parsed
	case uuid.Validate(id) == nil:
		// client placeholder, insert
	default:
		return journal.ElementInput{}, fmt.Errorf("element id %q is neither numeric nor a placeholder uuid", id)
	}
	return input, nil
}

// ToElementInputs maps a full API element set to store inputs.
func ToElementInputs(dtos []Element) ([]journal.ElementInput, error) {
	inputs := make([]journal.ElementInput, 0, len(dtos))
	for i, dto := range dtos {
		input, err := ToElementInput(dto)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func isNumericID(id string) bool {
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return id != ""
}

// FromEntry converts an entry record to its API representation. Tags and
// Stickers are never nil.
func FromEntry(entry *journal.Entry) Entry {
	if entry == nil {
		return Entry{}
	}
	dto := Entry{
		ID:           entry.ID,
		DayID:        entry.DayID,
		Title:        entry.Title,
		Content:      entry.Content,
		Mood:         entry.Mood,
		SummaryQuote: entry.SummaryQuote,
		Tags:         entry.Tags,
		Stickers:     entry.Stickers(),
		CreatedAt:    FormatTime(entry.CreatedAt),
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	if dto.Stickers == nil {
		dto.Stickers = []string{}
	}
	return dto
}

// FromMedia converts a media record to its API representation, resolving the
// attachment style for rows persisted before styles existed.
func FromMedia(media *journal.Media) Media {
	if media == nil {
		return Media{}
	}
	return Media{
		ID:              media.ID,
		EntryID:         media.EntryID,
		Kind:            string(media.Kind),
		URL:             media.URL,
		ThumbURL:        media.ThumbURL,
		AttachmentStyle: media.ResolvedAttachmentStyle(),
		CreatedAt:       FormatTime(media.CreatedAt),
	}
}

// FromSmudge converts a smudge record to its API representation.
func FromSmudge(smudge *journal.Smudge) Smudge {
	if smudge == nil {
		return Smudge{}
	}
	return Smudge{
		Preset:   smudge.Preset,
		X:        smudge.X,
		Y:        smudge.Y,
		Rotation: smudge.Rotation,
		Opacity:  smudge.Opacity,
	}
}

// FromDayEntry converts a day-entry record to its API representation.
func FromDayEntry(entry *journal.DayEntry) DayEntry {
	if entry == nil {
		return DayEntry{}
	}
	dto := DayEntry{
		Date:      entry.Date,
		Title:     entry.Title,
		Content:   entry.Content,
		Photos:    entry.Photos,
		Tags:      entry.Tags,
		CreatedAt: FormatTime(entry.CreatedAt),
		UpdatedAt: FormatTime(entry.UpdatedAt),
	}
	if dto.Photos == nil {
		dto.Photos = []string{}
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	return dto
}

// FromDecorItem converts a decor record to its API representation.
func FromDecorItem(item *journal.DecorItem) DecorItem {
	if item == nil {
		return DecorItem{}
	}
	return DecorItem{
		ID:       item.ID,
		Page:     item.Page,
		Kind:     item.Kind,
		ItemKey:  item.ItemKey,
		X:        item.X,
		Y:        item.Y,
		Rotation: item.Rotation,
		Z:        item.Z,
	}
}

// FromDecorItems converts a slice of decor records into API DTOs.
func FromDecorItems(items []*journal.DecorItem) []DecorItem {
	out := make([]DecorItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromDecorItem(item))
	}
	return out
}

// FormatTime converts a time to RFC3339 or returns empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
