package journal

import (
	"encoding/json"
	"strings"
	"time"
)

// PageSide identifies which page of a spread an element sits on.
type PageSide string

const (
	PageLeft  PageSide = "left"
	PageRight PageSide = "right"
)

// ParsePageSide converts a string into a known PageSide.
func ParsePageSide(value string) (PageSide, bool) {
	side := PageSide(strings.ToLower(strings.TrimSpace(value)))
	switch side {
	case PageLeft, PageRight:
		return side, true
	}
	return "", false
}

// ElementKind enumerates the decorative/content object types a spread page
// can hold.
type ElementKind string

const (
	KindPhoto       ElementKind = "photo"
	KindStickyNote  ElementKind = "sticky_note"
	KindWashiTape   ElementKind = "washi_tape"
	KindPaperclip   ElementKind = "paperclip"
	KindSticker     ElementKind = "sticker"
	KindTextBlock   ElementKind = "text_block"
	KindDoodle      ElementKind = "doodle"
	KindCoffeeStain ElementKind = "coffee_stain"
)

var elementKinds = map[ElementKind]struct{}{
	KindPhoto:       {},
	KindStickyNote:  {},
	KindWashiTape:   {},
	KindPaperclip:   {},
	KindSticker:     {},
	KindTextBlock:   {},
	KindDoodle:      {},
	KindCoffeeStain: {},
}

// ParseElementKind converts a string into a known ElementKind.
func ParseElementKind(value string) (ElementKind, bool) {
	kind := ElementKind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := elementKinds[kind]; ok {
		return kind, true
	}
	return "", false
}

// MediaKind distinguishes image and video attachments.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind converts a string into a known MediaKind.
func ParseMediaKind(value string) (MediaKind, bool) {
	kind := MediaKind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case MediaImage, MediaVideo:
		return kind, true
	}
	return "", false
}

// Legacy attachment types and their current style equivalents.
const (
	AttachmentTypePaperclip = "paperclip"
	AttachmentTypePaste     = "paste"
	AttachmentTypeStaple    = "staple"

	StyleStandardClip = "standard_clip"
	StyleColorfulClip = "colorful_clip"
	StyleBinderClip   = "binder_clip"
	StyleStaple       = "staple"
)

// DeriveAttachmentStyle maps a legacy attachment type to the current style
// vocabulary. An unknown or empty type yields "" (no attachment decoration).
func DeriveAttachmentStyle(attachmentType string) string {
	switch strings.ToLower(strings.TrimSpace(attachmentType)) {
	case AttachmentTypePaperclip:
		return StyleStandardClip
	case AttachmentTypeStaple:
		return StyleStaple
	case AttachmentTypePaste:
		return StyleColorfulClip
	}
	return ""
}

// Spread is the two-page layout container for one calendar month. Created
// lazily on first access and never deleted by this subsystem.
type Spread struct {
	ID        int64
	Year      int
	Month     int
	CreatedAt time.Time
}

// Element is one positioned object on a spread page. X, Y, W, and H are
// fractions of the page dimensions, always inside [0, 1]. MetaJSON carries
// type-specific styling as an opaque JSON object that round-trips bytewise.
type Element struct {
	ID        int64
	SpreadID  int64
	PageSide  PageSide
	Kind      ElementKind
	Src       string
	Text      string
	X         float64
	Y         float64
	W         float64
	H         float64
	Rotation  float64
	ZIndex    int
	MetaJSON  string
	CreatedAt time.Time
}

// ElementInput is the desired state of one element in a reconciling write.
// ID zero (or an id unknown to the spread, e.g. a client placeholder) marks
// an insert; a known persisted id marks a full-field overwrite.
type ElementInput struct {
	ID       int64
	PageSide PageSide
	Kind     ElementKind
	Src      string
	Text     string
	X        float64
	Y        float64
	W        float64
	H        float64
	Rotation float64
	ZIndex   int
	MetaJSON string
}

// PlannerDay is a thin date index row owning legacy-style entries.
type PlannerDay struct {
	ID        int64
	Date      string
	Year      int
	Month     int
	CreatedAt time.Time
}

// Entry is a free-text journal note owned by one PlannerDay.
type Entry struct {
	ID               int64
	DayID            int64
	Title            string
	Content          string
	Mood             string
	SummaryQuote     string
	Tags             []string
	StickerSelection string
	CreatedAt        time.Time
}

// Stickers decodes the entry's persisted sticker selection. A corrupt
// encoding yields nil rather than an error.
func (e *Entry) Stickers() []string {
	return DecodeStickerSelection(e.StickerSelection)
}

// DecodeStickerSelection decodes an encoded sticker identifier list,
// returning nil when the encoding is empty or corrupt.
func DecodeStickerSelection(encoded string) []string {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil
	}
	var stickers []string
	if err := json.Unmarshal([]byte(encoded), &stickers); err != nil {
		return nil
	}
	return stickers
}

// EncodeStickerSelection encodes a sticker identifier list for persistence.
// An empty selection encodes to "".
func EncodeStickerSelection(stickers []string) string {
	if len(stickers) == 0 {
		return ""
	}
	data, err := json.Marshal(stickers)
	if err != nil {
		return ""
	}
	return string(data)
}

// EntryInput carries the fields for a new entry.
type EntryInput struct {
	Title            string
	Content          string
	Mood             string
	SummaryQuote     string
	Tags             []string
	StickerSelection []string
}

// EntryPatch carries partial updates for an entry. Nil fields are left
// untouched.
type EntryPatch struct {
	Title            *string
	Content          *string
	Mood             *string
	SummaryQuote     *string
	Tags             *[]string
	StickerSelection *[]string
}

// Media is an image or video attached to one entry. An empty
// AttachmentStyle means the media renders with no attachment decoration.
type Media struct {
	ID              int64
	EntryID         int64
	Kind            MediaKind
	URL             string
	ThumbURL        string
	AttachmentType  string
	AttachmentStyle string
	CreatedAt       time.Time
}

// MediaInput carries the fields for a new media attachment. When
// AttachmentStyle is empty it is derived from AttachmentType on insert.
type MediaInput struct {
	Kind            MediaKind
	URL             string
	ThumbURL        string
	AttachmentType  string
	AttachmentStyle string
}

// ResolvedAttachmentStyle returns the media's attachment style, deriving it
// from the legacy attachment type for rows persisted before styles existed.
func (m *Media) ResolvedAttachmentStyle() string {
	if m.AttachmentStyle != "" {
		return m.AttachmentStyle
	}
	return DeriveAttachmentStyle(m.AttachmentType)
}

// Smudge is the at-most-one decorative ink stain for a calendar date.
type Smudge struct {
	ID       int64
	Date     string
	Preset   string
	X        float64
	Y        float64
	Rotation float64
	Opacity  float64
}

// SmudgeInput carries the fields for a smudge upsert.
type SmudgeInput struct {
	Preset   string
	X        float64
	Y        float64
	Rotation float64
	Opacity  float64
}

// DayEntry is the newer single-row-per-date journal model. Photos and Tags
// are never nil.
type DayEntry struct {
	ID        int64
	Date      string
	Title     string
	Content   string
	Photos    []string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayEntryInput carries the fields for a day-entry upsert.
type DayEntryInput struct {
	Title   string
	Content string
	Photos  []string
	Tags    []string
}

// DecorKey is the five-part natural key of a legacy decor item.
type DecorKey struct {
	Year    int
	Month   int
	Page    string
	Kind    string
	ItemKey string
}

// DecorItem is a simple positioned item from the legacy canvas/decor models.
type DecorItem struct {
	ID       int64
	Year     int
	Month    int
	Page     string
	Kind     string
	ItemKey  string
	X        float64
	Y        float64
	Rotation float64
	Z        int
}

// DecorInput carries the positional fields for a decor upsert.
type DecorInput struct {
	X        float64
	Y        float64
	Rotation float64
	Z        int
}
