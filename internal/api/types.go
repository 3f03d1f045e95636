package api

import "encoding/json"

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Spread describes a month container in a transport-friendly format.
type Spread struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Element describes one positioned spread object. ID is a string: persisted
// rows carry their numeric id, while client-side placeholders (UUIDs or an
// empty string) mark elements that should be inserted.
type Element struct {
	ID        string          `json:"id"`
	PageSide  string          `json:"pageSide"`
	Type      string          `json:"type"`
	Src       string          `json:"src,omitempty"`
	Text      string          `json:"text,omitempty"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	W         float64         `json:"w"`
	H         float64         `json:"h"`
	Rotation  float64         `json:"rotation"`
	ZIndex    int             `json:"zIndex"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// SpreadResponse pairs a spread with its complete element set in paint order.
type SpreadResponse struct {
	Spread   Spread    `json:"spread"`
	Elements []Element `json:"elements"`
}

// SaveElementsRequest carries the full desired element set for one spread.
type SaveElementsRequest struct {
	Elements []Element `json:"elements"`
}

// Entry describes a legacy free-text journal note.
type Entry struct {
	ID           int64    `json:"id"`
	DayID        int64    `json:"dayId"`
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content,omitempty"`
	Mood         string   `json:"mood,omitempty"`
	SummaryQuote string   `json:"summaryQuote,omitempty"`
	Tags         []string `json:"tags"`
	Stickers     []string `json:"stickers"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// EntryRequest carries the fields for a new entry.
type EntryRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Mood         string   `json:"mood"`
	SummaryQuote string   `json:"summaryQuote"`
	Tags         []string `json:"tags"`
	Stickers     []string `json:"stickers"`
}

// EntryPatchRequest carries a partial entry update. Absent fields are left
// untouched.
type EntryPatchRequest struct {
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	Mood         *string   `json:"mood"`
	SummaryQuote *string   `json:"summaryQuote"`
	Tags         *[]string `json:"tags"`
	Stickers     *[]string `json:"stickers"`
}

// Media describes an attachment on a legacy entry.
type Media struct {
	ID              int64  `json:"id"`
	EntryID         int64  `json:"entryId"`
	Kind            string `json:"kind"`
	URL             string `json:"url"`
	ThumbURL        string `json:"thumbUrl,omitempty"`
	AttachmentStyle string `json:"attachmentStyle,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// MediaRequest carries the fields for a new media attachment.
type MediaRequest struct {
	Kind            string `json:"kind"`
	URL             string `json:"url"`
	ThumbURL        string `json:"thumbUrl"`
	AttachmentType  string `json:"attachmentType"`
	AttachmentStyle string `json:"attachmentStyle"`
}

// Smudge describes the decorative ink stain for one date.
type Smudge struct {
	Preset   string  `json:"preset"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
}

// DayEntry describes the single-row-per-date journal model.
type DayEntry struct {
	Date      string   `json:"date"`
	Title     string   `json:"title,omitempty"`
	Content   string   `json:"content,omitempty"`
	Photos    []string `json:"photos"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// DayEntryRequest carries the fields for a day-entry upsert.
type DayEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Photos  []string `json:"photos"`
	Tags    []string `json:"tags"`
}

// DecorItem describes one legacy decor/canvas item.
type DecorItem struct {
	ID       int64   `json:"id"`
	Page     string  `json:"page"`
	Kind     string  `json:"kind"`
	ItemKey  string  `json:"itemKey"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Z        int     `json:"z"`
}

// DecorItemRequest carries one decor upsert.
type DecorItemRequest struct {
	Kind     string  `json:"kind"`
	ItemKey  string  `json:"itemKey"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Z        int     `json:"z"`
}

// DecorListResponse wraps a page's decor items in stacking order.
type DecorListResponse struct {
	Items []DecorItem `json:"items"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	DatabasePath string `json:"databasePath"`
	LockFilePath string `json:"lockFilePath"`
}
