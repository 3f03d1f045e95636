package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/geometry"
)

// EnsureDay returns the planner day for a date, creating the index row on
// first access. Unique races resolve by re-fetching, mirroring spread
// creation.
func (s *Store) EnsureDay(ctx context.Context, date string) (*PlannerDay, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	day, err := s.getDay(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if day != nil {
		return day, nil
	}

	parsed, _ := time.Parse("2006-01-02", normalized)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO planner_days (date, year, month, created_at) VALUES (?, ?, ?, ?)`,
		normalized,
		parsed.Year(),
		int(parsed.Month()),
		timestamp(time.Now()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return s.getDay(ctx, normalized)
		}
		return nil, fmt.Errorf("insert planner day: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	day = &PlannerDay{ID: id, Date: normalized, Year: parsed.Year(), Month: int(parsed.Month()), CreatedAt: time.Now().UTC()}
	return day, nil
}

// DaysInMonth returns the planner day rows of a month in ascending date
// order. Dates without entries have no row and are simply absent.
func (s *Store) DaysInMonth(ctx context.Context, year, month int) ([]*PlannerDay, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, date, year, month, created_at FROM planner_days WHERE year = ? AND month = ? ORDER BY date`,
		year,
		month,
	)
	if err != nil {
		return nil, fmt.Errorf("query days in month: %w", err)
	}
	defer rows.Close()

	var days []*PlannerDay
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) getDay(ctx context.Context, date string) (*PlannerDay, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, date, year, month, created_at FROM planner_days WHERE date = ?`, date)
	day, err := scanDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get planner day: %w", err)
	}
	return day, nil
}

// CreateEntry appends a journal entry to a day.
func (s *Store) CreateEntry(ctx context.Context, dayID int64, input EntryInput) (*Entry, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO planner_entries (
            day_id, title, content, mood, summary_quote, tags_json, sticker_selection, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		dayID,
		nullableString(strings.TrimSpace(input.Title)),
		nullableString(strings.TrimSpace(input.Content)),
		nullableString(strings.TrimSpace(input.Mood)),
		nullableString(strings.TrimSpace(input.SummaryQuote)),
		encodeStringList(input.Tags),
		nullableString(EncodeStickerSelection(input.StickerSelection)),
		timestamp(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetEntry(ctx, id)
}

// GetEntry fetches an entry by identifier, returning nil when absent.
func (s *Store) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM planner_entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry applies a partial patch to an entry: only non-nil fields are
// touched. This is deliberately asymmetric with element reconciliation;
// entries are edited field by field through small forms.
func (s *Store) UpdateEntry(ctx context.Context, id int64, patch EntryPatch) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, nullableString(strings.TrimSpace(*patch.Title)))
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, nullableString(strings.TrimSpace(*patch.Content)))
	}
	if patch.Mood != nil {
		sets = append(sets, "mood = ?")
		args = append(args, nullableString(strings.TrimSpace(*patch.Mood)))
	}
	if patch.SummaryQuote != nil {
		sets = append(sets, "summary_quote = ?")
		args = append(args, nullableString(strings.TrimSpace(*patch.SummaryQuote)))
	}
	if patch.Tags != nil {
		sets = append(sets, "tags_json = ?")
		args = append(args, encodeStringList(*patch.Tags))
	}
	if patch.StickerSelection != nil {
		sets = append(sets, "sticker_selection = ?")
		args = append(args, nullableString(EncodeStickerSelection(*patch.StickerSelection)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := `UPDATE planner_entries SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update entry %d: %w", id, err)
	}
	return nil
}

// DeleteEntry removes one entry and, by cascade, its media.
func (s *Store) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM planner_entries WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// EntriesForDay returns a day's entries in creation order. The first entry
// is the day's representative for calendar previews.
func (s *Store) EntriesForDay(ctx context.Context, dayID int64) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM planner_entries WHERE day_id = ? ORDER BY id`, dayID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// AddMedia attaches media to an entry, deriving the attachment style from
// the legacy attachment type when the caller does not supply one.
func (s *Store) AddMedia(ctx context.Context, entryID int64, input MediaInput) (*Media, error) {
	kind, ok := ParseMediaKind(string(input.Kind))
	if !ok {
		return nil, fmt.Errorf("media kind %q unknown", input.Kind)
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, errors.New("media url required")
	}

	style := strings.TrimSpace(input.AttachmentStyle)
	if style == "" {
		style = DeriveAttachmentStyle(input.AttachmentType)
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO planner_media (
            entry_id, kind, url, thumb_url, attachment_type, attachment_style, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entryID,
		kind,
		url,
		nullableString(strings.TrimSpace(input.ThumbURL)),
		nullableString(strings.TrimSpace(input.AttachmentType)),
		nullableString(style),
		timestamp(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("insert media: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+mediaColumns+` FROM planner_media WHERE id = ?`, id)
	media, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	return media, nil
}

// MediaForEntry returns an entry's media in creation order.
func (s *Store) MediaForEntry(ctx context.Context, entryID int64) ([]*Media, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+mediaColumns+` FROM planner_media WHERE entry_id = ? ORDER BY id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}
	defer rows.Close()

	var media []*Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

// GetSmudge returns the decorative smudge for a date, nil when the date has
// none. Absence is the default state, never an error.
func (s *Store) GetSmudge(ctx context.Context, date string) (*Smudge, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, date, preset, x, y, rotation, opacity FROM day_smudges WHERE date = ?`,
		normalized,
	)
	smudge, err := scanSmudge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get smudge: %w", err)
	}
	return smudge, nil
}

// SetSmudge upserts the single smudge for a date.
func (s *Store) SetSmudge(ctx context.Context, date string, input SmudgeInput) (*Smudge, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	preset := strings.TrimSpace(input.Preset)
	if preset == "" {
		return nil, errors.New("smudge preset required")
	}

	x := geometry.ClampUnit(input.X)
	y := geometry.ClampUnit(input.Y)
	rotation := geometry.CoerceFinite(input.Rotation)
	opacity := geometry.ClampUnit(input.Opacity)

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO day_smudges (date, preset, x, y, rotation, opacity)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(date) DO UPDATE SET
             preset = excluded.preset, x = excluded.x, y = excluded.y,
             rotation = excluded.rotation, opacity = excluded.opacity`,
		normalized,
		preset,
		x,
		y,
		rotation,
		opacity,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert smudge: %w", err)
	}
	return s.GetSmudge(ctx, normalized)
}

// ClearSmudge removes the smudge for a date if one exists.
func (s *Store) ClearSmudge(ctx context.Context, date string) (bool, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM day_smudges WHERE date = ?`, normalized)
	if err != nil {
		return false, fmt.Errorf("delete smudge: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

const entryColumns = "id, day_id, title, content, mood, summary_quote, tags_json, sticker_selection, created_at"

const mediaColumns = "id, entry_id, kind, url, thumb_url, attachment_type, attachment_style, created_at"

func scanDay(scanner interface{ Scan(dest ...any) error }) (*PlannerDay, error) {
	var (
		id         int64
		date       string
		year       int
		month      int
		createdRaw string
	)
	if err := scanner.Scan(&id, &date, &year, &month, &createdRaw); err != nil {
		return nil, err
	}
	day := &PlannerDay{ID: id, Date: date, Year: year, Month: month}
	if created, err := parseTimeString(createdRaw); err == nil {
		day.CreatedAt = created
	}
	return day, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id         int64
		dayID      int64
		title      sql.NullString
		content    sql.NullString
		mood       sql.NullString
		quote      sql.NullString
		tagsRaw    sql.NullString
		stickers   sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(&id, &dayID, &title, &content, &mood, &quote, &tagsRaw, &stickers, &createdRaw); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:               id,
		DayID:            dayID,
		Title:            title.String,
		Content:          content.String,
		Mood:             mood.String,
		SummaryQuote:     quote.String,
		Tags:             decodeStringList(tagsRaw.String),
		StickerSelection: stickers.String,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return entry, nil
}

func scanMedia(scanner interface{ Scan(dest ...any) error }) (*Media, error) {
	var (
		id         int64
		entryID    int64
		kind       string
		url        string
		thumbURL   sql.NullString
		attachType sql.NullString
		style      sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(&id, &entryID, &kind, &url, &thumbURL, &attachType, &style, &createdRaw); err != nil {
		return nil, err
	}

	media := &Media{
		ID:              id,
		EntryID:         entryID,
		Kind:            MediaKind(kind),
		URL:             url,
		ThumbURL:        thumbURL.String,
		AttachmentType:  attachType.String,
		AttachmentStyle: style.String,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		media.CreatedAt = created
	}
	return media, nil
}

func scanSmudge(scanner interface{ Scan(dest ...any) error }) (*Smudge, error) {
	var smudge Smudge
	if err := scanner.Scan(&smudge.ID, &smudge.Date, &smudge.Preset, &smudge.X, &smudge.Y, &smudge.Rotation, &smudge.Opacity); err != nil {
		return nil, err
	}
	return &smudge, nil
}
