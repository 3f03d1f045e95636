package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// GetDayEntry returns the single day entry for a date, nil when absent.
func (s *Store) GetDayEntry(ctx context.Context, date string) (*DayEntry, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `SELECT `+dayEntryColumns+` FROM day_entries WHERE date = ?`, normalized)
	entry, err := scanDayEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day entry: %w", err)
	}
	return entry, nil
}

// UpsertDayEntry writes the single row for a date: update when present,
// insert otherwise. Strings are trimmed with empty-after-trim stored as
// NULL; photos and tags default to empty collections. Repeating an
// identical call is a no-op beyond the updated timestamp.
func (s *Store) UpsertDayEntry(ctx context.Context, date string, input DayEntryInput) (*DayEntry, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	title := nullableString(strings.TrimSpace(input.Title))
	content := nullableString(strings.TrimSpace(input.Content))
	photos := encodeStringList(input.Photos)
	tags := encodeStringList(input.Tags)
	now := timestamp(time.Now())

	existing, err := s.GetDayEntry(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		_, err = s.db.ExecContext(
			ctx,
			`UPDATE day_entries SET title = ?, content = ?, photos_json = ?, tags_json = ?, updated_at = ? WHERE date = ?`,
			title,
			content,
			photos,
			tags,
			now,
			normalized,
		)
		if err != nil {
			return nil, fmt.Errorf("update day entry: %w", err)
		}
		return s.GetDayEntry(ctx, normalized)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO day_entries (date, title, content, photos_json, tags_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		normalized,
		title,
		content,
		photos,
		tags,
		now,
		now,
	)
	if err != nil {
		// A concurrent insert for the same date loses the unique race;
		// retry as an update.
		if isUniqueViolation(err) {
			return s.UpsertDayEntry(ctx, normalized, input)
		}
		return nil, fmt.Errorf("insert day entry: %w", err)
	}
	return s.GetDayEntry(ctx, normalized)
}

const dayEntryColumns = "id, date, title, content, photos_json, tags_json, created_at, updated_at"

func scanDayEntry(scanner interface{ Scan(dest ...any) error }) (*DayEntry, error) {
	var (
		id         int64
		date       string
		title      sql.NullString
		content    sql.NullString
		photosRaw  sql.NullString
		tagsRaw    sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&id, &date, &title, &content, &photosRaw, &tagsRaw, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	entry := &DayEntry{
		ID:      id,
		Date:    date,
		Title:   title.String,
		Content: content.String,
		Photos:  decodeStringList(photosRaw.String),
		Tags:    decodeStringList(tagsRaw.String),
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		entry.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		entry.UpdatedAt = updated
	}
	return entry, nil
}
