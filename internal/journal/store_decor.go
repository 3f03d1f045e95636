package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/geometry"
)

// UpsertDecorItem writes a legacy decor/canvas item keyed by its five-part
// natural key: a repeat call with the same key updates in place rather than
// duplicating. Geometry follows the same clamping discipline as elements.
func (s *Store) UpsertDecorItem(ctx context.Context, key DecorKey, input DecorInput) (*DecorItem, error) {
	key.Page = strings.TrimSpace(key.Page)
	key.Kind = strings.TrimSpace(key.Kind)
	key.ItemKey = strings.TrimSpace(key.ItemKey)
	if key.Page == "" || key.Kind == "" || key.ItemKey == "" {
		return nil, errors.New("decor key requires page, kind, and item key")
	}
	if key.Month < 1 || key.Month > 12 {
		return nil, fmt.Errorf("month %d out of range", key.Month)
	}

	x := geometry.ClampUnit(input.X)
	y := geometry.ClampUnit(input.Y)
	rotation := geometry.CoerceFinite(input.Rotation)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO decor_items (year, month, page, kind, item_key, x, y, rotation, z)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(year, month, page, kind, item_key) DO UPDATE SET
             x = excluded.x, y = excluded.y, rotation = excluded.rotation, z = excluded.z`,
		key.Year,
		key.Month,
		key.Page,
		key.Kind,
		key.ItemKey,
		x,
		y,
		rotation,
		input.Z,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert decor item: %w", err)
	}

	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+decorColumns+` FROM decor_items
         WHERE year = ? AND month = ? AND page = ? AND kind = ? AND item_key = ?`,
		key.Year,
		key.Month,
		key.Page,
		key.Kind,
		key.ItemKey,
	)
	item, err := scanDecorItem(row)
	if err != nil {
		return nil, fmt.Errorf("get decor item: %w", err)
	}
	return item, nil
}

// ListDecorItems returns a page's decor items ordered by stacking value then
// creation order.
func (s *Store) ListDecorItems(ctx context.Context, year, month int, page string) ([]*DecorItem, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+decorColumns+` FROM decor_items WHERE year = ? AND month = ? AND page = ? ORDER BY z, id`,
		year,
		month,
		strings.TrimSpace(page),
	)
	if err != nil {
		return nil, fmt.Errorf("list decor items: %w", err)
	}
	defer rows.Close()

	var items []*DecorItem
	for rows.Next() {
		item, err := scanDecorItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const decorColumns = "id, year, month, page, kind, item_key, x, y, rotation, z"

func scanDecorItem(scanner interface{ Scan(dest ...any) error }) (*DecorItem, error) {
	var item DecorItem
	if err := scanner.Scan(
		&item.ID,
		&item.Year,
		&item.Month,
		&item.Page,
		&item.Kind,
		&item.ItemKey,
		&item.X,
		&item.Y,
		&item.Rotation,
		&item.Z,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
