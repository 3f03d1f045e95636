package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/geometry"
)

// ReplaceElements reconciles the persisted element set of a spread against
// the complete desired set supplied by the caller: persisted elements absent
// from the input are deleted, inputs carrying a known persisted id are
// overwritten in full, and the rest are inserted as new rows. Geometry is
// clamped and rotation coerced before every write, so the store never
// rejects a payload for out-of-range values.
//
// The steps run without a wrapping transaction: the first failing
// sub-operation aborts the pass and everything applied before it stays
// committed. Retrying with the same full payload is safe because every step
// is keyed by id.
func (s *Store) ReplaceElements(ctx context.Context, spreadID int64, inputs []ElementInput) ([]*Element, error) {
	existing, err := s.elementIDs(ctx, spreadID)
	if err != nil {
		return nil, err
	}

	keep := make(map[int64]struct{}, len(inputs))
	for _, input := range inputs {
		if input.ID > 0 {
			if _, ok := existing[input.ID]; ok {
				keep[input.ID] = struct{}{}
			}
		}
	}

	for id := range existing {
		if _, ok := keep[id]; ok {
			continue
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM elements WHERE id = ? AND spread_id = ?`, id, spreadID); err != nil {
			return nil, fmt.Errorf("delete element %d: %w", id, err)
		}
	}

	now := timestamp(time.Now())
	for i := range inputs {
		input := inputs[i]
		if err := normalizeElementInput(&input); err != nil {
			return nil, err
		}
		if _, ok := keep[input.ID]; ok {
			if err := s.updateElement(ctx, spreadID, input); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.insertElement(ctx, spreadID, input, now); err != nil {
			return nil, err
		}
	}

	return s.ListElements(ctx, spreadID)
}

// ListElements returns a spread's elements in authoritative paint order:
// z_index ascending, creation order breaking ties.
func (s *Store) ListElements(ctx context.Context, spreadID int64) ([]*Element, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+elementColumns+` FROM elements WHERE spread_id = ? ORDER BY z_index, id`,
		spreadID,
	)
	if err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}
	defer rows.Close()

	var elements []*Element
	for rows.Next() {
		element, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, rows.Err()
}

func (s *Store) elementIDs(ctx context.Context, spreadID int64) (map[int64]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM elements WHERE spread_id = ?`, spreadID)
	if err != nil {
		return nil, fmt.Errorf("query element ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (s *Store) updateElement(ctx context.Context, spreadID int64, input ElementInput) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE elements
         SET page_side = ?, kind = ?, src = ?, text = ?,
             x = ?, y = ?, w = ?, h = ?, rotation = ?, z_index = ?, meta_json = ?
         WHERE id = ? AND spread_id = ?`,
		input.PageSide,
		input.Kind,
		nullableString(input.Src),
		nullableString(input.Text),
		input.X,
		input.Y,
		input.W,
		input.H,
		input.Rotation,
		input.ZIndex,
		input.MetaJSON,
		input.ID,
		spreadID,
	)
	if err != nil {
		return fmt.Errorf("update element %d: %w", input.ID, err)
	}
	return nil
}

func (s *Store) insertElement(ctx context.Context, spreadID int64, input ElementInput, createdAt string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO elements (
            spread_id, page_side, kind, src, text,
            x, y, w, h, rotation, z_index, meta_json, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		spreadID,
		input.PageSide,
		input.Kind,
		nullableString(input.Src),
		nullableString(input.Text),
		input.X,
		input.Y,
		input.W,
		input.H,
		input.Rotation,
		input.ZIndex,
		input.MetaJSON,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert element: %w", err)
	}
	return nil
}

func normalizeElementInput(input *ElementInput) error {
	side, ok := ParsePageSide(string(input.PageSide))
	if !ok {
		return fmt.Errorf("element page side %q unknown", input.PageSide)
	}
	input.PageSide = side

	kind, ok := ParseElementKind(string(input.Kind))
	if !ok {
		return fmt.Errorf("element kind %q unknown", input.Kind)
	}
	input.Kind = kind

	geometry.ClampUnitBox(&input.X, &input.Y, &input.W, &input.H)
	input.Rotation = geometry.CoerceFinite(input.Rotation)

	if strings.TrimSpace(input.MetaJSON) == "" {
		input.MetaJSON = "{}"
	}
	return nil
}

const elementColumns = "id, spread_id, page_side, kind, src, text, x, y, w, h, rotation, z_index, meta_json, created_at"

func scanElement(scanner interface{ Scan(dest ...any) error }) (*Element, error) {
	var (
		id         int64
		spreadID   int64
		pageSide   string
		kind       string
		src        sql.NullString
		text       sql.NullString
		x, y, w, h float64
		rotation   float64
		zIndex     int
		metaJSON   string
		createdRaw string
	)
	if err := scanner.Scan(
		&id,
		&spreadID,
		&pageSide,
		&kind,
		&src,
		&text,
		&x, &y, &w, &h,
		&rotation,
		&zIndex,
		&metaJSON,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	element := &Element{
		ID:       id,
		SpreadID: spreadID,
		PageSide: PageSide(pageSide),
		Kind:     ElementKind(kind),
		Src:      src.String,
		Text:     text.String,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Rotation: rotation,
		ZIndex:   zIndex,
		MetaJSON: metaJSON,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		element.CreatedAt = created
	}
	return element, nil
}
