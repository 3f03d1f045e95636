package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetOrCreateSpread returns the unique spread for (year, month), inserting it
// on first access. A concurrent insert losing the unique-constraint race
// falls back to re-fetching the winner's row, so callers never observe a
// duplicate spread.
func (s *Store) GetOrCreateSpread(ctx context.Context, year, month int) (*Spread, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range", month)
	}

	spread, err := s.getSpread(ctx, year, month)
	if err != nil {
		return nil, err
	}
	if spread != nil {
		return spread, nil
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO spreads (year, month, created_at) VALUES (?, ?, ?)`,
		year,
		month,
		timestamp(time.Now()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return s.getSpread(ctx, year, month)
		}
		return nil, fmt.Errorf("insert spread: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.getSpreadByID(ctx, id)
}

func (s *Store) getSpread(ctx context.Context, year, month int) (*Spread, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, year, month, created_at FROM spreads WHERE year = ? AND month = ?`,
		year,
		month,
	)
	spread, err := scanSpread(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get spread: %w", err)
	}
	return spread, nil
}

func (s *Store) getSpreadByID(ctx context.Context, id int64) (*Spread, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, year, month, created_at FROM spreads WHERE id = ?`, id)
	spread, err := scanSpread(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get spread by id: %w", err)
	}
	return spread, nil
}

func scanSpread(scanner interface{ Scan(dest ...any) error }) (*Spread, error) {
	var (
		id         int64
		year       int
		month      int
		createdRaw string
	)
	if err := scanner.Scan(&id, &year, &month, &createdRaw); err != nil {
		return nil, err
	}
	spread := &Spread{ID: id, Year: year, Month: month}
	if created, err := parseTimeString(createdRaw); err == nil {
		spread.CreatedAt = created
	}
	return spread, nil
}
