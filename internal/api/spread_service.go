package api

import (
	"context"

	"inkwell/internal/journal"
	"inkwell/internal/services"
)

// SpreadStore abstracts the spread and element persistence the API needs.
type SpreadStore interface {
	GetOrCreateSpread(ctx context.Context, year, month int) (*journal.Spread, error)
	ListElements(ctx context.Context, spreadID int64) ([]*journal.Element, error)
	ReplaceElements(ctx context.Context, spreadID int64, inputs []journal.ElementInput) ([]*journal.Element, error)
}

// SpreadService exposes spread and element operations returning API DTOs.
type SpreadService struct {
	store SpreadStore
}

// NewSpreadService constructs a SpreadService around the provided store.
func NewSpreadService(store SpreadStore) *SpreadService {
	if store == nil {
		return nil
	}
	return &SpreadService{store: store}
}

// SpreadForMonth returns the month's spread with its elements, creating the
// spread on first access.
func (s *SpreadService) SpreadForMonth(ctx context.Context, year, month int) (*SpreadResponse, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	spread, err := s.store.GetOrCreateSpread(ctx, year, month)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "spread", "get or create", "", err)
	}
	elements, err := s.store.ListElements(ctx, spread.ID)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "spread", "list elements", "", err)
	}
	return &SpreadResponse{Spread: FromSpread(spread), Elements: FromElements(elements)}, nil
}

// SaveElements reconciles the month's full element set against the supplied
// desired state and returns the persisted set.
func (s *SpreadService) SaveElements(ctx context.Context, year, month int, dtos []Element) (*SpreadResponse, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	spread, err := s.store.GetOrCreateSpread(ctx, year, month)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "spread", "get or create", "", err)
	}
	inputs, err := ToElementInputs(dtos)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "spread", "save elements", "", err)
	}
	elements, err := s.store.ReplaceElements(ctx, spread.ID, inputs)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "spread", "save elements", "", err)
	}
	return &SpreadResponse{Spread: FromSpread(spread), Elements: FromElements(elements)}, nil
}

// DecorStore abstracts the legacy decor persistence the API needs.
type DecorStore interface {
	UpsertDecorItem(ctx context.Context, key journal.DecorKey, input journal.DecorInput) (*journal.DecorItem, error)
	ListDecorItems(ctx context.Context, year, month int, page string) ([]*journal.DecorItem, error)
}

// DecorService exposes legacy decor operations returning API DTOs.
type DecorService struct {
	store DecorStore
}

// NewDecorService constructs a DecorService around the provided store.
func NewDecorService(store DecorStore) *DecorService {
	if store == nil {
		return nil
	}
	return &DecorService{store: store}
}

// SaveDecor upserts a batch of decor items for one page and returns the
// page's full item list in stacking order.
func (s *DecorService) SaveDecor(ctx context.Context, year, month int, page string, items []DecorItemRequest) ([]DecorItem, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	for _, item := range items {
		key := journal.DecorKey{
			Year:    year,
			Month:   month,
			Page:    page,
			Kind:    item.Kind,
			ItemKey: item.ItemKey,
		}
		input := journal.DecorInput{X: item.X, Y: item.Y, Rotation: item.Rotation, Z: item.Z}
		if _, err := s.store.UpsertDecorItem(ctx, key, input); err != nil {
			return nil, services.Wrap(services.ErrValidation, "decor", "upsert", "", err)
		}
	}
	return s.ListDecor(ctx, year, month, page)
}

// ListDecor returns the page's decor items in stacking order.
func (s *DecorService) ListDecor(ctx context.Context, year, month int, page string) ([]DecorItem, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	items, err := s.store.ListDecorItems(ctx, year, month, page)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "decor", "list", "", err)
	}
	return FromDecorItems(items), nil
}
