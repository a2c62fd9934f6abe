package catalog

import (
	"context"
	"errors"

	"pandapos/internal/pos"
)

var (
	// ErrItemNotFound satisfies the pos.ItemSource not-found contract.
	ErrItemNotFound    = pos.ErrItemNotFound
	ErrItemUnavailable = errors.New("item is not available")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FetchCategory returns the full item list for a category. A failing
// catalog never affects any in-progress order; the caller renders the
// error as an empty list.
func (s *Service) FetchCategory(
	ctx context.Context,
	category pos.Category,
) ([]Food, error) {
	return s.repo.ListByCategory(ctx, category)
}

// Resolve snapshots a food into an addable menu item. Unavailable
// items are rejected here, before the order builder sees them.
func (s *Service) Resolve(
	ctx context.Context,
	foodID int,
) (pos.MenuItem, error) {

	f, err := s.repo.GetByID(ctx, foodID)
	if err != nil {
		return pos.MenuItem{}, err
	}
	if !f.Available {
		return pos.MenuItem{}, ErrItemUnavailable
	}

	return pos.MenuItem{
		Name:     f.Name,
		Category: f.Category,
		Premium:  f.Premium,
	}, nil
}
