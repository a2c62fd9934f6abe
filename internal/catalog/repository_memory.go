package catalog

import (
	"context"

	"pandapos/internal/pos"
)

// InMemoryRepository backs tests and local runs without Postgres.
type InMemoryRepository struct {
	foods map[int]Food
}

func NewInMemoryRepository(foods []Food) *InMemoryRepository {
	m := make(map[int]Food, len(foods))
	for _, f := range foods {
		m[f.ID] = f
	}
	return &InMemoryRepository{foods: m}
}

func (r *InMemoryRepository) ListByCategory(
	ctx context.Context,
	category pos.Category,
) ([]Food, error) {

	var out []Food
	for _, f := range r.foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(
	ctx context.Context,
	foodID int,
) (*Food, error) {

	f, ok := r.foods[foodID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &f, nil
}
