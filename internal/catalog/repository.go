package catalog

import (
	"context"

	"pandapos/internal/pos"
)

// Repository defines all database operations for the food catalog.
type Repository interface {
	// All items of a category, available or not.
	ListByCategory(ctx context.Context, category pos.Category) ([]Food, error)

	// Single item lookup for add-to-order resolution.
	GetByID(ctx context.Context, foodID int) (*Food, error)
}
