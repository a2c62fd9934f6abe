package catalog

import (
	"context"
	"errors"
	"testing"

	"pandapos/internal/pos"
)

func testRepo() *InMemoryRepository {
	return NewInMemoryRepository([]Food{
		{ID: 1, Name: "Fried Rice", Category: pos.CategorySide, Available: true},
		{ID: 2, Name: "Super Greens", Category: pos.CategorySide, Available: true},
		{ID: 3, Name: "Honey Walnut Shrimp", Category: pos.CategoryEntree, Available: true, Premium: true},
		{ID: 4, Name: "Beijing Beef", Category: pos.CategoryEntree, Available: false},
	})
}

func TestFetchCategory(t *testing.T) {
	service := NewService(testRepo())

	sides, err := service.FetchCategory(context.Background(), pos.CategorySide)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sides) != 2 {
		t.Fatalf("got %d sides, want 2", len(sides))
	}

	apps, err := service.FetchCategory(context.Background(), pos.CategoryAppetizer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("got %d appetizers, want 0", len(apps))
	}
}

func TestResolveSnapshotsItem(t *testing.T) {
	service := NewService(testRepo())

	item, err := service.Resolve(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Honey Walnut Shrimp" || item.Category != pos.CategoryEntree || !item.Premium {
		t.Fatalf("resolved item = %+v", item)
	}
}

func TestResolveUnavailableItem(t *testing.T) {
	service := NewService(testRepo())

	_, err := service.Resolve(context.Background(), 4)
	if !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
}

func TestResolveUnknownItem(t *testing.T) {
	service := NewService(testRepo())

	_, err := service.Resolve(context.Background(), 99)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
