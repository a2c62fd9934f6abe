package transaction

import (
	"context"

	"github.com/google/uuid"

	"pandapos/internal/pos"
)

// InMemoryStore records finalizations for tests. Set FailWith to make
// every Save fail without recording anything.
type InMemoryStore struct {
	Saved    []pos.Finalization
	FailWith error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Save(ctx context.Context, f pos.Finalization) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}
	s.Saved = append(s.Saved, f)
	return uuid.New().String(), nil
}
