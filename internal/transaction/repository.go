package transaction

import (
	"context"

	"pandapos/internal/pos"
)

// Store is the persistence endpoint for finished transactions. It must
// either return a transaction identifier or an error; there is no
// partial success.
type Store interface {
	Save(ctx context.Context, f pos.Finalization) (string, error)
}

// Archiver keeps a copy of each receipt in object storage. Archival is
// best effort and never fails a transaction.
type Archiver interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
