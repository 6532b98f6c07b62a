package persistence

import "context"

const (
	CollectionAccounts   = "accounts"
	CollectionPortfolios = "portfolios"
)

// Medium is the durable key-value surface the repositories run on: whole
// collections are read and written as single blobs. There is no partial-key
// update at this level; the repositories do read-modify-write under their
// own locks.
type Medium interface {
	// ReadCollection returns the raw blob for the named collection, or nil
	// when the collection has never been written.
	ReadCollection(ctx context.Context, name string) ([]byte, error)
	WriteCollection(ctx context.Context, name string, data []byte) error
}
