package metadata

import "context"

// Store keeps the media files that items reference through their metadata
// reference. The catalog never reads from it; clients upload first and pass
// the returned URL when listing.
type Store interface {
	// Put stores data under a freshly generated name.
	Put(ctx context.Context, input PutInput) (Object, error)
	// Get returns the bytes stored under name.
	Get(ctx context.Context, name string) ([]byte, error)
}
