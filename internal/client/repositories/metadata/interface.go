// Package metadata provides the durable key/value port the session store
// persists into, with SQLite, in-memory and Redis implementations.
//
// Contract shared by every implementation:
//   - Get of a missing key returns (nil, nil).
//   - Set overwrites an existing value.
//   - Delete of a missing key is not an error.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
