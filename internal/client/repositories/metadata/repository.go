// Package metadata persists small key/value client state (the session token
// and the derived user blob) in a local sqlite database, the terminal
// equivalent of browser local storage.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
