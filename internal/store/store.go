// Package store is the persisted key-value store backing session state:
// the current cart and the current user identity. Absence of a key is a
// valid empty state, never an error at the call sites.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CartKey namespaces the cart value for a session.
func CartKey(session string) string {
	return fmt.Sprintf("cart:%s", session)
}

// UserKey namespaces the user identity value for a session.
func UserKey(session string) string {
	return fmt.Sprintf("user:%s", session)
}
