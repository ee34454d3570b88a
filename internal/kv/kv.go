// Package kv provides the small key-value surface the UI preferences
// (language, theme) persist through: get, set and subscribe-to-changes.
// Production uses Redis; the in-memory store backs tests and single-node
// deployments without Redis.
package kv

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Subscribe delivers every subsequent value written to key. The cancel
	// func releases the subscription and closes the channel.
	Subscribe(ctx context.Context, key string) (<-chan string, func(), error)
}
