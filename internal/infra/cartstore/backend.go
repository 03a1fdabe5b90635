// Package cartstore persists carts as JSON documents in a key-value backend.
package cartstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-front/internal/pkg/errs"
)

var ErrUnknownBackend = errs.New("unknown cart backend")

// Backend is a byte-level key-value store. Get reports ok=false for an absent
// or expired key. A ttl of zero stores the value without expiry.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type BackendKind string

const (
	BackendMemory   BackendKind = "memory"
	BackendPostgres BackendKind = "postgres"
	BackendRedis    BackendKind = "redis"
)

func ParseBackendKind(s string) (BackendKind, error) {
	switch kind := BackendKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case BackendMemory, BackendPostgres, BackendRedis:
		return kind, nil
	default:
		return "", errs.Mark(fmt.Errorf("cart backend %q", s), ErrUnknownBackend)
	}
}

// Key builds the storage key of one cart: <namespace>:<session>:<cartKey>.
func Key(namespace, sessionID, cartKey string) string {
	return namespace + ":" + sessionID + ":" + cartKey
}
