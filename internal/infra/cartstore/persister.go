package cartstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/infra"
)

// JSONPersister stores one cart as a JSON array under a single key.
type JSONPersister[T cart.Item] struct {
	backend Backend
	key     string
	ttl     time.Duration
	logger  *slog.Logger
}

func NewJSONPersister[T cart.Item](backend Backend, key string, ttl time.Duration, logger *slog.Logger) *JSONPersister[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONPersister[T]{backend: backend, key: key, ttl: ttl, logger: logger}
}

func (p *JSONPersister[T]) Key() string {
	return p.key
}

func (p *JSONPersister[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := p.backend.Get(ctx, p.key)
	if err != nil {
		return nil, infra.WrapRepoErr(p.logger, infra.KindBackendFailure, "failed to load cart", err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, infra.WrapRepoErr(p.logger, infra.KindCorruptEntry, "failed to decode cart "+p.key, err)
	}
	return items, nil
}

func (p *JSONPersister[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindCorruptEntry, "failed to encode cart "+p.key, err)
	}
	if err := p.backend.Put(ctx, p.key, raw, p.ttl); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindBackendFailure, "failed to save cart", err)
	}
	return nil
}

func (p *JSONPersister[T]) Clear(ctx context.Context) error {
	if err := p.backend.Delete(ctx, p.key); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindBackendFailure, "failed to clear cart", err)
	}
	return nil
}
