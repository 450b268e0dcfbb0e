package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"kiraya/config"
	"kiraya/infras/otel"
	"kiraya/internal/domains/draft/model"
	"kiraya/shared"
	"kiraya/shared/cache"
	"kiraya/shared/constant"
)

const (
	keyPrefix = "draft:session"
)

// DraftStore persists one draft per session in Redis. Drafts are working
// state, not a system of record, so every write refreshes the TTL.
type DraftStore interface {
	Get(ctx context.Context, sessionID string) (model.Draft, bool, error)
	Save(ctx context.Context, sessionID string, draft model.Draft) error
	Delete(ctx context.Context, sessionID string) error
}

type storeImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) DraftStore {
	return &storeImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *storeImpl) Get(ctx context.Context, sessionID string) (draft model.Draft, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, shared.BuildCacheKey(keyPrefix, sessionID), &draft)
	if errors.Is(err, cache.Nil) {
		return model.Draft{}, false, nil
	}

	if err != nil {
		return model.Draft{}, false, fmt.Errorf("failed to get draft: %w", err)
	}

	return draft, true, nil
}

func (s *storeImpl) Save(ctx context.Context, sessionID string, draft model.Draft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Save(ctx, shared.BuildCacheKey(keyPrefix, sessionID), draft, s.cfg.Draft.TTL)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (s *storeImpl) Delete(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Delete(ctx, shared.BuildCacheKey(keyPrefix, sessionID))
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
