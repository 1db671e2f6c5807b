package resolver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/cache"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

const queryKeyPrefix = "query:"

// CachedStore caches non-empty query results of a RecordStore. Empty results
// and store errors are never cached, so a newly inserted record is visible
// on the next lookup. Cache failures fall through to the store.
type CachedStore struct {
	store  RecordStore
	cache  cache.Client
	ttl    time.Duration
	logger *observability.Logger
}

// NewCachedStore wraps store with a query cache.
func NewCachedStore(store RecordStore, client cache.Client, ttl time.Duration, logger *observability.Logger) *CachedStore {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &CachedStore{
		store:  store,
		cache:  client,
		ttl:    ttl,
		logger: logger.WithComponent("query_cache"),
	}
}

// Query returns cached records for f, querying the store on a miss.
func (s *CachedStore) Query(ctx context.Context, f storage.Filter) ([]storage.Record, error) {
	key, err := queryKey(f)
	if err != nil {
		return s.store.Query(ctx, f)
	}

	if data, err := s.cache.Get(ctx, key); err == nil {
		var records []storage.Record
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		s.logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn().Err(err).Msg("Query cache read failed")
	}

	records, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	if data, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("Query cache write failed")
		}
	}
	return records, nil
}

// Invalidate drops every cached query.
func (s *CachedStore) Invalidate(ctx context.Context) error {
	return s.cache.DeleteByPrefix(ctx, queryKeyPrefix)
}

func queryKey(f storage.Filter) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return cache.Key("query", hex.EncodeToString(sum[:])), nil
}
