// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// # Result Cache

// cacheTTL bounds how stale a cached result set may be. The catalogue is
// read-only and loaded out of band, so a short window is safe.
const cacheTTL = 60 * time.Second

// cachedResult is the JSON shape stored per canonical query.
type cachedResult struct {
	Data  []Info `json:"data"`
	Total int    `json:"total"`
}

// ResultCache is a read-through cache for search and screen result sets,
// keyed by the canonical form of the incoming query string.
//
// All failures are soft: a cache miss and a cache error look identical to
// the caller, which falls back to the record store.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a Redis-backed [ResultCache].
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

/*
Get retrieves a cached result set for the canonical query key.

Parameters:
  - context: context.Context
  - key: string (prefixed canonical query)

Returns:
  - []Info: Cached projections
  - int: Cached total
  - bool: Whether the entry was present and decodable
*/
func (cache *ResultCache) Get(context context.Context, key string) ([]Info, int, bool) {
	if cache == nil || cache.client == nil {
		return nil, 0, false
	}

	// redis.Nil is an ordinary miss; any other error degrades to one.
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		return nil, 0, false
	}

	var result cachedResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, 0, false
	}

	return result.Data, result.Total, true
}

/*
Set stores a result set under the canonical query key with the cache TTL.

Parameters:
  - context: context.Context
  - key: string
  - data: []Info
  - total: int
*/
func (cache *ResultCache) Set(context context.Context, key string, data []Info, total int) {
	if cache == nil || cache.client == nil {
		return
	}

	payload, err := json.Marshal(cachedResult{Data: data, Total: total})
	if err != nil {
		return
	}

	// Best effort; an unreachable cache never fails the request.
	_ = cache.client.Set(context, key, payload, cacheTTL).Err()
}
