package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TTL is the freshness window for cached datasets. An older entry is
// treated as absent.
const TTL = 7 * 24 * time.Hour

// KV is the slice of the persistence capability the cache needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// entry is the stored envelope around a cached dataset.
type entry struct {
	Time int64           `json:"time"`
	Data json.RawMessage `json:"data"`
}

// Key builds the cache key for a subject/chapter pair.
func Key(subject, slug string) string {
	return fmt.Sprintf("db:%s:%s", subject, slug)
}

// Cache is a time-boxed cache in front of a Fetcher. Reads that miss,
// are stale, or are corrupt fall through to the fetcher; writes are
// best-effort and their failures ignored.
type Cache struct {
	kv      KV
	fetcher Fetcher
	now     func() time.Time
}

// NewCache wraps fetcher with a KV-backed cache.
func NewCache(kv KV, fetcher Fetcher) *Cache {
	return &Cache{kv: kv, fetcher: fetcher, now: time.Now}
}

// Load returns the parsed dataset for subject/slug, fetching and parsing
// path on a cache miss.
func (c *Cache) Load(ctx context.Context, subject, slug, path string) (any, error) {
	key := Key(subject, slug)

	if raw, ok, err := c.kv.Get(key); err == nil && ok {
		var e entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			// Corrupt envelope; drop it and refetch.
			_ = c.kv.Remove(key)
		} else if c.now().Sub(time.Unix(e.Time, 0)) < TTL {
			var v any
			if err := json.Unmarshal(e.Data, &v); err == nil {
				return v, nil
			}
			_ = c.kv.Remove(key)
		}
	}

	raw, err := c.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	v, err := Parse(path, raw)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(v); err == nil {
		if enc, err := json.Marshal(entry{Time: c.now().Unix(), Data: data}); err == nil {
			_ = c.kv.Set(key, string(enc))
		}
	}
	return v, nil
}
