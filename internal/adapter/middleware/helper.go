package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

func buildKey(path, query string) string {
	return "quote:" + path + "?" + query
}

// ---- Redis helpers ----
func loadEntry(ctx context.Context, rdb *redis.Client, key string) (quoteEntry, error) {
	var e quoteEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(v, &e)
	return e, err
}

func saveEntry(ctx context.Context, rdb *redis.Client, key string, entry quoteEntry, ttl time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, payload, ttl).Err()
}
