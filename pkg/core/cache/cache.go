// Package cache is a thin Redis layer for computed analyses. Live what-if
// editors hammer the calculate endpoint with identical payloads; caching the
// JSON result by input hash keeps those hits off the CPU.
//
// Every operation is a no-op when Redis is not configured: caching is an
// optimization, never a dependency.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cre_underwriting/pkg/core/config"
)

var rdb *redis.Client

// Connect sets up the shared client and pings it once. A failed ping leaves
// the cache disabled rather than failing startup.
func Connect(ctx context.Context, addr string) {
	if addr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		config.Logger().Warnf("redis unavailable at %s, caching disabled: %v", addr, err)
		return
	}
	rdb = client
	config.Logger().Infof("connected to redis at %s", addr)
}

// Key derives a cache key from any JSON-serializable input set.
func Key(prefix string, input interface{}) string {
	data, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:16])
}

// GetObject loads and unmarshals a cached value. The bool reports a hit.
func GetObject(ctx context.Context, key string, dest interface{}) (bool, error) {
	if rdb == nil || key == "" {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetObject marshals and stores a value with a TTL.
func SetObject(ctx context.Context, key string, obj interface{}, ttl time.Duration) error {
	if rdb == nil || key == "" {
		return nil
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// Close releases the client.
func Close() {
	if rdb != nil {
		rdb.Close()
	}
}
