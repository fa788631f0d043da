package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
)

// Config holds response cache configuration
type Config struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		DefaultTTL:      5 * time.Minute,
		CacheableStatus: []int{http.StatusOK},
	}
}

// NewRedisClient connects to Redis; a nil client is returned on failure so
// callers can run without caching.
func NewRedisClient(addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, response caching disabled")
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis response cache connected")
	return client
}

// responseRecorder buffers the response body so it can be stored after the
// handler runs
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.statusCode = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.body.Write(b)
	return rr.ResponseWriter.Write(b)
}

// Middleware caches GET responses in Redis keyed by method, path and query
func Middleware(client *redis.Client, config Config) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Skip caching if Redis is not available
			if client == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)
			ctx := r.Context()

			cached, err := client.Get(ctx, key).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Logger.Debug().
					Str("path", r.URL.Path).
					Str("cache_key", key).
					Msg("Cache hit")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			rr := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			rr.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rr, r)

			if !isStatusCacheable(rr.statusCode, config.CacheableStatus) {
				return
			}

			if err := client.Set(ctx, key, rr.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", key).
					Msg("Failed to cache response")
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", key).
				Dur("ttl", config.DefaultTTL).
				Int("size", rr.body.Len()).
				Msg("Response cached")
		}
	}
}

// cacheKey generates a unique cache key for the request
func cacheKey(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	hash := sha256.Sum256([]byte(components))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

func isStatusCacheable(status int, cacheable []int) bool {
	for _, s := range cacheable {
		if s == status {
			return true
		}
	}
	return false
}
