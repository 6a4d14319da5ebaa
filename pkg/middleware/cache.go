package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/growshop/pkg/logger"
)

const cacheKeyPrefix = "growshop:http:"

// ResponseCache stores successful GET responses of read-only routes in Redis
type ResponseCache struct {
	redis    *redis.Client
	ttl      time.Duration
	prefixes []string
}

// NewResponseCache caches GET responses whose path starts with one of
// prefixes. A nil client or a non-positive ttl disables caching.
func NewResponseCache(redisClient *redis.Client, ttl time.Duration, prefixes ...string) *ResponseCache {
	return &ResponseCache{redis: redisClient, ttl: ttl, prefixes: prefixes}
}

// Middleware returns the caching middleware
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !c.cacheable(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := cacheKey(r)

		cached, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			logger.Debug(ctx).Str("path", r.URL.Path).Msg("Cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}
		if err != redis.Nil {
			logger.Warn(ctx).Err(err).Msg("Response cache unavailable")
		}

		w.Header().Set("X-Cache", "MISS")
		rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.statusCode != http.StatusOK {
			return
		}
		// The client already has its response; the write must not be
		// cancelled with the request.
		if err := c.redis.Set(context.WithoutCancel(ctx), key, rec.body.Bytes(), c.ttl).Err(); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to cache response")
		}
	})
}

func (c *ResponseCache) cacheable(path string) bool {
	for _, p := range c.prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// cacheKey hashes the path and query of r
func cacheKey(r *http.Request) string {
	hash := sha256.Sum256([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return cacheKeyPrefix + hex.EncodeToString(hash[:])
}

// bodyRecorder copies the response body while passing it through
type bodyRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (br *bodyRecorder) WriteHeader(code int) {
	if !br.wroteHeader {
		br.statusCode = code
		br.wroteHeader = true
	}
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	br.wroteHeader = true
	br.body.Write(b)
	return br.ResponseWriter.Write(b)
}
