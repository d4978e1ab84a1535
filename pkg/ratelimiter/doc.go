// Package ratelimiter implements token bucket rate limiting with pluggable
// state stores and an HTTP middleware.
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP)).Post("/contact", h)
//
// Each key owns a bucket of Capacity tokens. Every RefillInterval adds
// RefillRate tokens up to Capacity. A request consumes one token; a request
// that finds too few tokens is denied and consumes nothing.
//
// MemoryStore keeps buckets in process and evicts idle ones. RedisStore keeps
// them in Redis and updates them atomically with a Lua script, so several
// processes share one limit.
package ratelimiter
