// Package redis wraps the go-redis client behind a narrow surface so
// the rest of the codebase never imports the library directly. The
// lookup service uses Redis for exactly one thing, the per-IP rate
// limiter, so the wrapper stays deliberately small.
package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Cmdable aliases redis.Cmdable. Adapters accept this interface, which
// also lets tests substitute miniredis-backed clients.
type Cmdable = redis.Cmdable

// Config holds the connection parameters. A single Timeout bounds both
// reads and writes: the limiter's Lua script is one round trip, and a
// slow Redis must fail fast so the fail-open path can take over.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Client owns the connection pool. RDB is the handle adapters use.
type Client struct {
	RDB *redis.Client
}

// NewClient creates a Redis client from cfg. Connections are dialed
// lazily on first use.
func NewClient(cfg Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &Client{RDB: rdb}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.RDB.Close()
}
