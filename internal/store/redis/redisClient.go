package redis

import (
	"context"
	"time"

	"filebox/internal/config"

	goredis "github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client so callers get a uniform liveness check.
type Client struct {
	*goredis.Client
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg config.Redis) (*Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{Client: client}, nil
}

// Alive reports whether the cache still answers a ping. Used by the /status
// endpoint.
func (c *Client) Alive(ctx context.Context) bool {
	return c.Ping(ctx).Err() == nil
}
