// Package redis implements the keyring storage and the token info cache on top
// of a single Redis connection.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// defaultTokenInfoTTL bounds how long token metadata is trusted.
const defaultTokenInfoTTL = 24 * time.Hour

type client struct {
	conn         *redis.Client
	tokenInfoTTL time.Duration
}

// Option configures the client.
type Option func(*client)

// WithTokenInfoTTL sets the expiration of cached token metadata. Zero keeps it forever.
func WithTokenInfoTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.tokenInfoTTL = ttl
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	c := &client{
		conn:         conn,
		tokenInfoTTL: defaultTokenInfoTTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
