package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis so repositories can embed it and tests can swap in
// a redismock client.
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Connect creates a client and checks the server answers.
func Connect(ctx context.Context, addr, password string, db int) (*Client, error) {
	const op = "storage.redis.Connect"

	c := NewClient(addr, password, db)
	if err := c.HealthCheck(ctx); err != nil {
		_ = c.Client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}
