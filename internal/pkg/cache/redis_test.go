package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	c, closeFn := NewRedisCache("localhost:0", "order")
	defer closeFn()

	assert.Equal(t, "order:create:user123:abc", c.GenerateKey("create", "user123:abc"))
	assert.Equal(t, "payment:charge:o-1", GenerateKey("payment", "charge", "o-1"))
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	// Port 0 is never listening; the client must surface the dial failure
	// instead of reporting a miss.
	c, closeFn := NewRedisCache("127.0.0.1:0", "order")
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := c.Get(ctx, "order:create:k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: get")
}
