package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := NewRedis(ctx, &config.Config{})

	assert.False(t, c.Enabled())

	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Delete(ctx, "k")
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Redis

	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.False(t, c.Enabled())
}
