package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/disco-tictactoe/testing/suite"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, s := suite.New(t)

		client, err := NewRedisClient(ctx, s.Redis.Options().Addr)

		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })
		assert.NoError(t, client.Ping(ctx).Err())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		_, err := NewRedisClient(context.Background(), "127.0.0.1:1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})
}
