package cache

import (
	"context"
	"testing"
	"time"

	"shopping-list-api/internal/infrastructure/config"
	"shopping-list-api/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Minute
	return cfg
}

func TestManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	m := NewManager(cfg)
	assert.Nil(t, m)

	// nil 管理器的所有操作都必須安全
	ctx := context.Background()
	_, err := m.Get(ctx, "key")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)
	assert.NoError(t, m.Set(ctx, "key", "value"))
	assert.Equal(t, false, m.GetStats()["enabled"])
	assert.NoError(t, m.Close())
}

func TestManagerGetSet(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "hash1", `{"items":[]}`))

	value, err := m.Get(ctx, "hash1")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, value)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "hash1", "value"))

	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "hash1")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(testConfig(2, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	// 提高 b 的訪問次數，讓 a 成為 LRU 淘汰對象
	_, err := m.Get(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	value, err := m.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", value)
}
