package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/goerror"
)

func TestMemorySetGet(t *testing.T) {
	ctx := t.Context()
	m := NewMemory(nil)

	require.NoError(t, m.Set(ctx, "k", "v", 0))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := t.Context()
	clk := clock.NewFixed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewMemory(clk)

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	clk.Advance(time.Minute + time.Second)

	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestMemorySetNX(t *testing.T) {
	ctx := t.Context()
	clk := clock.NewFixed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewMemory(clk)

	ok, err := m.SetNX(ctx, "k", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.SetNX(ctx, "k", "2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	clk.Advance(2 * time.Minute)

	ok, err = m.SetNX(ctx, "k", "3", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryIncr(t *testing.T) {
	ctx := t.Context()
	m := NewMemory(nil)

	n, err := m.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryExpireAndTTL(t *testing.T) {
	ctx := t.Context()
	clk := clock.NewFixed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewMemory(clk)

	ttl, err := m.TTL(ctx, "missing")
	require.NoError(t, err)
	assert.Negative(t, ttl)

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	ttl, err = m.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Negative(t, ttl)

	require.NoError(t, m.Expire(ctx, "k", time.Minute))
	ttl, err = m.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	clk.Advance(2 * time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestMemoryDel(t *testing.T) {
	ctx := t.Context()
	m := NewMemory(nil)

	require.NoError(t, m.Set(ctx, "a", "1", 0))
	require.NoError(t, m.Set(ctx, "b", "2", 0))

	require.NoError(t, m.Del(ctx, "a", "b", "missing"))

	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}
