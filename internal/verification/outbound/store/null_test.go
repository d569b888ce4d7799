package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/pkg/goerror"
)

func TestNullWritesSucceed(t *testing.T) {
	ctx := t.Context()
	n := NewNull()

	assert.NoError(t, n.Set(ctx, "k", "v", time.Minute))

	ok, err := n.SetNX(ctx, "k", "v", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	count, err := n.Incr(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, n.Expire(ctx, "k", time.Minute))
	assert.NoError(t, n.Del(ctx, "k"))

	writes, reads := n.Stats()
	assert.Equal(t, int64(5), writes)
	assert.Zero(t, reads)
}

func TestNullReadsUnavailable(t *testing.T) {
	ctx := t.Context()
	n := NewNull()

	_, err := n.Get(ctx, "k")
	assert.ErrorIs(t, err, goerror.ErrUnavailable)

	_, err = n.TTL(ctx, "k")
	assert.ErrorIs(t, err, goerror.ErrUnavailable)

	writes, reads := n.Stats()
	assert.Zero(t, writes)
	assert.Equal(t, int64(2), reads)
}

func TestNullClose(t *testing.T) {
	assert.NoError(t, NewNull().Close())
}
