package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/verimail/verimail/internal/pkg/goerror"
	"go.uber.org/atomic"
)

// Null is the degraded-mode Store used when Redis is unreachable at startup
// and the deployment opts in to running without it.
//
// Writes succeed without storing anything, so issuing codes keeps working and
// users still receive email. Reads report goerror.ErrUnavailable, so code
// verification and the verified gate fail until the backend returns. Counters
// track how much traffic ran degraded.
type Null struct {
	writes atomic.Int64
	reads  atomic.Int64
}

// NewNull returns a Null store and logs that the service runs degraded.
func NewNull() *Null {
	slog.Warn("store: running with null backend, verification state will not persist")
	return &Null{}
}

// Set accepts and discards the write.
func (n *Null) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	n.writes.Inc()
	return nil
}

// SetNX accepts the write and always reports it happened.
func (n *Null) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	n.writes.Inc()
	return true, nil
}

// Get always reports the backend as unavailable.
func (n *Null) Get(ctx context.Context, key string) (string, error) {
	n.reads.Inc()
	return "", goerror.ErrUnavailable
}

// Incr accepts the write and reports a first increment.
func (n *Null) Incr(ctx context.Context, key string) (int64, error) {
	n.writes.Inc()
	return 1, nil
}

// Expire accepts and discards the write.
func (n *Null) Expire(ctx context.Context, key string, ttl time.Duration) error {
	n.writes.Inc()
	return nil
}

// TTL always reports the backend as unavailable.
func (n *Null) TTL(ctx context.Context, key string) (time.Duration, error) {
	n.reads.Inc()
	return 0, goerror.ErrUnavailable
}

// Del accepts and discards the write.
func (n *Null) Del(ctx context.Context, keys ...string) error {
	n.writes.Inc()
	return nil
}

// Close logs how much traffic the degraded store absorbed.
func (n *Null) Close() error {
	slog.Warn("store: closing null backend", "writes_discarded", n.writes.Load(), "reads_refused", n.reads.Load())
	return nil
}

// Stats reports how many writes were discarded and reads refused.
func (n *Null) Stats() (writes, reads int64) {
	return n.writes.Load(), n.reads.Load()
}
