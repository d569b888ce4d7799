package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Redis implements Store on top of a Redis client.
//
// All operations map one-to-one to Redis commands, so concurrent issue and
// verify flows stay atomic without application-level locking.
type Redis struct {
	client redis.UniversalClient
	tracer trace.Tracer
}

// NewRedis wraps an already connected Redis client.
func NewRedis(client redis.UniversalClient, ins instrument.Instrumentation) *Redis {
	return &Redis{
		client: client,
		tracer: ins.Tracer("verification.store.redis"),
	}
}

// Set writes a value with the given lifetime.
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, span := r.startSpan(ctx, "Set", key)
	defer span.End()

	if err := r.client.Set(ctx, key, value, normalizeTTL(ttl)).Err(); err != nil {
		return r.fail(span, "set", err)
	}
	return nil
}

// SetNX writes a value only when the key is absent.
func (r *Redis) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ctx, span := r.startSpan(ctx, "SetNX", key)
	defer span.End()

	ok, err := r.client.SetNX(ctx, key, value, normalizeTTL(ttl)).Result()
	if err != nil {
		return false, r.fail(span, "setnx", err)
	}
	return ok, nil
}

// Get reads a value, mapping a missing key to goerror.ErrNotFound.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	ctx, span := r.startSpan(ctx, "Get", key)
	defer span.End()

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	if err != nil {
		return "", r.fail(span, "get", err)
	}
	return val, nil
}

// Incr atomically increments a counter key.
func (r *Redis) Incr(ctx context.Context, key string) (int64, error) {
	ctx, span := r.startSpan(ctx, "Incr", key)
	defer span.End()

	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, r.fail(span, "incr", err)
	}
	return n, nil
}

// Expire sets the remaining lifetime of a key.
func (r *Redis) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, span := r.startSpan(ctx, "Expire", key)
	defer span.End()

	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		return r.fail(span, "expire", err)
	}
	return nil
}

// TTL reports the remaining lifetime of a key. Redis sentinel results for a
// missing key or a key without expiry come back as negative durations.
func (r *Redis) TTL(ctx context.Context, key string) (time.Duration, error) {
	ctx, span := r.startSpan(ctx, "TTL", key)
	defer span.End()

	d, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, r.fail(span, "ttl", err)
	}
	return d, nil
}

// Del removes the given keys.
func (r *Redis) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, span := r.startSpan(ctx, "Del", keys[0])
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return r.fail(span, "del", err)
	}
	return nil
}

// Close releases the underlying client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) startSpan(ctx context.Context, op, key string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "store.Redis."+op, trace.WithAttributes(
		attribute.String("db.system", "redis"),
		attribute.String("db.redis.key", key),
	))
}

func (r *Redis) fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("redis %s: %w", op, err)
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0 // no expiry
	}
	return ttl
}
