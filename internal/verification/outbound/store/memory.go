package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/goerror"
)

type memoryItem struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// Memory is an in-process Store with TTL support.
//
// It backs unit tests and local development without a Redis instance. Expiry
// is evaluated lazily against the injected clock on every access.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
	clock clock.Clocker
}

// NewMemory creates an empty in-memory store using the given clock.
func NewMemory(clk clock.Clocker) *Memory {
	if clk == nil {
		clk = clock.New()
	}

	return &Memory{
		items: make(map[string]memoryItem),
		clock: clk,
	}
}

// Set writes a value, replacing any previous one.
func (m *Memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = memoryItem{value: value, expiresAt: m.deadline(ttl)}
	return nil
}

// SetNX writes a value only when the key is absent or expired.
func (m *Memory) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.live(key); ok {
		return false, nil
	}

	m.items[key] = memoryItem{value: value, expiresAt: m.deadline(ttl)}
	return true, nil
}

// Get reads a value, mapping a missing or expired key to goerror.ErrNotFound.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.live(key)
	if !ok {
		return "", goerror.ErrNotFound
	}
	return item.value, nil
}

// Incr increments an integer value, creating it at 1 without expiry.
func (m *Memory) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.live(key)
	if !ok {
		m.items[key] = memoryItem{value: "1"}
		return 1, nil
	}

	n, err := strconv.ParseInt(item.value, 10, 64)
	if err != nil {
		return 0, goerror.ErrUnavailable
	}

	n++
	item.value = strconv.FormatInt(n, 10)
	m.items[key] = item
	return n, nil
}

// Expire sets the remaining lifetime of an existing key.
func (m *Memory) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.live(key)
	if !ok {
		return nil
	}

	item.expiresAt = m.deadline(ttl)
	m.items[key] = item
	return nil
}

// TTL reports the remaining lifetime of a key.
func (m *Memory) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.live(key)
	if !ok {
		return -2 * time.Second, nil
	}
	if item.expiresAt.IsZero() {
		return -1 * time.Second, nil
	}
	return item.expiresAt.Sub(m.clock.Now()), nil
}

// Del removes the given keys.
func (m *Memory) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.items, key)
	}
	return nil
}

// Close clears the store.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]memoryItem)
	return nil
}

// live returns the item for key when it exists and has not expired; expired
// entries are removed. Caller must hold the lock.
func (m *Memory) live(key string) (memoryItem, bool) {
	item, ok := m.items[key]
	if !ok {
		return memoryItem{}, false
	}

	if !item.expiresAt.IsZero() && !item.expiresAt.After(m.clock.Now()) {
		delete(m.items, key)
		return memoryItem{}, false
	}
	return item, true
}

func (m *Memory) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return m.clock.Now().Add(ttl)
}
