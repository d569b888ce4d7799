package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/goroutine"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/validator"
	"github.com/verimail/verimail/internal/shared/event"
	"github.com/verimail/verimail/internal/verification/entity"
	"github.com/verimail/verimail/internal/verification/outbound/store"
)

// codeQueue is a Generator handing out predetermined codes.
type codeQueue struct {
	mu    sync.Mutex
	codes []string
}

func (c *codeQueue) Generate() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.codes) == 0 {
		return "111111"
	}

	code := c.codes[0]
	c.codes = c.codes[1:]
	return code
}

// mailRecorder captures sent codes and can be made to fail.
type mailRecorder struct {
	mu   sync.Mutex
	sent []string
	fail error
}

func (m *mailRecorder) SendCode(_ context.Context, to, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}

	m.sent = append(m.sent, to+":"+code)
	return nil
}

func (m *mailRecorder) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

// publishRecorder captures published events.
type publishRecorder struct {
	mu     sync.Mutex
	events []event.EmailVerifiedMessage
}

func (p *publishRecorder) PublishEmailVerified(_ context.Context, msg event.EmailVerifiedMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, msg)
	return nil
}

type staticID struct{}

func (staticID) Generate() int64 { return 42 }

type harness struct {
	uc        *Usecase
	store     store.Store
	clk       *clock.FixedClocker
	mail      *mailRecorder
	publisher *publishRecorder
	manager   *goroutine.Manager
}

func newHarness(t *testing.T, st store.Store, settings entity.Settings) *harness {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if st == nil {
		st = store.NewMemory(clk)
	}

	mailer := &mailRecorder{}
	publisher := &publishRecorder{}
	manager := goroutine.NewManager(10)

	uc := NewUsecase(Dependency{
		Store:     st,
		Mailer:    mailer,
		CodeGen:   &codeQueue{codes: []string{"123456", "654321", "777777"}},
		Validator: v,
		Clock:     clk,
		EventID:   staticID{},
		Telemetry: instrument.NewNoop(),
		GoManager: manager,
		Publisher: publisher,
		Settings:  settings,
	})

	return &harness{
		uc:        uc,
		store:     st,
		clk:       clk,
		mail:      mailer,
		publisher: publisher,
		manager:   manager,
	}
}
