// Package usecase implements the verification business rules.
package usecase

import (
	"context"
	"time"

	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/goroutine"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/otp"
	"github.com/verimail/verimail/internal/pkg/uid"
	"github.com/verimail/verimail/internal/pkg/validator"
	"github.com/verimail/verimail/internal/shared/event"
	"github.com/verimail/verimail/internal/verification/entity"
	"github.com/verimail/verimail/internal/verification/outbound/store"
	"go.opentelemetry.io/otel/trace"
)

// CodeSender delivers a verification code to an address.
type CodeSender interface {
	SendCode(ctx context.Context, to, code string, ttl time.Duration) error
}

// EventPublisher announces verification events. It is optional; deployments
// without a broker simply skip publishing.
type EventPublisher interface {
	PublishEmailVerified(ctx context.Context, msg event.EmailVerifiedMessage) error
}

// Dependency lists what the verification Usecase needs to run.
type Dependency struct {
	Store       store.Store                `validate:"required"`
	Mailer      CodeSender                 `validate:"required"`
	CodeGen     otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	EventID     uid.NumberID               `validate:"required"`
	Telemetry   instrument.Instrumentation `validate:"required"`
	GoManager   *goroutine.Manager         `validate:"required"`
	Publisher   EventPublisher
	Settings    entity.Settings
}

// Usecase carries the verification operations.
type Usecase struct {
	dep      Dependency
	settings entity.Settings
	tracer   trace.Tracer
}

// NewUsecase constructs the verification Usecase. Settings zero values are
// replaced with defaults.
func NewUsecase(dep Dependency) *Usecase {
	return &Usecase{
		dep:      dep,
		settings: dep.Settings.Normalize(),
		tracer:   dep.Telemetry.Tracer("verification.usecase"),
	}
}

func (uc *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return uc.tracer.Start(ctx, "usecase."+name)
}
