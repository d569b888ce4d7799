// Package usecase implements the contact relay business rules.
package usecase

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
	"github.com/verimail/verimail/internal/contact/entity"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// VerifiedGate answers whether an address has passed email verification.
type VerifiedGate interface {
	IsVerified(ctx context.Context, email string) (bool, error)
}

// MessageRelay forwards a contact message to the configured inbox.
type MessageRelay interface {
	Relay(ctx context.Context, msg entity.Message) error
}

// Dependency lists what the contact Usecase needs to run.
type Dependency struct {
	Gate      VerifiedGate               `validate:"required"`
	Relay     MessageRelay               `validate:"required"`
	Validator validator.Validator        `validate:"required"`
	Telemetry instrument.Instrumentation `validate:"required"`

	// FromAddress is the only sender identity the mail provider accepts.
	FromAddress string `validate:"required,emailaddr"`
}

// Usecase carries the contact operations.
type Usecase struct {
	dep       Dependency
	sanitizer *bluemonday.Policy
	tracer    trace.Tracer
}

// NewUsecase constructs the contact Usecase.
//
// The strict sanitizer strips all HTML, so relayed messages are always plain
// text regardless of what the client submitted.
func NewUsecase(dep Dependency) *Usecase {
	return &Usecase{
		dep:       dep,
		sanitizer: bluemonday.StrictPolicy(),
		tracer:    dep.Telemetry.Tracer("contact.usecase"),
	}
}

func (uc *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return uc.tracer.Start(ctx, "usecase."+name)
}
