// Package contact relays contact-form messages from verified senders.
package contact

import (
	"github.com/verimail/verimail/internal/contact/inbound"
	"github.com/verimail/verimail/internal/contact/outbound/email"
	"github.com/verimail/verimail/internal/contact/usecase"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/mail"
	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/pkg/validator"
)

// Dependency lists what the contact module needs from the application.
type Dependency struct {
	Router    *router.Router             `validate:"required"`
	Gate      usecase.VerifiedGate       `validate:"required"`
	Mailer    mail.Mail                  `validate:"required"`
	Validator validator.Validator        `validate:"required"`
	Telemetry instrument.Instrumentation `validate:"required"`

	// FromAddress is the provider-approved sender identity.
	FromAddress string `validate:"required,emailaddr"`
}

// New wires the contact module and mounts its HTTP endpoints.
func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.NewUsecase(usecase.Dependency{
		Gate:        dep.Gate,
		Relay:       email.NewFormRelay(dep.Mailer, dep.Telemetry, dep.FromAddress),
		Validator:   dep.Validator,
		Telemetry:   dep.Telemetry,
		FromAddress: dep.FromAddress,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
