// Package verification issues, verifies, and gates email one-time codes.
package verification

import (
	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/goroutine"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/mail"
	"github.com/verimail/verimail/internal/pkg/messaging"
	"github.com/verimail/verimail/internal/pkg/otp"
	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/pkg/uid"
	"github.com/verimail/verimail/internal/pkg/validator"
	"github.com/verimail/verimail/internal/verification/entity"
	"github.com/verimail/verimail/internal/verification/inbound"
	"github.com/verimail/verimail/internal/verification/outbound/email"
	"github.com/verimail/verimail/internal/verification/outbound/mq"
	"github.com/verimail/verimail/internal/verification/outbound/store"
	"github.com/verimail/verimail/internal/verification/usecase"
)

// Dependency lists what the verification module needs from the application.
type Dependency struct {
	Router    *router.Router             `validate:"required"`
	Store     store.Store                `validate:"required"`
	Mailer    mail.Mail                  `validate:"required"`
	CodeGen   otp.Generator              `validate:"required"`
	Validator validator.Validator        `validate:"required"`
	Clock     clock.Clocker              `validate:"required"`
	EventID   uid.NumberID               `validate:"required"`
	Telemetry instrument.Instrumentation `validate:"required"`
	GoManager *goroutine.Manager         `validate:"required"`
	Publisher messaging.Publisher
	Settings  entity.Settings
	AppName   string
}

// New wires the verification module and mounts its HTTP endpoints.
//
// It returns the usecase so other modules can consume the verified gate.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	ucDep := usecase.Dependency{
		Store:     dep.Store,
		Mailer:    email.NewCodeMailer(dep.Mailer, dep.Telemetry, dep.AppName),
		CodeGen:   dep.CodeGen,
		Validator: dep.Validator,
		Clock:     dep.Clock,
		EventID:   dep.EventID,
		Telemetry: dep.Telemetry,
		GoManager: dep.GoManager,
		Settings:  dep.Settings,
	}
	if dep.Publisher != nil {
		ucDep.Publisher = mq.NewEventPublisher(dep.Publisher, dep.Telemetry)
	}

	uc := usecase.NewUsecase(ucDep)
	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
