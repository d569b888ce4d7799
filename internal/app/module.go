package app

import (
	"log/slog"
	"os"

	"github.com/verimail/verimail/internal/contact"
	"github.com/verimail/verimail/internal/verification"
	"github.com/verimail/verimail/internal/verification/entity"
)

func (a *App) initModules() {
	verificationUC, err := verification.New(verification.Dependency{
		Router:    a.router,
		Store:     a.store,
		Mailer:    a.mail,
		CodeGen:   a.codeGen,
		Validator: a.validator,
		Clock:     a.clock,
		EventID:   a.uid,
		Telemetry: a.ins,
		GoManager: a.goroutine,
		Publisher: a.messaging,
		AppName:   a.config.GetString("app.name"),
		Settings: entity.Settings{
			CodeTTL:      a.config.GetSecond("modules.verification.otp_ttl_seconds"),
			Cooldown:     a.config.GetSecond("modules.verification.cooldown_seconds"),
			MaxAttempts:  a.config.GetInt64("modules.verification.max_attempts"),
			GateFailOpen: a.config.GetBool("modules.verification.gate_fail_open"),
		},
	})
	if err != nil {
		slog.Error("failed to init module verification", "error", err)
		os.Exit(1)
	}

	if a.config.GetBool("modules.contact.enabled") {
		if err := contact.New(contact.Dependency{
			Router:    a.router,
			Gate:      verificationUC,
			Mailer:    a.mail,
			Validator: a.validator,
			Telemetry: a.ins,

			FromAddress: a.config.GetString("modules.contact.from_address"),
		}); err != nil {
			slog.Error("failed to init module contact", "error", err)
			os.Exit(1)
		}
	}
}
