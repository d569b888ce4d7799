// Package email delivers verification codes over the mail provider.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CodeMailer composes and sends verification code emails.
type CodeMailer struct {
	mailer  mail.Mail
	tracer  trace.Tracer
	appName string
}

// NewCodeMailer wraps a mail provider for code delivery.
func NewCodeMailer(mailer mail.Mail, ins instrument.Instrumentation, appName string) *CodeMailer {
	if appName == "" {
		appName = "verimail"
	}

	return &CodeMailer{
		mailer:  mailer,
		tracer:  ins.Tracer("verification.outbound.email"),
		appName: appName,
	}
}

// SendCode emails the code together with how long it stays valid.
func (c *CodeMailer) SendCode(ctx context.Context, to, code string, ttl time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "email.CodeMailer.SendCode", trace.WithAttributes(
		attribute.String("mail.to", to),
	))
	defer span.End()

	minutes := int(ttl.Minutes())
	if minutes < 1 {
		minutes = 1
	}

	msg := mail.Message{
		To:      []string{to},
		Subject: fmt.Sprintf("%s verification code", c.appName),
		TextBody: fmt.Sprintf(
			"Your verification code is %s.\r\n\r\nIt expires in %d minutes. If you did not request this code, ignore this email.",
			code, minutes,
		),
		HTMLBody: fmt.Sprintf(
			`<p>Your verification code is:</p><p style="font-size:24px;letter-spacing:4px;"><strong>%s</strong></p><p>It expires in %d minutes. If you did not request this code, ignore this email.</p>`,
			code, minutes,
		),
	}

	if err := c.mailer.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
