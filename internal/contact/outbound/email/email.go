// Package email forwards contact-form messages over the mail provider.
package email

import (
	"context"
	"fmt"

	"github.com/verimail/verimail/internal/contact/entity"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FormRelay delivers contact-form messages from the configured sender identity.
type FormRelay struct {
	mailer mail.Mail
	from   string
	tracer trace.Tracer
}

// NewFormRelay wraps a mail provider for contact delivery.
func NewFormRelay(mailer mail.Mail, ins instrument.Instrumentation, from string) *FormRelay {
	return &FormRelay{
		mailer: mailer,
		from:   from,
		tracer: ins.Tracer("contact.outbound.email"),
	}
}

// Relay sends the message with the verified sender as Reply-To.
func (r *FormRelay) Relay(ctx context.Context, msg entity.Message) error {
	ctx, span := r.tracer.Start(ctx, "email.FormRelay.Relay", trace.WithAttributes(
		attribute.String("mail.to", msg.To),
		attribute.String("mail.reply_to", msg.SentBy),
	))
	defer span.End()

	out := mail.Message{
		From:    r.from,
		To:      []string{msg.To},
		ReplyTo: msg.SentBy,
		Subject: fmt.Sprintf("New contact form message from %s", msg.UserName),
		TextBody: fmt.Sprintf(
			"You have received a new message via the contact form from %s <%s>:\r\n\r\n%s\r\n\r\nReply to: %s",
			msg.UserName, msg.SentBy, msg.Body, msg.SentBy,
		),
	}

	if err := r.mailer.Send(ctx, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
