package usecase

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/verimail/verimail/internal/contact/entity"
	"github.com/verimail/verimail/internal/pkg/goerror"
)

// SendMessageInput is the request to relay a contact-form message.
type SendMessageInput struct {
	To       string `validate:"required,emailaddr"`
	UserName string `validate:"required,max=100"`
	SentBy   string `validate:"required,emailaddr"`
	Message  string `validate:"required,max=5000"`
	From     string `validate:"omitempty,emailaddr"`
}

// SendMessageOutput confirms a relayed message.
type SendMessageOutput struct {
	To     string
	SentBy string
}

// SendMessage relays a contact-form message from a verified sender.
//
// The from address is pinned to the configured one; the provider only accepts
// mail from that identity. Unverified senders are rejected. Name and body are
// sanitized to plain text before the mail is composed, and the sender address
// becomes the Reply-To.
func (uc *Usecase) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	ctx, span := uc.startSpan(ctx, "SendMessage")
	defer span.End()

	in.To = strings.ToLower(strings.TrimSpace(in.To))
	in.SentBy = strings.ToLower(strings.TrimSpace(in.SentBy))
	in.UserName = strings.TrimSpace(in.UserName)
	in.Message = strings.TrimSpace(in.Message)
	in.From = strings.ToLower(strings.TrimSpace(in.From))
	if err := uc.dep.Validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.From != "" && in.From != uc.dep.FromAddress {
		return nil, goerror.NewInvalidInput(nil, "from", "from address is not allowed")
	}

	verified, err := uc.dep.Gate.IsVerified(ctx, in.SentBy)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, goerror.NewBusiness("Sender email not verified", goerror.CodeForbidden)
	}

	msg := entity.Message{
		To:       in.To,
		UserName: uc.sanitize(in.UserName),
		SentBy:   in.SentBy,
		Body:     uc.sanitize(in.Message),
	}
	if msg.UserName == "" || msg.Body == "" {
		return nil, goerror.NewInvalidInput(nil, "message", "name and message must contain text")
	}

	if err := uc.dep.Relay.Relay(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to relay contact message", "error", err, "sent_by", in.SentBy)
		return nil, goerror.NewServer(err)
	}

	return &SendMessageOutput{To: in.To, SentBy: in.SentBy}, nil
}

// sanitize strips all markup and decodes the entities bluemonday escapes, so
// a plain-text mail never shows &amp; style artifacts.
func (uc *Usecase) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(uc.sanitizer.Sanitize(s)))
}
