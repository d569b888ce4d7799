package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/verification/entity"
)

// IssueCodeInput is the request to issue a verification code.
type IssueCodeInput struct {
	Email string `validate:"required,emailaddr"`
}

// IssueCodeOutput reports the lifetime of the issued code.
type IssueCodeOutput struct {
	Email     string
	ExpiresIn int64
}

// IssueCode generates a fresh code for the address, stores it, and emails it.
//
// A cooldown key throttles repeated requests. Re-issuing within the code TTL
// but past the cooldown replaces the previous code and resets the attempt
// counter, so only the latest code is ever accepted.
func (uc *Usecase) IssueCode(ctx context.Context, in IssueCodeInput) (*IssueCodeOutput, error) {
	ctx, span := uc.startSpan(ctx, "IssueCode")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := uc.dep.Validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	fresh, err := uc.dep.Store.SetNX(ctx, entity.CooldownKey(in.Email), "1", uc.settings.Cooldown)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check issue cooldown", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}
	if !fresh {
		return nil, goerror.NewBusiness("Please wait before requesting another code", goerror.CodeTooManyRequest)
	}

	code := uc.dep.CodeGen.Generate()

	if err := uc.dep.Store.Set(ctx, entity.CodeKey(in.Email), code, uc.settings.CodeTTL); err != nil {
		slog.ErrorContext(ctx, "failed to store verification code", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	// A new code starts with a clean attempt budget.
	if err := uc.dep.Store.Del(ctx, entity.AttemptsKey(in.Email)); err != nil {
		slog.ErrorContext(ctx, "failed to reset attempt counter", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	// Delivery failure does not roll back the stored code or cooldown. The
	// code simply ages out; the next issue past the cooldown replaces it.
	if err := uc.dep.Mailer.SendCode(ctx, in.Email, code, uc.settings.CodeTTL); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code email", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	return &IssueCodeOutput{
		Email:     in.Email,
		ExpiresIn: int64(uc.settings.CodeTTL.Seconds()),
	}, nil
}
