package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/verimail/verimail/internal/pkg/goerror"
	"github.com/verimail/verimail/internal/shared/event"
	"github.com/verimail/verimail/internal/verification/entity"
)

// VerifyCodeInput is the request to verify a code for an address.
type VerifyCodeInput struct {
	Email string `validate:"required,emailaddr"`
	Code  string `validate:"required,otpcode"`
}

// VerifyCodeOutput confirms a successful verification.
type VerifyCodeOutput struct {
	Email    string
	Verified bool
}

// VerifyCode checks a submitted code against the stored one.
//
// Every call counts against the attempt budget before the code is compared,
// so mismatches and over-budget calls cannot be told apart by probing. The
// attempt counter expires together with the code it guards. On success the
// code and counter are removed and the address is marked verified without
// expiry.
func (uc *Usecase) VerifyCode(ctx context.Context, in VerifyCodeInput) (*VerifyCodeOutput, error) {
	ctx, span := uc.startSpan(ctx, "VerifyCode")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Code = strings.TrimSpace(in.Code)
	if err := uc.dep.Validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	stored, err := uc.dep.Store.Get(ctx, entity.CodeKey(in.Email))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Code has expired or was never requested", goerror.CodeExpired)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load verification code", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	attempts, err := uc.dep.Store.Incr(ctx, entity.AttemptsKey(in.Email))
	if err != nil {
		slog.ErrorContext(ctx, "failed to count verify attempt", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	if attempts == 1 {
		// Tie the counter lifetime to the code it guards so a stale counter
		// never outlives the code.
		ttl, ttlErr := uc.dep.Store.TTL(ctx, entity.CodeKey(in.Email))
		if ttlErr != nil || ttl <= 0 {
			ttl = uc.settings.CodeTTL
		}
		if err := uc.dep.Store.Expire(ctx, entity.AttemptsKey(in.Email), ttl); err != nil {
			slog.WarnContext(ctx, "failed to expire attempt counter", "error", err, "email", in.Email)
		}
	}

	if attempts > uc.settings.MaxAttempts {
		return nil, goerror.NewBusiness("Too many attempts, request a new code", goerror.CodeTooManyRequest)
	}

	if subtle.ConstantTimeCompare([]byte(in.Code), []byte(stored)) != 1 {
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)
	}

	if err := uc.dep.Store.Del(ctx, entity.CodeKey(in.Email), entity.AttemptsKey(in.Email)); err != nil {
		slog.ErrorContext(ctx, "failed to clear verification state", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	// The verified flag has no expiry; once verified, always verified.
	if err := uc.dep.Store.Set(ctx, entity.VerifiedKey(in.Email), "1", 0); err != nil {
		slog.ErrorContext(ctx, "failed to mark address verified", "error", err, "email", in.Email)
		return nil, goerror.NewServer(err)
	}

	uc.publishEmailVerified(ctx, in.Email)

	return &VerifyCodeOutput{Email: in.Email, Verified: true}, nil
}

// publishEmailVerified emits the verified event in the background. Publishing
// is best effort; a broker failure never rolls back the verification.
func (uc *Usecase) publishEmailVerified(ctx context.Context, email string) {
	if uc.dep.Publisher == nil {
		return
	}

	msg := event.EmailVerifiedMessage{
		EventID:    uc.dep.EventID.Generate(),
		Email:      email,
		VerifiedAt: uc.dep.Clock.Now(),
	}

	uc.dep.GoManager.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := uc.dep.Publisher.PublishEmailVerified(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "failed to publish email verified event", "error", err, "email", email)
		}
		return nil
	})
}
